package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// FormatResponse renders a search response for the caller. The results list
// is truncated to maxResults here; every other field passes through as the
// instance returned it, including the total result count.
func FormatResponse(resp *SearxngResponse, maxResults int, mode Format) (string, error) {
	truncated := *resp
	if maxResults > 0 && len(truncated.Results) > maxResults {
		truncated.Results = truncated.Results[:maxResults]
	}

	if mode == FormatJSON {
		out, err := json.MarshalIndent(&truncated, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal response: %w", err)
		}
		return string(out), nil
	}
	return formatMarkdown(&truncated), nil
}

func formatMarkdown(resp *SearxngResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Search Results for: %s\n\n", resp.Query)
	fmt.Fprintf(&b, "Found %d results\n", resp.NumberOfResults)

	writeBullets(&b, "## Answers", resp.Answers)
	writeBullets(&b, "## Suggestions", resp.Suggestions)
	writeBullets(&b, "## Did you mean?", resp.Corrections)

	if len(resp.Results) > 0 {
		b.WriteString("\n## Results\n")
		for i, r := range resp.Results {
			fmt.Fprintf(&b, "\n### %d. %s\n", i+1, r.Title)
			fmt.Fprintf(&b, "URL: %s\n", r.URL)
			if r.Engine != "" {
				fmt.Fprintf(&b, "Engine: %s\n", r.Engine)
			}
			if r.Category != "" {
				fmt.Fprintf(&b, "Category: %s\n", r.Category)
			}
			if r.PublishedDate != "" {
				fmt.Fprintf(&b, "Published: %s\n", r.PublishedDate)
			}
			if snippet := renderSnippet(r.Content); snippet != "" {
				b.WriteString("\n" + snippet + "\n")
			}
		}
	}

	if len(resp.UnresponsiveEngines) > 0 {
		b.WriteString("\n## Unresponsive Engines\n")
		b.WriteString(strings.Join(resp.UnresponsiveEngines, ", ") + "\n")
	}
	return b.String()
}

func writeBullets(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + heading + "\n")
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
}

// renderSnippet converts the HTML fragments some engines put in the content
// field into plain markdown text. Falls back to the raw snippet on error.
func renderSnippet(content string) string {
	if content == "" || !strings.ContainsAny(content, "<&") {
		return content
	}
	md, err := htmltomarkdown.ConvertString(content)
	if err != nil {
		return content
	}
	return strings.TrimSpace(md)
}
