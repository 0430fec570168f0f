package engine

import "math"

// Defaults and bounds for tool arguments.
const (
	DefaultLanguage   = "en"
	DefaultSafeSearch = 1
	DefaultPageNo     = 1
	DefaultMaxResults = 10
	MaxResultsLimit   = 50
)

var validTimeRanges = map[string]bool{
	"day":   true,
	"week":  true,
	"month": true,
	"year":  true,
}

// BuildSearchRequest normalizes raw tool arguments into a fully populated
// SearchRequest. Only query is mandatory. Optional fields are handled
// leniently: a wrong-typed, out-of-range, or unrecognized value silently
// falls back to the field default instead of failing the call.
func BuildSearchRequest(args map[string]any) (SearchRequest, error) {
	query, ok := args["query"].(string)
	if !ok || query == "" {
		return SearchRequest{}, &ValidationError{Reason: "query is required and must be a string"}
	}

	req := SearchRequest{
		Query:      query,
		Language:   DefaultLanguage,
		SafeSearch: DefaultSafeSearch,
		PageNo:     DefaultPageNo,
		MaxResults: DefaultMaxResults,
	}

	if lang, ok := args["language"].(string); ok && lang != "" {
		req.Language = lang
	}
	if tr, ok := args["time_range"].(string); ok && validTimeRanges[tr] {
		req.TimeRange = tr
	}
	req.Categories = stringList(args["categories"])
	req.Engines = stringList(args["engines"])

	if v, ok := intArg(args["safesearch"]); ok && v >= 0 && v <= 2 {
		req.SafeSearch = v
	}
	if v, ok := intArg(args["pageno"]); ok && v >= 1 {
		req.PageNo = v
	}
	if v, ok := intArg(args["max_results"]); ok && v >= 1 && v <= MaxResultsLimit {
		req.MaxResults = v
	}

	return req, nil
}

// intArg reads a decoded JSON number as an integer.
// Non-numeric and non-integral values report false.
func intArg(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// stringList reads a decoded JSON array of strings, skipping non-string and
// empty elements. Anything else reads as nil.
func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
