// Package searchserver wires the searxngsearch tool onto an MCP server.
package searchserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_websearch/internal/engine"
)

// RegisterTools registers the single searxngsearch tool on the given MCP server.
// Calls to any other tool name are rejected by the SDK dispatcher.
func RegisterTools(server *mcp.Server) {
	server.AddTool(&mcp.Tool{
		Name:        "searxngsearch",
		Description: "Search the web through a SearXNG metasearch instance. Returns results with title, URL, and snippet, plus instant answers and spelling suggestions when available. Supports language, time range, category, and engine filters.",
		InputSchema: searchInputSchema(),
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, handleSearch)
}

// searchInputSchema describes the tool arguments. Only query carries a type
// constraint: the optional fields are normalized leniently by the request
// builder, and typing them here would make the protocol layer reject
// wrong-typed values before the builder's silent-default policy can apply.
func searchInputSchema() map[string]any {
	prop := func(desc string) map[string]any {
		return map[string]any{"description": desc}
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "Search query",
			},
			"language":    prop("Language code for results, e.g. en, de, fr (default: en)"),
			"time_range":  prop("Filter by time range: day, week, month, year"),
			"categories":  prop("SearXNG categories to search, e.g. general, images, news"),
			"engines":     prop("Specific engines to query, e.g. google, bing, duckduckgo"),
			"safesearch":  prop("Safe search level: 0 (off), 1 (moderate), 2 (strict). Default: 1"),
			"pageno":      prop("Result page number, starting at 1 (default: 1)"),
			"max_results": prop("Maximum results to return, 1-50 (default: 10)"),
		},
	}
}

func handleSearch(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := argumentsMap(req.Params.Arguments)
	if err != nil {
		return errorResult(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	searchReq, err := engine.BuildSearchRequest(args)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	resp, err := engine.Search(ctx, searchReq)
	if err != nil {
		var authErr *engine.AuthError
		if errors.As(err, &authErr) {
			return errorResult(engine.AuthFailedMessage), nil
		}
		slog.Warn("searxngsearch: upstream error", slog.Any("error", err))
		return errorResult(err.Error()), nil
	}

	text, err := engine.FormatResponse(resp, searchReq.MaxResults, engine.OutputFormat())
	if err != nil {
		return errorResult(err.Error()), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil
}

// argumentsMap re-decodes the wire arguments into a plain map so the request
// builder can apply its lenient typing rules field by field.
func argumentsMap(v any) (map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var args map[string]any
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, err
	}
	return args, nil
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
