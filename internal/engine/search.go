package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Search issues the single outbound call to the instance's search endpoint
// and parses the JSON body. One request per call, no retry; the transport
// timeout comes from the configured HTTP client. The upstream call always
// requests the full page — MaxResults is applied later by the formatter.
func Search(ctx context.Context, req SearchRequest) (*SearxngResponse, error) {
	metrics.SearchRequests.Add(1)

	u, err := url.Parse(cfg.SearxngURL + "/search")
	if err != nil {
		return nil, &UpstreamError{Detail: err.Error()}
	}
	q := u.Query()
	q.Set("q", req.Query)
	q.Set("format", "json")
	q.Set("language", req.Language)
	q.Set("safesearch", strconv.Itoa(req.SafeSearch))
	q.Set("pageno", strconv.Itoa(req.PageNo))
	if req.TimeRange != "" {
		q.Set("time_range", req.TimeRange)
	}
	if len(req.Categories) > 0 {
		q.Set("categories", strings.Join(req.Categories, ","))
	}
	if len(req.Engines) > 0 {
		q.Set("engines", strings.Join(req.Engines, ","))
	}
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &UpstreamError{Detail: err.Error()}
	}
	if cfg.Username != "" && cfg.Password != "" {
		httpReq.SetBasicAuth(cfg.Username, cfg.Password)
	}

	resp, err := cfg.HTTPClient.Do(httpReq)
	if err != nil {
		metrics.SearchErrors.Add(1)
		return nil, &UpstreamError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		metrics.AuthFailures.Add(1)
		return nil, &AuthError{}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.SearchErrors.Add(1)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Detail: strings.TrimSpace(string(body))}
	}

	var data SearxngResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		metrics.SearchErrors.Add(1)
		return nil, &UpstreamError{Detail: fmt.Sprintf("decode response: %v", err)}
	}
	return &data, nil
}
