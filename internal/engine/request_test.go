package engine

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuildSearchRequestQuery(t *testing.T) {
	t.Run("missing query fails", func(t *testing.T) {
		_, err := BuildSearchRequest(map[string]any{})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Reason != "query is required and must be a string" {
			t.Errorf("unexpected message: %q", verr.Reason)
		}
	})

	t.Run("non-string query fails", func(t *testing.T) {
		_, err := BuildSearchRequest(map[string]any{"query": 42.0})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("empty query fails", func(t *testing.T) {
		if _, err := BuildSearchRequest(map[string]any{"query": ""}); err == nil {
			t.Fatal("expected error for empty query")
		}
	})

	t.Run("any non-empty query succeeds", func(t *testing.T) {
		for _, q := range []string{"a", "climate change solutions", "  spaces  ", "日本語"} {
			if _, err := BuildSearchRequest(map[string]any{"query": q}); err != nil {
				t.Errorf("query %q: unexpected error %v", q, err)
			}
		}
	})
}

func TestBuildSearchRequestDefaults(t *testing.T) {
	req, err := BuildSearchRequest(map[string]any{"query": "golang"})
	if err != nil {
		t.Fatal(err)
	}
	want := SearchRequest{
		Query:      "golang",
		Language:   "en",
		SafeSearch: 1,
		PageNo:     1,
		MaxResults: 10,
	}
	if !reflect.DeepEqual(req, want) {
		t.Errorf("got %+v, want %+v", req, want)
	}
}

func TestBuildSearchRequestLeniency(t *testing.T) {
	tests := []struct {
		name  string
		args  map[string]any
		check func(t *testing.T, req SearchRequest)
	}{
		{
			name: "wrong-typed safesearch defaults",
			args: map[string]any{"query": "q", "safesearch": "strict"},
			check: func(t *testing.T, req SearchRequest) {
				if req.SafeSearch != 1 {
					t.Errorf("SafeSearch = %d, want 1", req.SafeSearch)
				}
			},
		},
		{
			name: "out-of-range safesearch defaults",
			args: map[string]any{"query": "q", "safesearch": 3.0},
			check: func(t *testing.T, req SearchRequest) {
				if req.SafeSearch != 1 {
					t.Errorf("SafeSearch = %d, want 1", req.SafeSearch)
				}
			},
		},
		{
			name: "valid safesearch kept",
			args: map[string]any{"query": "q", "safesearch": 2.0},
			check: func(t *testing.T, req SearchRequest) {
				if req.SafeSearch != 2 {
					t.Errorf("SafeSearch = %d, want 2", req.SafeSearch)
				}
			},
		},
		{
			name: "non-integral number defaults",
			args: map[string]any{"query": "q", "safesearch": 1.5},
			check: func(t *testing.T, req SearchRequest) {
				if req.SafeSearch != 1 {
					t.Errorf("SafeSearch = %d, want 1", req.SafeSearch)
				}
			},
		},
		{
			name: "pageno below one defaults",
			args: map[string]any{"query": "q", "pageno": 0.0},
			check: func(t *testing.T, req SearchRequest) {
				if req.PageNo != 1 {
					t.Errorf("PageNo = %d, want 1", req.PageNo)
				}
			},
		},
		{
			name: "valid pageno kept",
			args: map[string]any{"query": "q", "pageno": 3.0},
			check: func(t *testing.T, req SearchRequest) {
				if req.PageNo != 3 {
					t.Errorf("PageNo = %d, want 3", req.PageNo)
				}
			},
		},
		{
			name: "max_results out of range defaults",
			args: map[string]any{"query": "q", "max_results": 51.0},
			check: func(t *testing.T, req SearchRequest) {
				if req.MaxResults != 10 {
					t.Errorf("MaxResults = %d, want 10", req.MaxResults)
				}
			},
		},
		{
			name: "max_results in range kept",
			args: map[string]any{"query": "q", "max_results": 5.0},
			check: func(t *testing.T, req SearchRequest) {
				if req.MaxResults != 5 {
					t.Errorf("MaxResults = %d, want 5", req.MaxResults)
				}
			},
		},
		{
			name: "wrong-typed language defaults",
			args: map[string]any{"query": "q", "language": 7.0},
			check: func(t *testing.T, req SearchRequest) {
				if req.Language != "en" {
					t.Errorf("Language = %q, want en", req.Language)
				}
			},
		},
		{
			name: "valid language kept",
			args: map[string]any{"query": "q", "language": "de"},
			check: func(t *testing.T, req SearchRequest) {
				if req.Language != "de" {
					t.Errorf("Language = %q, want de", req.Language)
				}
			},
		},
		{
			name: "unknown time_range omitted",
			args: map[string]any{"query": "q", "time_range": "hour"},
			check: func(t *testing.T, req SearchRequest) {
				if req.TimeRange != "" {
					t.Errorf("TimeRange = %q, want empty", req.TimeRange)
				}
			},
		},
		{
			name: "valid time_range kept",
			args: map[string]any{"query": "q", "time_range": "week"},
			check: func(t *testing.T, req SearchRequest) {
				if req.TimeRange != "week" {
					t.Errorf("TimeRange = %q, want week", req.TimeRange)
				}
			},
		},
		{
			name: "categories skip non-string elements",
			args: map[string]any{"query": "q", "categories": []any{"general", 1.0, "news"}},
			check: func(t *testing.T, req SearchRequest) {
				want := []string{"general", "news"}
				if !reflect.DeepEqual(req.Categories, want) {
					t.Errorf("Categories = %v, want %v", req.Categories, want)
				}
			},
		},
		{
			name: "wrong-typed engines omitted",
			args: map[string]any{"query": "q", "engines": "google"},
			check: func(t *testing.T, req SearchRequest) {
				if req.Engines != nil {
					t.Errorf("Engines = %v, want nil", req.Engines)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := BuildSearchRequest(tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, req)
		})
	}
}
