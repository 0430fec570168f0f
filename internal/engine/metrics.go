package engine

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	SearchRequests atomic.Int64
	SearchErrors   atomic.Int64
	AuthFailures   atomic.Int64
	Resolutions    atomic.Int64
}

// GetMetrics returns a snapshot of all counters.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"search_requests": metrics.SearchRequests.Load(),
		"search_errors":   metrics.SearchErrors.Load(),
		"auth_failures":   metrics.AuthFailures.Load(),
		"resolutions":     metrics.Resolutions.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s %d\n", k, m[k])
	}
	return b.String()
}
