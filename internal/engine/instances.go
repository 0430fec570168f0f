package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strings"
)

// DefaultInstancesURL is the public searx.space directory export.
const DefaultInstancesURL = "https://searx.space/data/instances.json"

type instanceMeta struct {
	Comments    []string `json:"comments"`
	NetworkType string   `json:"network_type"`
}

type instanceDirectory struct {
	Instances map[string]instanceMeta `json:"instances"`
}

// ResolveInstance fetches the public instance directory and picks one
// eligible instance uniformly at random. Called at most once per process,
// from main, before the server accepts calls; a failure is fatal to startup.
func ResolveInstance(ctx context.Context) (string, error) {
	metrics.Resolutions.Add(1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.InstancesURL, nil)
	if err != nil {
		return "", &ResolutionError{Err: err}
	}
	resp, err := cfg.HTTPClient.Do(req)
	if err != nil {
		return "", &ResolutionError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &ResolutionError{Err: fmt.Errorf("directory returned status %d", resp.StatusCode)}
	}

	var dir instanceDirectory
	if err := json.NewDecoder(resp.Body).Decode(&dir); err != nil {
		return "", &ResolutionError{Err: fmt.Errorf("decode directory: %w", err)}
	}

	var eligible []string
	for u, meta := range dir.Instances {
		if eligibleInstance(meta) {
			eligible = append(eligible, strings.TrimRight(u, "/"))
		}
	}
	if len(eligible) == 0 {
		return "", &ResolutionError{Err: errors.New("no eligible instances in directory")}
	}

	pick := eligible[rand.IntN(len(eligible))]
	slog.Info("instance resolved",
		slog.String("url", pick),
		slog.Int("eligible", len(eligible)),
	)
	return pick, nil
}

// eligibleInstance filters out hidden, onion-tagged and non-clearnet entries.
func eligibleInstance(meta instanceMeta) bool {
	for _, c := range meta.Comments {
		if strings.Contains(c, "hidden") || strings.Contains(c, "onion") {
			return false
		}
	}
	return meta.NetworkType == "" || meta.NetworkType == "normal"
}
