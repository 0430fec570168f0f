package engine

import (
	"net/http"
	"strings"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	SearxngURL   string // instance base URL; empty = resolve from the directory
	Username     string // basic auth, sent only when both are set
	Password     string
	InstancesURL string // public instance directory export
	OutputFormat Format
	HTTPClient   *http.Client
}

var cfg Config

// Init initializes the engine with the given configuration.
func Init(c Config) {
	c.SearxngURL = strings.TrimRight(c.SearxngURL, "/")
	cfg = c
}

// SetInstance stores the resolved instance base URL. Called once from main
// after ResolveInstance, before the server accepts calls; read-only afterwards.
func SetInstance(baseURL string) {
	cfg.SearxngURL = strings.TrimRight(baseURL, "/")
}

// OutputFormat reports the configured response rendering mode.
func OutputFormat() Format {
	return cfg.OutputFormat
}
