// go_websearch — SearXNG web search MCP server.
//
// Exposes one MCP tool, searxngsearch, that forwards queries to a SearXNG
// instance and relays the response as Markdown or pretty-printed JSON.
// The instance is either fixed via SEARXNG_URL or picked at random from the
// public searx.space directory at startup. Runs as HTTP MCP server or stdio
// transport.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_websearch/internal/engine"
	"github.com/anatolykoptev/go_websearch/internal/searchserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8890")
)

func main() {
	initEngine()

	slog.Info("starting go_websearch",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_websearch",
		Version: version,
	}, nil)

	searchserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 1))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_websearch",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		SearxngURL:   env.Str("SEARXNG_URL", ""),
		Username:     env.Str("SEARXNG_USERNAME", ""),
		Password:     env.Str("SEARXNG_PASSWORD", ""),
		InstancesURL: env.Str("SEARXNG_INSTANCES_URL", engine.DefaultInstancesURL),
		OutputFormat: outputFormat(env.Str("SEARXNG_FORMAT", "markdown")),
		HTTPClient: &http.Client{
			Timeout: env.Duration("HTTP_TIMEOUT", 15*time.Second),
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}
	engine.Init(c)

	// No fixed instance: resolve one before the server starts accepting
	// calls. Resolution failure is fatal — no fallback, no retry.
	if c.SearxngURL == "" {
		if !boolEnv("SEARXNG_RANDOM_INSTANCE") {
			slog.Error("no SEARXNG_URL configured and SEARXNG_RANDOM_INSTANCE is disabled")
			os.Exit(1)
		}
		instance, err := engine.ResolveInstance(context.Background())
		if err != nil {
			slog.Error("instance resolution failed", slog.Any("error", err))
			os.Exit(1)
		}
		engine.SetInstance(instance)
	}
}

func outputFormat(s string) engine.Format {
	if s == "json" {
		return engine.FormatJSON
	}
	return engine.FormatMarkdown
}

func boolEnv(key string) bool {
	v, err := strconv.ParseBool(env.Str(key, "false"))
	return err == nil && v
}
