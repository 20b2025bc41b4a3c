// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/crewportrait/internal/platform/cmd"
	mcpservice "github.com/louisbranch/crewportrait/internal/services/mcp/service"
	server "github.com/louisbranch/crewportrait/internal/services/portrait/app"
)

// Config holds MCP command configuration.
type Config struct {
	Addr         string `env:"CREWPORTRAIT_PORTRAIT_ADDR"`
	HTTPAddr     string `env:"CREWPORTRAIT_MCP_HTTP_ADDR"  envDefault:"localhost:8092"`
	Transport    string `env:"CREWPORTRAIT_MCP_TRANSPORT"  envDefault:"stdio"`
	Locale       string `env:"CREWPORTRAIT_MCP_LOCALE"     envDefault:"en-US"`
	Seed         int64  `env:"CREWPORTRAIT_SEED"`
	GeminiAPIKey string `env:"CREWPORTRAIT_GEMINI_API_KEY"`
	GeminiModel  string `env:"CREWPORTRAIT_GEMINI_MODEL"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "portrait gRPC server address (empty runs the portrait API in process)")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the in-process generator (0 draws one)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(context.Context) error {
		return mcpservice.Run(ctx, mcpservice.Config{
			PortraitAddr: cfg.Addr,
			Transport:    mcpservice.TransportKind(cfg.Transport),
			HTTPAddr:     cfg.HTTPAddr,
			Locale:       cfg.Locale,
			Runtime: server.RuntimeConfig{
				Seed:         cfg.Seed,
				GeminiAPIKey: cfg.GeminiAPIKey,
				GeminiModel:  cfg.GeminiModel,
			},
		})
	})
}
