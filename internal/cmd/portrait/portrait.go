// Package portrait parses portrait service flags and launches the service.
package portrait

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/crewportrait/internal/platform/cmd"
	server "github.com/louisbranch/crewportrait/internal/services/portrait/app"
)

// Config holds portrait command configuration.
type Config struct {
	Port     int `env:"CREWPORTRAIT_PORTRAIT_PORT"      envDefault:"8090"`
	HTTPPort int `env:"CREWPORTRAIT_PORTRAIT_HTTP_PORT" envDefault:"8091"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The portrait gRPC server port")
	fs.IntVar(&cfg.HTTPPort, "http-port", cfg.HTTPPort, "The JSON gateway port (0 disables it)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the portrait gRPC API and JSON gateway.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePortrait, func(context.Context) error {
		return server.Run(ctx, cfg.Port, cfg.HTTPPort)
	})
}
