// Package crew drafts one crew from the command line, either in process or
// through a running portrait server.
package crew

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	entrypoint "github.com/louisbranch/crewportrait/internal/platform/cmd"
	"github.com/louisbranch/crewportrait/internal/services/portrait/api"
	portraitservice "github.com/louisbranch/crewportrait/internal/services/portrait/api/grpc/portrait"
	server "github.com/louisbranch/crewportrait/internal/services/portrait/app"
)

// Config holds crew command configuration.
type Config struct {
	Addr         string `env:"CREWPORTRAIT_PORTRAIT_ADDR"`
	Locale       string `env:"CREWPORTRAIT_CREW_LOCALE" envDefault:"en-US"`
	Seed         int64  `env:"CREWPORTRAIT_SEED"`
	GeminiAPIKey string `env:"CREWPORTRAIT_GEMINI_API_KEY"`
	GeminiModel  string `env:"CREWPORTRAIT_GEMINI_MODEL"`
	Description  string
	Replace      bool
}

// ParseConfig parses environment and flags into Config. Arguments left after
// the flags form the description when -description is not given.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "portrait gRPC server address (empty drafts in process)")
	fs.StringVar(&cfg.Description, "description", "", "crew description, e.g. \"5 RAF bomber crew\"")
	fs.BoolVar(&cfg.Replace, "replace", false, "mark the crew as replacing the existing one")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the in-process generator (0 draws one)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.Description) == "" {
		cfg.Description = strings.Join(fs.Args(), " ")
	}
	return cfg, nil
}

// Run drafts the configured crew and writes it to out as indented JSON.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if strings.TrimSpace(cfg.Description) == "" {
		return errors.New("a crew description is required")
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCrew, func(ctx context.Context) error {
		svc, closeFn, err := openAPI(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeFn()

		resp, err := svc.GenerateCrew(ctx, api.GenerateCrewRequest{
			Description:     cfg.Description,
			ReplaceExisting: cfg.Replace,
		})
		if err != nil {
			return fmt.Errorf("generate crew: %w", err)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	})
}

func openAPI(ctx context.Context, cfg Config) (api.API, func(), error) {
	if addr := strings.TrimSpace(cfg.Addr); addr != "" {
		client, conn, err := portraitservice.Dial(ctx, addr, cfg.Locale)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { _ = conn.Close() }, nil
	}
	svc, err := server.NewAPIService(server.RuntimeConfig{
		Seed:         cfg.Seed,
		GeminiAPIKey: cfg.GeminiAPIKey,
		GeminiModel:  cfg.GeminiModel,
	}, nil)
	if err != nil {
		return nil, nil, err
	}
	return svc, func() {}, nil
}
