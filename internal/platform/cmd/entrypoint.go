// Package cmd holds the startup plumbing shared by crewportrait commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/crewportrait/internal/platform/config"
	"github.com/louisbranch/crewportrait/internal/platform/otel"
	"github.com/louisbranch/crewportrait/internal/platform/timeouts"
)

// Service names reported to telemetry.
const (
	ServicePortrait    = "portrait"
	ServiceMCP         = "mcp"
	ServiceCrew        = "crew"
	ServiceSpriteAudit = "sprite-audit"
)

// ParseConfig loads local .env files and then environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags over values already loaded from the
// environment.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry sets up tracing for service, runs fn and flushes spans
// once fn returns.
func RunWithTelemetry(ctx context.Context, service string, fn func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if fn == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()

	start := time.Now()
	err = fn(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Printf("%s stopped after %s", service, time.Since(start).Round(time.Millisecond))
	return err
}
