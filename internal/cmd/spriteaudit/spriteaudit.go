// Package spriteaudit checks that every catalogued sprite exists in a
// directory or an S3 bucket.
package spriteaudit

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	entrypoint "github.com/louisbranch/crewportrait/internal/platform/cmd"
	"github.com/louisbranch/crewportrait/internal/portrait/catalog"
	"github.com/louisbranch/crewportrait/internal/portrait/spritestore"
)

// ErrSpritesMissing reports an audit that found gaps.
var ErrSpritesMissing = errors.New("sprites missing")

// Config holds sprite audit configuration.
type Config struct {
	Dir         string `env:"CREWPORTRAIT_SPRITE_ROOT"`
	S3Endpoint  string `env:"CREWPORTRAIT_SPRITE_S3_ENDPOINT"`
	S3Region    string `env:"CREWPORTRAIT_SPRITE_S3_REGION"`
	S3AccessKey string `env:"CREWPORTRAIT_SPRITE_S3_ACCESS_KEY"`
	S3SecretKey string `env:"CREWPORTRAIT_SPRITE_S3_SECRET_KEY"`
	S3Bucket    string `env:"CREWPORTRAIT_SPRITE_S3_BUCKET"`
	S3Prefix    string `env:"CREWPORTRAIT_SPRITE_S3_PREFIX"`
	S3UseSSL    bool   `env:"CREWPORTRAIT_SPRITE_S3_USE_SSL" envDefault:"true"`
	Verbose     bool
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory holding the PortraitSprites folder")
	fs.StringVar(&cfg.S3Endpoint, "s3-endpoint", cfg.S3Endpoint, "S3 endpoint host (audits the bucket instead of a directory)")
	fs.StringVar(&cfg.S3Bucket, "s3-bucket", cfg.S3Bucket, "S3 bucket holding the sprites")
	fs.StringVar(&cfg.S3Prefix, "s3-prefix", cfg.S3Prefix, "key prefix inside the bucket")
	fs.BoolVar(&cfg.Verbose, "v", false, "print every missing sprite")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run audits the configured store and writes a summary to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSpriteAudit, func(ctx context.Context) error {
		store, source, err := openStore(cfg)
		if err != nil {
			return err
		}
		if err := catalog.ValidateEmbedded(); err != nil {
			return fmt.Errorf("validate sprite catalog: %w", err)
		}
		report, err := spritestore.Audit(ctx, catalog.Embedded(), store)
		if err != nil {
			return fmt.Errorf("audit %s: %w", source, err)
		}
		return writeReport(out, source, report, cfg.Verbose)
	})
}

func openStore(cfg Config) (spritestore.Store, string, error) {
	if strings.TrimSpace(cfg.S3Endpoint) != "" {
		store, err := spritestore.NewS3Store(spritestore.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			Prefix:    cfg.S3Prefix,
			UseSSL:    cfg.S3UseSSL,
		})
		if err != nil {
			return nil, "", err
		}
		return store, "s3://" + strings.TrimSpace(cfg.S3Bucket), nil
	}
	if strings.TrimSpace(cfg.Dir) == "" {
		return nil, "", errors.New("either -dir or -s3-endpoint is required")
	}
	store, err := spritestore.NewDirStore(cfg.Dir)
	if err != nil {
		return nil, "", err
	}
	return store, cfg.Dir, nil
}

func writeReport(out io.Writer, source string, report spritestore.Report, verbose bool) error {
	if verbose {
		for _, missing := range report.Missing {
			fmt.Fprintf(out, "missing %s (%s %s %d/%d)\n", missing.Key, missing.Gender, missing.Selection.Layer, missing.Selection.Index, missing.Selection.Variant)
		}
	}
	fmt.Fprintf(out, "%s: checked %d sprites, %d missing\n", source, report.Checked, len(report.Missing))
	if !report.OK() {
		return fmt.Errorf("%w: %d of %d", ErrSpritesMissing, len(report.Missing), report.Checked)
	}
	return nil
}
