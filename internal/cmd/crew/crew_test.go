package crew

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"testing"

	"github.com/louisbranch/crewportrait/internal/services/portrait/api"
)

func TestParseConfigDescription(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "flag", args: []string{"-description", "4 RAF gunners"}, want: "4 RAF gunners"},
		{name: "positional", args: []string{"-seed", "9", "2", "medics"}, want: "2 medics"},
		{name: "flag wins", args: []string{"-description", "a pilot", "ignored"}, want: "a pilot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("crew", flag.ContinueOnError)
			cfg, err := ParseConfig(fs, tt.args)
			if err != nil {
				t.Fatalf("parse config: %v", err)
			}
			if cfg.Description != tt.want {
				t.Fatalf("description = %q, want %q", cfg.Description, tt.want)
			}
		})
	}
}

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("CREWPORTRAIT_SEED", "21")
	fs := flag.NewFlagSet("crew", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-replace", "crew"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 21 || !cfg.Replace || cfg.Locale != "en-US" {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestRunInProcess(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{Description: "3 Tuskegee airmen", Seed: 5, Replace: true}
	if err := Run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	var resp api.GenerateCrewResponse
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	if resp.Count != 3 || len(resp.Crew) != 3 {
		t.Fatalf("count = %d, crew = %d, want 3", resp.Count, len(resp.Crew))
	}
	if !resp.ReplaceExisting {
		t.Fatal("expected replaceExisting to be echoed")
	}
	if resp.CrewID == "" {
		t.Fatal("expected a crew id")
	}
}

func TestRunRequiresDescription(t *testing.T) {
	var out bytes.Buffer
	if err := Run(context.Background(), Config{Description: "  "}, &out); err == nil {
		t.Fatal("expected error for a blank description")
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output %q", out.String())
	}
}
