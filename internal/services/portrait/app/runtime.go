package server

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/crewportrait/internal/crew"
	"github.com/louisbranch/crewportrait/internal/platform/random"
	"github.com/louisbranch/crewportrait/internal/portrait/appearance"
	"github.com/louisbranch/crewportrait/internal/portrait/catalog"
	"github.com/louisbranch/crewportrait/internal/services/portrait/api"
	"github.com/louisbranch/crewportrait/internal/services/portrait/storage"
)

// RuntimeConfig selects how the portrait API is assembled.
type RuntimeConfig struct {
	// Seed fixes the random source; zero draws a fresh seed.
	Seed         int64
	GeminiAPIKey string
	GeminiModel  string
}

// NewAPIService assembles the portrait API over the embedded catalog. A nil
// store leaves crews unsaved and the crew lookups unavailable.
func NewAPIService(cfg RuntimeConfig, store storage.CrewStore) (*api.Service, error) {
	if err := catalog.ValidateEmbedded(); err != nil {
		return nil, fmt.Errorf("validate sprite catalog: %w", err)
	}
	rng, seed, err := random.NewSource(cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("seed generator: %w", err)
	}
	log.Printf("portrait generator seed %d", seed)

	c := catalog.Embedded()
	generator := appearance.NewGenerator(c, rng, appearance.DefaultPolicy())
	drafter, err := newDrafter(cfg, seed)
	if err != nil {
		return nil, err
	}

	var crewOpts []crew.Option
	var apiOpts []api.Option
	if store != nil {
		crewOpts = append(crewOpts, crew.WithStore(store))
		apiOpts = append(apiOpts, api.WithCrewStore(store))
	}
	crews := crew.NewService(drafter, generator, crewOpts...)
	apiOpts = append(apiOpts, api.WithCrewService(crews))
	return api.NewService(c, generator, apiOpts...), nil
}

func newDrafter(cfg RuntimeConfig, seed int64) (crew.Drafter, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		log.Printf("no Gemini API key set, drafting crews from the offline roster")
		roster, _, err := random.NewSource(seed + 1)
		if err != nil {
			return nil, err
		}
		return crew.NewRosterDrafter(roster), nil
	}
	drafter, err := crew.NewGeminiDrafter(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("create gemini drafter: %w", err)
	}
	log.Printf("drafting crews with %s", drafter.Name())
	return drafter, nil
}
