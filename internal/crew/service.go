package crew

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	apperrors "github.com/louisbranch/crewportrait/internal/platform/errors"
	"github.com/louisbranch/crewportrait/internal/platform/id"
	"github.com/louisbranch/crewportrait/internal/platform/timeouts"
	"github.com/louisbranch/crewportrait/internal/portrait/appearance"
	"github.com/louisbranch/crewportrait/internal/portrait/catalog"
)

var (
	// ErrDescriptionEmpty reports a blank crew description.
	ErrDescriptionEmpty = apperrors.New(apperrors.CodeCrewDescriptionEmpty, "crew description is required")
	// ErrDraftTimeout reports a drafter that did not answer in time.
	ErrDraftTimeout = apperrors.New(apperrors.CodeCrewDraftTimeout, "crew draft timed out")
	// ErrDrafterUnavailable reports a service with no drafter configured.
	ErrDrafterUnavailable = apperrors.New(apperrors.CodeCrewDrafterUnavailable, "crew drafter is not configured")
)

// Generator draws a character for one member.
type Generator interface {
	Generate(gender catalog.Gender, opts appearance.Options) (appearance.Character, error)
}

// Store persists generated crews.
type Store interface {
	PutCrew(ctx context.Context, c Crew) error
}

// Request asks for one crew.
type Request struct {
	Description string
	// ReplaceExisting is echoed back so clients know whether to replace
	// their current roster.
	ReplaceExisting bool
}

// Result is a generated crew plus the echoed request flag.
type Result struct {
	Crew            Crew
	ReplaceExisting bool
}

// Service drafts crews and dresses them in generated portraits.
type Service struct {
	drafter   Drafter
	generator Generator
	store     Store
	timeout   time.Duration
	now       func() time.Time
	newID     func() (string, error)
}

// Option configures a Service.
type Option func(*Service)

// WithStore persists every generated crew.
func WithStore(store Store) Option {
	return func(s *Service) { s.store = store }
}

// WithTimeout overrides the draft timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides how crew and member ids are minted.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewService wires a drafter and a character generator.
func NewService(drafter Drafter, generator Generator, opts ...Option) *Service {
	s := &Service{
		drafter:   drafter,
		generator: generator,
		timeout:   timeouts.CrewDraft,
		now:       time.Now,
		newID:     id.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate drafts a crew for the request description.
func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return Result{}, ErrDescriptionEmpty
	}
	if s == nil || s.drafter == nil {
		return Result{}, ErrDrafterUnavailable
	}
	if s.generator == nil {
		return Result{}, apperrors.Wrap(apperrors.CodeCrewDrafterUnavailable, "character generator is not configured", appearance.ErrGeneratorMisconfigured)
	}

	draftCtx, cancel := context.WithTimeout(ctx, s.timeout)
	text, err := s.drafter.Draft(draftCtx, description)
	cancel()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Result{}, apperrors.Wrap(apperrors.CodeCrewDraftTimeout, ErrDraftTimeout.Message, err)
		}
		return Result{}, apperrors.Wrap(apperrors.CodeCrewDraftFailed, "crew draft failed", err)
	}

	members, err := ParseDraft(text)
	if err != nil {
		log.Printf("crew draft unparseable (%d bytes): %v", len(text), err)
		return Result{}, err
	}
	members = NormalizeCrew(members)

	crewID, err := s.newID()
	if err != nil {
		return Result{}, fmt.Errorf("crew id: %w", err)
	}
	crew := Crew{
		ID:          crewID,
		Description: description,
		CreatedAt:   s.now().UTC(),
		Members:     make([]Portrait, 0, len(members)),
	}
	for _, m := range members {
		memberID, err := s.newID()
		if err != nil {
			return Result{}, fmt.Errorf("member id: %w", err)
		}
		m.ID = memberID
		skin := SkinRangeFor(m.Ethnicity)
		character, err := s.generator.Generate(m.Gender, appearance.Options{SkinRange: &skin})
		if err != nil {
			return Result{}, fmt.Errorf("generate portrait for %s: %w", m.FirstName, err)
		}
		crew.Members = append(crew.Members, Portrait{Character: character, Metadata: m})
	}

	if s.store != nil {
		if err := s.store.PutCrew(ctx, crew); err != nil {
			return Result{}, fmt.Errorf("store crew: %w", err)
		}
	}
	log.Printf("crew %s drafted with %d members", crew.ID, len(crew.Members))
	return Result{Crew: crew, ReplaceExisting: req.ReplaceExisting}, nil
}
