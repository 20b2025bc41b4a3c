package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/crewportrait/internal/crew"
	apperrors "github.com/louisbranch/crewportrait/internal/platform/errors"
	"github.com/louisbranch/crewportrait/internal/portrait/appearance"
	"github.com/louisbranch/crewportrait/internal/portrait/catalog"
	"github.com/louisbranch/crewportrait/internal/portrait/postcard"
	"github.com/louisbranch/crewportrait/internal/services/portrait/storage"
)

// Service runs the portrait operations in process.
type Service struct {
	catalog   *catalog.Catalog
	generator *appearance.Generator
	crews     *crew.Service
	store     storage.CrewStore
}

// Option configures a Service.
type Option func(*Service)

// WithCrewService enables crew drafting.
func WithCrewService(crews *crew.Service) Option {
	return func(s *Service) { s.crews = crews }
}

// WithCrewStore enables crew lookups and listings.
func WithCrewStore(store storage.CrewStore) Option {
	return func(s *Service) { s.store = store }
}

// NewService creates a service over a catalog and a character generator.
func NewService(c *catalog.Catalog, generator *appearance.Generator, opts ...Option) *Service {
	s := &Service{catalog: c, generator: generator}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateCharacter draws one random character.
func (s *Service) GenerateCharacter(ctx context.Context, req GenerateCharacterRequest) (CharacterResponse, error) {
	if err := ctx.Err(); err != nil {
		return CharacterResponse{}, err
	}
	gender, err := parseGender(req.Gender)
	if err != nil {
		return CharacterResponse{}, err
	}
	var opts appearance.Options
	switch {
	case req.SkinRange != nil:
		skin := *req.SkinRange
		opts.SkinRange = &skin
	case strings.TrimSpace(req.Ethnicity) != "":
		skin := crew.SkinRangeFor(crew.ParseEthnicity(req.Ethnicity))
		opts.SkinRange = &skin
	}
	ch, err := s.generator.Generate(gender, opts)
	if err != nil {
		var md map[string]string
		if opts.SkinRange != nil {
			md = map[string]string{"Min": strconv.Itoa(opts.SkinRange.Min), "Max": strconv.Itoa(opts.SkinRange.Max)}
		}
		return CharacterResponse{}, domainError(err, md)
	}
	return s.render(ch, req.BaseURL)
}

// DefaultCharacter returns the starting character for a gender. An empty
// gender gives the male default.
func (s *Service) DefaultCharacter(ctx context.Context, req DefaultCharacterRequest) (CharacterResponse, error) {
	if err := ctx.Err(); err != nil {
		return CharacterResponse{}, err
	}
	gender, err := parseGender(req.Gender)
	if err != nil {
		return CharacterResponse{}, err
	}
	return s.render(appearance.Default(gender), req.BaseURL)
}

// ValidateCharacter reports every problem with a character.
func (s *Service) ValidateCharacter(ctx context.Context, req ValidateCharacterRequest) (ValidateCharacterResponse, error) {
	if err := ctx.Err(); err != nil {
		return ValidateCharacterResponse{}, err
	}
	err := appearance.Validate(s.catalog, req.Character)
	if err == nil {
		return ValidateCharacterResponse{Valid: true}, nil
	}
	return ValidateCharacterResponse{Problems: problems(err)}, nil
}

// ResolveCharacter renders a valid character into its sprite stack.
func (s *Service) ResolveCharacter(ctx context.Context, req ResolveCharacterRequest) (CharacterResponse, error) {
	if err := ctx.Err(); err != nil {
		return CharacterResponse{}, err
	}
	if err := appearance.Validate(s.catalog, req.Character); err != nil {
		return CharacterResponse{}, domainError(err, nil)
	}
	return s.render(req.Character, req.BaseURL)
}

// ListLayerOptions lists the sprites a gender can pick per layer.
func (s *Service) ListLayerOptions(ctx context.Context, req ListLayerOptionsRequest) (ListLayerOptionsResponse, error) {
	if err := ctx.Err(); err != nil {
		return ListLayerOptionsResponse{}, err
	}
	gender, err := parseGender(req.Gender)
	if err != nil {
		return ListLayerOptionsResponse{}, err
	}
	layers := catalog.Layers()
	if name := strings.TrimSpace(req.Layer); name != "" {
		layer, ok := catalog.ParseLayerName(name)
		if !ok {
			return ListLayerOptionsResponse{}, domainError(
				fmt.Errorf("%w: %q", catalog.ErrLayerUnknown, name),
				map[string]string{"Layer": name},
			)
		}
		entry, _ := catalog.LayerByName(layer)
		layers = []catalog.Layer{entry}
	}

	resp := ListLayerOptionsResponse{Layers: make([]LayerOptions, 0, len(layers))}
	for _, layer := range layers {
		entry := LayerOptions{
			Layer:     string(layer.Name),
			CanBeNone: layer.CanBeNone,
			Options:   []LayerOption{},
		}
		if layer.ColorClass != catalog.ColorNone {
			entry.ColorClass = string(layer.ColorClass)
		}
		for _, index := range s.catalog.AvailableIndices(layer.Name, gender) {
			variants := s.catalog.AvailableVariants(layer.Name, index, gender)
			if len(variants) == 0 {
				continue
			}
			entry.Options = append(entry.Options, LayerOption{Index: index, Variants: variants})
		}
		resp.Layers = append(resp.Layers, entry)
	}
	return resp, nil
}

// GetPostcardLayout lays out count characters on a postcard template.
func (s *Service) GetPostcardLayout(ctx context.Context, req GetPostcardLayoutRequest) (postcard.Layout, error) {
	if err := ctx.Err(); err != nil {
		return postcard.Layout{}, err
	}
	layout, err := postcard.Config(req.Color, req.Count)
	if err != nil {
		return postcard.Layout{}, domainError(err, map[string]string{"Color": req.Color})
	}
	return layout, nil
}

// GenerateCrew drafts a crew and dresses every member.
func (s *Service) GenerateCrew(ctx context.Context, req GenerateCrewRequest) (GenerateCrewResponse, error) {
	if s.crews == nil {
		return GenerateCrewResponse{}, errCrewsUnavailable
	}
	result, err := s.crews.Generate(ctx, crew.Request{Description: req.Description, ReplaceExisting: req.ReplaceExisting})
	if err != nil {
		return GenerateCrewResponse{}, domainError(err, nil)
	}
	return GenerateCrewResponse{
		CrewID:          result.Crew.ID,
		Crew:            result.Crew.Members,
		Count:           len(result.Crew.Members),
		ReplaceExisting: result.ReplaceExisting,
	}, nil
}

// GetCrew loads a stored crew.
func (s *Service) GetCrew(ctx context.Context, req GetCrewRequest) (crew.Crew, error) {
	if s.store == nil {
		return crew.Crew{}, errStorageUnavailable
	}
	crewID := strings.TrimSpace(req.CrewID)
	if crewID == "" {
		return crew.Crew{}, apperrors.WithMetadata(apperrors.CodeNotFound, "crew id is required", map[string]string{"Resource": "crew"})
	}
	c, err := s.store.GetCrew(ctx, crewID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return crew.Crew{}, apperrors.WithMetadata(apperrors.CodeNotFound, fmt.Sprintf("crew %s not found", crewID), map[string]string{"Resource": "crew"})
		}
		return crew.Crew{}, err
	}
	return c, nil
}

// ListCrewMembers pages through stored crew members.
func (s *Service) ListCrewMembers(ctx context.Context, req ListCrewMembersRequest) (ListCrewMembersResponse, error) {
	if s.store == nil {
		return ListCrewMembersResponse{}, errStorageUnavailable
	}
	page, err := s.store.ListCrewMembers(ctx, storage.MemberQuery{
		Filter:    req.Filter,
		PageSize:  req.PageSize,
		PageToken: req.PageToken,
	})
	if err != nil {
		return ListCrewMembersResponse{}, err
	}
	resp := ListCrewMembersResponse{
		Members:       make([]CrewMember, 0, len(page.Members)),
		NextPageToken: page.NextPageToken,
	}
	for _, record := range page.Members {
		resp.Members = append(resp.Members, CrewMember{
			CrewID:    record.CrewID,
			Position:  record.Position,
			Character: record.Portrait.Character,
			Metadata:  record.Portrait.Metadata,
		})
	}
	return resp, nil
}

func (s *Service) render(ch appearance.Character, baseURL string) (CharacterResponse, error) {
	stack := appearance.Stack(s.catalog, ch)
	resp := CharacterResponse{Character: ch, Layers: make([]LayerAsset, 0, len(stack))}
	baseURL = strings.TrimSpace(baseURL)
	for _, entry := range stack {
		asset := LayerAsset{
			Layer:   string(entry.Layer.Name),
			Index:   entry.Part.Index,
			Variant: entry.Part.Variant,
			Key:     entry.Asset.Key(),
			Tint:    entry.Tint,
		}
		if baseURL != "" {
			u, err := entry.Asset.URL(baseURL)
			if err != nil {
				return CharacterResponse{}, fmt.Errorf("resolve %s: %w", asset.Key, err)
			}
			asset.URL = u
		}
		resp.Layers = append(resp.Layers, asset)
	}
	return resp, nil
}

func parseGender(raw string) (catalog.Gender, error) {
	gender, ok := catalog.ParseGender(raw)
	if !ok {
		return catalog.GenderAny, apperrors.New(apperrors.CodeCharacterInvalidGender, fmt.Sprintf("unknown gender %q", raw))
	}
	return gender, nil
}

// problems flattens a joined validation error into one message per finding.
func problems(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, inner := range joined.Unwrap() {
			out = append(out, problems(inner)...)
		}
		return out
	}
	return []string{err.Error()}
}

var _ API = (*Service)(nil)
