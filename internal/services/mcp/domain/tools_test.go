package domain

import (
	"context"
	"errors"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/crewportrait/internal/platform/errors"
	"github.com/louisbranch/crewportrait/internal/portrait/appearance"
	"github.com/louisbranch/crewportrait/internal/portrait/postcard"
	"github.com/louisbranch/crewportrait/internal/services/portrait/api"
)

// fakeAPI records requests; methods it does not override panic through the
// nil embedded interface.
type fakeAPI struct {
	api.API
	generateReq api.GenerateCharacterRequest
	crewReq     api.GenerateCrewRequest
	err         error
	hasDeadline bool
}

func (f *fakeAPI) GenerateCharacter(ctx context.Context, req api.GenerateCharacterRequest) (api.CharacterResponse, error) {
	f.generateReq = req
	_, f.hasDeadline = ctx.Deadline()
	if f.err != nil {
		return api.CharacterResponse{}, f.err
	}
	return api.CharacterResponse{Character: appearance.Character{Gender: "Male"}, Layers: []api.LayerAsset{{Layer: "Body", Key: "body_00.png"}}}, nil
}

func (f *fakeAPI) GenerateCrew(ctx context.Context, req api.GenerateCrewRequest) (api.GenerateCrewResponse, error) {
	f.crewReq = req
	if f.err != nil {
		return api.GenerateCrewResponse{}, f.err
	}
	return api.GenerateCrewResponse{CrewID: "crew-1", Count: 0, ReplaceExisting: req.ReplaceExisting}, nil
}

func (f *fakeAPI) GetPostcardLayout(_ context.Context, req api.GetPostcardLayoutRequest) (postcard.Layout, error) {
	return postcard.Config(req.Color, req.Count)
}

func TestGenerateCharacterHandlerSkinRange(t *testing.T) {
	skinMin := 4
	tests := []struct {
		name  string
		input GenerateCharacterInput
		want  *appearance.SkinRange
	}{
		{name: "no range", input: GenerateCharacterInput{Gender: "Male"}},
		{name: "min only", input: GenerateCharacterInput{SkinMin: &skinMin}, want: &appearance.SkinRange{Min: 4, Max: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAPI{}
			_, out, err := GenerateCharacterHandler(fake)(context.Background(), nil, tt.input)
			if err != nil {
				t.Fatalf("handler: %v", err)
			}
			if len(out.Layers) != 1 {
				t.Fatalf("layers = %d", len(out.Layers))
			}
			if !fake.hasDeadline {
				t.Fatal("expected the API call to carry a deadline")
			}
			got := fake.generateReq.SkinRange
			switch {
			case tt.want == nil && got != nil:
				t.Fatalf("skin range = %+v, want none", *got)
			case tt.want != nil && (got == nil || *got != *tt.want):
				t.Fatalf("skin range = %v, want %+v", got, *tt.want)
			}
		})
	}
}

func TestHandlersRenderDomainErrors(t *testing.T) {
	fake := &fakeAPI{err: apperrors.New(apperrors.CodeCrewDescriptionEmpty, "description is blank")}
	_, _, err := CrewGenerateHandler(fake)(context.Background(), nil, CrewGenerateInput{Description: " "})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "generate crew: ") || strings.Contains(err.Error(), "description is blank") {
		t.Fatalf("error = %q, want the localized message", err.Error())
	}

	plain := errors.New("connection refused")
	fake.err = plain
	_, _, err = GenerateCharacterHandler(fake)(context.Background(), nil, GenerateCharacterInput{})
	if !errors.Is(err, plain) {
		t.Fatalf("error = %v, want wrapped cause", err)
	}
}

func TestCrewGenerateHandlerPassesFlags(t *testing.T) {
	fake := &fakeAPI{}
	_, out, err := CrewGenerateHandler(fake)(context.Background(), nil, CrewGenerateInput{Description: "crew", ReplaceExisting: true})
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !fake.crewReq.ReplaceExisting || !out.ReplaceExisting || out.CrewID != "crew-1" {
		t.Fatalf("out = %+v, req = %+v", out, fake.crewReq)
	}
}

func TestPostcardLayoutHandler(t *testing.T) {
	_, layout, err := PostcardLayoutHandler(&fakeAPI{})(context.Background(), nil, PostcardLayoutInput{Color: "orange", Count: 3})
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if len(layout.Slots) != 3 {
		t.Fatalf("slots = %d", len(layout.Slots))
	}
	if _, _, err := PostcardLayoutHandler(&fakeAPI{})(context.Background(), nil, PostcardLayoutInput{Count: 0}); err == nil {
		t.Fatal("expected error for zero characters")
	}
}
