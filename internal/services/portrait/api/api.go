// Package api holds the portrait service operations shared by the gRPC,
// HTTP, and MCP transports. Requests and responses are plain JSON structs.
package api

import (
	"context"

	"github.com/louisbranch/crewportrait/internal/crew"
	"github.com/louisbranch/crewportrait/internal/portrait/appearance"
	"github.com/louisbranch/crewportrait/internal/portrait/postcard"
)

// API is implemented in process by Service and remotely by the gRPC client.
type API interface {
	GenerateCharacter(ctx context.Context, req GenerateCharacterRequest) (CharacterResponse, error)
	DefaultCharacter(ctx context.Context, req DefaultCharacterRequest) (CharacterResponse, error)
	ValidateCharacter(ctx context.Context, req ValidateCharacterRequest) (ValidateCharacterResponse, error)
	ResolveCharacter(ctx context.Context, req ResolveCharacterRequest) (CharacterResponse, error)
	ListLayerOptions(ctx context.Context, req ListLayerOptionsRequest) (ListLayerOptionsResponse, error)
	GetPostcardLayout(ctx context.Context, req GetPostcardLayoutRequest) (postcard.Layout, error)
	GenerateCrew(ctx context.Context, req GenerateCrewRequest) (GenerateCrewResponse, error)
	GetCrew(ctx context.Context, req GetCrewRequest) (crew.Crew, error)
	ListCrewMembers(ctx context.Context, req ListCrewMembersRequest) (ListCrewMembersResponse, error)
}

// GenerateCharacterRequest asks for one random character. Ethnicity, when
// set, picks the skin range; an explicit SkinRange wins over it.
type GenerateCharacterRequest struct {
	Gender    string                `json:"gender,omitempty"`
	Ethnicity string                `json:"ethnicity,omitempty"`
	SkinRange *appearance.SkinRange `json:"skinRange,omitempty"`
	BaseURL   string                `json:"baseUrl,omitempty"`
}

// DefaultCharacterRequest asks for the starting character of a gender.
type DefaultCharacterRequest struct {
	Gender  string `json:"gender,omitempty"`
	BaseURL string `json:"baseUrl,omitempty"`
}

// ValidateCharacterRequest checks a character without repairing it.
type ValidateCharacterRequest struct {
	Character appearance.Character `json:"character"`
}

// ValidateCharacterResponse lists every problem found.
type ValidateCharacterResponse struct {
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems,omitempty"`
}

// ResolveCharacterRequest renders a character into its sprite stack.
type ResolveCharacterRequest struct {
	Character appearance.Character `json:"character"`
	BaseURL   string               `json:"baseUrl,omitempty"`
}

// LayerAsset is one sprite of a rendered character, back to front.
type LayerAsset struct {
	Layer   string `json:"layer"`
	Index   int    `json:"index"`
	Variant int    `json:"variant"`
	Key     string `json:"key"`
	URL     string `json:"url,omitempty"`
	Tint    string `json:"tint,omitempty"`
}

// CharacterResponse is a character with its sprite stack.
type CharacterResponse struct {
	Character appearance.Character `json:"character"`
	Layers    []LayerAsset         `json:"layers"`
}

// ListLayerOptionsRequest asks which sprites a layer offers. An empty
// Layer lists every layer.
type ListLayerOptionsRequest struct {
	Layer  string `json:"layer,omitempty"`
	Gender string `json:"gender,omitempty"`
}

// LayerOption is one index with its variants.
type LayerOption struct {
	Index    int   `json:"index"`
	Variants []int `json:"variants"`
}

// LayerOptions lists the options of one layer.
type LayerOptions struct {
	Layer      string        `json:"layer"`
	ColorClass string        `json:"colorClass,omitempty"`
	CanBeNone  bool          `json:"canBeNone"`
	Options    []LayerOption `json:"options"`
}

// ListLayerOptionsResponse holds the requested layers in draw order.
type ListLayerOptionsResponse struct {
	Layers []LayerOptions `json:"layers"`
}

// GetPostcardLayoutRequest picks a template and a crew size.
type GetPostcardLayoutRequest struct {
	Color string `json:"color"`
	Count int    `json:"count"`
}

// GenerateCrewRequest drafts a crew from a description.
type GenerateCrewRequest struct {
	Description     string `json:"description"`
	ReplaceExisting bool   `json:"replaceExisting,omitempty"`
}

// GenerateCrewResponse is the drafted crew.
type GenerateCrewResponse struct {
	CrewID          string          `json:"crewId"`
	Crew            []crew.Portrait `json:"crew"`
	Count           int             `json:"count"`
	ReplaceExisting bool            `json:"replaceExisting"`
}

// GetCrewRequest loads a stored crew.
type GetCrewRequest struct {
	CrewID string `json:"crewId"`
}

// ListCrewMembersRequest pages through stored crew members. Filter is an
// AIP-160 expression over crew_id, first_name, last_name, gender,
// ethnicity, class, role, job, and birth_date.
type ListCrewMembersRequest struct {
	Filter    string `json:"filter,omitempty"`
	PageSize  int    `json:"pageSize,omitempty"`
	PageToken string `json:"pageToken,omitempty"`
}

// CrewMember is one stored member.
type CrewMember struct {
	CrewID    string               `json:"crewId"`
	Position  int                  `json:"position"`
	Character appearance.Character `json:"character"`
	Metadata  crew.Member          `json:"metadata"`
}

// ListCrewMembersResponse is one page of members.
type ListCrewMembersResponse struct {
	Members       []CrewMember `json:"members"`
	NextPageToken string       `json:"nextPageToken,omitempty"`
}
