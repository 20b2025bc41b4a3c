package portrait

import (
	"context"

	"github.com/louisbranch/crewportrait/internal/crew"
	apperrors "github.com/louisbranch/crewportrait/internal/platform/errors"
	"github.com/louisbranch/crewportrait/internal/portrait/postcard"
	"github.com/louisbranch/crewportrait/internal/services/portrait/api"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls a remote PortraitService. It satisfies api.API, and returned
// errors carry the server's domain error codes.
type Client struct {
	conn   grpc.ClientConnInterface
	locale string
}

// NewClient wraps a connection. locale, when set, is sent with every call.
func NewClient(conn grpc.ClientConnInterface, locale string) *Client {
	return &Client{conn: conn, locale: locale}
}

func invoke[Resp any](ctx context.Context, c *Client, method string, req any) (Resp, error) {
	var zero Resp
	in, err := toStruct(req)
	if err != nil {
		return zero, err
	}
	if c.locale != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, localeHeader, c.locale)
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, fullMethod(method), in, out); err != nil {
		return zero, apperrors.FromGRPCStatus(err)
	}
	return fromStruct[Resp](out)
}

// GenerateCharacter calls PortraitService.GenerateCharacter.
func (c *Client) GenerateCharacter(ctx context.Context, req api.GenerateCharacterRequest) (api.CharacterResponse, error) {
	return invoke[api.CharacterResponse](ctx, c, MethodGenerateCharacter, req)
}

// DefaultCharacter calls PortraitService.DefaultCharacter.
func (c *Client) DefaultCharacter(ctx context.Context, req api.DefaultCharacterRequest) (api.CharacterResponse, error) {
	return invoke[api.CharacterResponse](ctx, c, MethodDefaultCharacter, req)
}

// ValidateCharacter calls PortraitService.ValidateCharacter.
func (c *Client) ValidateCharacter(ctx context.Context, req api.ValidateCharacterRequest) (api.ValidateCharacterResponse, error) {
	return invoke[api.ValidateCharacterResponse](ctx, c, MethodValidateCharacter, req)
}

// ResolveCharacter calls PortraitService.ResolveCharacter.
func (c *Client) ResolveCharacter(ctx context.Context, req api.ResolveCharacterRequest) (api.CharacterResponse, error) {
	return invoke[api.CharacterResponse](ctx, c, MethodResolveCharacter, req)
}

// ListLayerOptions calls PortraitService.ListLayerOptions.
func (c *Client) ListLayerOptions(ctx context.Context, req api.ListLayerOptionsRequest) (api.ListLayerOptionsResponse, error) {
	return invoke[api.ListLayerOptionsResponse](ctx, c, MethodListLayerOptions, req)
}

// GetPostcardLayout calls PortraitService.GetPostcardLayout.
func (c *Client) GetPostcardLayout(ctx context.Context, req api.GetPostcardLayoutRequest) (postcard.Layout, error) {
	return invoke[postcard.Layout](ctx, c, MethodGetPostcardLayout, req)
}

// GenerateCrew calls PortraitService.GenerateCrew.
func (c *Client) GenerateCrew(ctx context.Context, req api.GenerateCrewRequest) (api.GenerateCrewResponse, error) {
	return invoke[api.GenerateCrewResponse](ctx, c, MethodGenerateCrew, req)
}

// GetCrew calls PortraitService.GetCrew.
func (c *Client) GetCrew(ctx context.Context, req api.GetCrewRequest) (crew.Crew, error) {
	return invoke[crew.Crew](ctx, c, MethodGetCrew, req)
}

// ListCrewMembers calls PortraitService.ListCrewMembers.
func (c *Client) ListCrewMembers(ctx context.Context, req api.ListCrewMembersRequest) (api.ListCrewMembersResponse, error) {
	return invoke[api.ListCrewMembersResponse](ctx, c, MethodListCrewMembers, req)
}

var _ api.API = (*Client)(nil)
