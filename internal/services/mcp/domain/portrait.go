package domain

import (
	"context"

	"github.com/louisbranch/crewportrait/internal/platform/timeouts"
	"github.com/louisbranch/crewportrait/internal/portrait/appearance"
	"github.com/louisbranch/crewportrait/internal/services/portrait/api"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GenerateCharacterInput represents the MCP tool input for a random character.
type GenerateCharacterInput struct {
	Gender    string `json:"gender,omitempty" jsonschema:"Male, Female or Any (default Any)"`
	Ethnicity string `json:"ethnicity,omitempty" jsonschema:"optional ethnicity steering skin tone, e.g. European or African"`
	SkinMin   *int   `json:"skin_min,omitempty" jsonschema:"optional lowest skin palette index (0-6)"`
	SkinMax   *int   `json:"skin_max,omitempty" jsonschema:"optional highest skin palette index (0-6)"`
	BaseURL   string `json:"base_url,omitempty" jsonschema:"optional sprite CDN base URL used to build asset URLs"`
}

// CharacterResult represents a character and its render stack.
type CharacterResult struct {
	Character appearance.Character `json:"character" jsonschema:"the character selections and colors"`
	Layers    []api.LayerAsset     `json:"layers" jsonschema:"sprite assets in render order, back to front"`
}

// ResolveCharacterInput represents the MCP tool input for resolving a character.
type ResolveCharacterInput struct {
	Character appearance.Character `json:"character" jsonschema:"the character to validate and resolve"`
	BaseURL   string               `json:"base_url,omitempty" jsonschema:"optional sprite CDN base URL used to build asset URLs"`
}

// LayerOptionsInput represents the MCP tool input for listing sprite options.
type LayerOptionsInput struct {
	Layer  string `json:"layer,omitempty" jsonschema:"optional layer name, e.g. Hair; empty lists every layer"`
	Gender string `json:"gender,omitempty" jsonschema:"Male or Female (default Male)"`
}

// LayerOptionsResult represents the sprites available per layer.
type LayerOptionsResult struct {
	Layers []api.LayerOptions `json:"layers" jsonschema:"available indices and variants per layer"`
}

// GenerateCharacterTool defines the MCP tool schema for random characters.
func GenerateCharacterTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "portrait_generate_character",
		Description: "Generates a random WW2 portrait character that satisfies every sprite rule",
	}
}

// ResolveCharacterTool defines the MCP tool schema for resolving characters.
func ResolveCharacterTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "portrait_resolve_character",
		Description: "Validates a character and returns its sprite stack",
	}
}

// LayerOptionsTool defines the MCP tool schema for listing sprite options.
func LayerOptionsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "portrait_layer_options",
		Description: "Lists the sprite indices and variants a gender can pick per layer",
	}
}

// GenerateCharacterHandler generates a character through the portrait API.
func GenerateCharacterHandler(svc api.API) mcp.ToolHandlerFor[GenerateCharacterInput, CharacterResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateCharacterInput) (*mcp.CallToolResult, CharacterResult, error) {
		req := api.GenerateCharacterRequest{Gender: input.Gender, Ethnicity: input.Ethnicity, BaseURL: input.BaseURL}
		if input.SkinMin != nil || input.SkinMax != nil {
			skin := appearance.FullSkinRange()
			if input.SkinMin != nil {
				skin.Min = *input.SkinMin
			}
			if input.SkinMax != nil {
				skin.Max = *input.SkinMax
			}
			req.SkinRange = &skin
		}

		callCtx, cancel := withCallTimeout(ctx, timeouts.MCPCall)
		defer cancel()
		resp, err := svc.GenerateCharacter(callCtx, req)
		if err != nil {
			return nil, CharacterResult{}, toolError("generate character", err)
		}
		return nil, CharacterResult{Character: resp.Character, Layers: resp.Layers}, nil
	}
}

// ResolveCharacterHandler resolves a character through the portrait API.
func ResolveCharacterHandler(svc api.API) mcp.ToolHandlerFor[ResolveCharacterInput, CharacterResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ResolveCharacterInput) (*mcp.CallToolResult, CharacterResult, error) {
		callCtx, cancel := withCallTimeout(ctx, timeouts.MCPCall)
		defer cancel()
		resp, err := svc.ResolveCharacter(callCtx, api.ResolveCharacterRequest{Character: input.Character, BaseURL: input.BaseURL})
		if err != nil {
			return nil, CharacterResult{}, toolError("resolve character", err)
		}
		return nil, CharacterResult{Character: resp.Character, Layers: resp.Layers}, nil
	}
}

// LayerOptionsHandler lists sprite options through the portrait API.
func LayerOptionsHandler(svc api.API) mcp.ToolHandlerFor[LayerOptionsInput, LayerOptionsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LayerOptionsInput) (*mcp.CallToolResult, LayerOptionsResult, error) {
		callCtx, cancel := withCallTimeout(ctx, timeouts.MCPCall)
		defer cancel()
		resp, err := svc.ListLayerOptions(callCtx, api.ListLayerOptionsRequest{Layer: input.Layer, Gender: input.Gender})
		if err != nil {
			return nil, LayerOptionsResult{}, toolError("list layer options", err)
		}
		return nil, LayerOptionsResult{Layers: resp.Layers}, nil
	}
}
