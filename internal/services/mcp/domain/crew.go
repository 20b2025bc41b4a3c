package domain

import (
	"context"

	"github.com/louisbranch/crewportrait/internal/crew"
	"github.com/louisbranch/crewportrait/internal/platform/timeouts"
	"github.com/louisbranch/crewportrait/internal/portrait/postcard"
	"github.com/louisbranch/crewportrait/internal/services/portrait/api"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CrewGenerateInput represents the MCP tool input for drafting a crew.
type CrewGenerateInput struct {
	Description     string `json:"description" jsonschema:"free-text description of the crew, e.g. 7 Tuskegee airmen"`
	ReplaceExisting bool   `json:"replace_existing,omitempty" jsonschema:"whether the caller replaces its current crew"`
}

// CrewGenerateResult represents a drafted crew.
type CrewGenerateResult struct {
	CrewID          string          `json:"crew_id" jsonschema:"identifier of the crew"`
	Count           int             `json:"count" jsonschema:"number of members drafted"`
	ReplaceExisting bool            `json:"replace_existing" jsonschema:"echo of the request flag"`
	Crew            []crew.Portrait `json:"crew" jsonschema:"members with their portrait characters"`
}

// PostcardLayoutInput represents the MCP tool input for a postcard layout.
type PostcardLayoutInput struct {
	Color string `json:"color,omitempty" jsonschema:"template color: blue or orange (default blue)"`
	Count int    `json:"count" jsonschema:"number of characters to place (1-10)"`
}

// CrewGenerateTool defines the MCP tool schema for drafting crews.
func CrewGenerateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "crew_generate",
		Description: "Drafts a WW2 crew of up to 10 members from a description and draws a portrait for each",
	}
}

// PostcardLayoutTool defines the MCP tool schema for postcard layouts.
func PostcardLayoutTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "postcard_layout",
		Description: "Returns the postcard template and the slot rectangles for a crew photo",
	}
}

// CrewGenerateHandler drafts a crew through the portrait API.
func CrewGenerateHandler(svc api.API) mcp.ToolHandlerFor[CrewGenerateInput, CrewGenerateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CrewGenerateInput) (*mcp.CallToolResult, CrewGenerateResult, error) {
		callCtx, cancel := withCallTimeout(ctx, timeouts.CrewDraft+timeouts.MCPCall)
		defer cancel()
		resp, err := svc.GenerateCrew(callCtx, api.GenerateCrewRequest{Description: input.Description, ReplaceExisting: input.ReplaceExisting})
		if err != nil {
			return nil, CrewGenerateResult{}, toolError("generate crew", err)
		}
		return nil, CrewGenerateResult{
			CrewID:          resp.CrewID,
			Count:           resp.Count,
			ReplaceExisting: resp.ReplaceExisting,
			Crew:            resp.Crew,
		}, nil
	}
}

// PostcardLayoutHandler returns a postcard layout through the portrait API.
func PostcardLayoutHandler(svc api.API) mcp.ToolHandlerFor[PostcardLayoutInput, postcard.Layout] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PostcardLayoutInput) (*mcp.CallToolResult, postcard.Layout, error) {
		callCtx, cancel := withCallTimeout(ctx, timeouts.MCPCall)
		defer cancel()
		layout, err := svc.GetPostcardLayout(callCtx, api.GetPostcardLayoutRequest{Color: input.Color, Count: input.Count})
		if err != nil {
			return nil, postcard.Layout{}, toolError("postcard layout", err)
		}
		return nil, layout, nil
	}
}
