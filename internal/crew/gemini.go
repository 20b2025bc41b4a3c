package crew

import (
	"context"
	"errors"
	"strings"

	genai "google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

const maxOutputTokens = 4096

var errEmptyResponse = errors.New("gemini returned no content")

// GeminiDrafter drafts crews with the Gemini API.
type GeminiDrafter struct {
	cli   *genai.Client
	model string
}

// NewGeminiDrafter creates a drafter bound to the given API key and model.
func NewGeminiDrafter(ctx context.Context, apiKey, model string) (*GeminiDrafter, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is required")
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultGeminiModel
	}
	return &GeminiDrafter{cli: cli, model: model}, nil
}

// Name identifies the backing model.
func (g *GeminiDrafter) Name() string { return "gemini:" + g.model }

// Draft sends the crew prompt and returns the first candidate's text.
func (g *GeminiDrafter) Draft(ctx context.Context, description string) (string, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: BuildPrompt(description)}}}},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			MaxOutputTokens:  maxOutputTokens,
		},
	)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errEmptyResponse
	}
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}
