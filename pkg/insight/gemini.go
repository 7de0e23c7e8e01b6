package insight

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Gemini summarizes through the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds the summarizer. The model falls back to the flash preview
// the dashboard has always used.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("insight: gemini api key required")
	}
	if model == "" {
		model = "gemini-3-flash-preview"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("insight: create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

var _ Summarizer = (*Gemini)(nil)

func (g *Gemini) Summarize(ctx context.Context, snap Snapshot) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(Prompt(snap)), nil)
	if err != nil {
		return "", fmt.Errorf("insight: generate: %w", err)
	}
	return resp.Text(), nil
}
