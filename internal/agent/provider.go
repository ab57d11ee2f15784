package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"quizzly-backend/internal/config"
)

// Provider abstracts the model backend so the generation loop can be
// exercised without network access.
type Provider interface {
	GenerateContent(ctx context.Context, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, settings *config.Settings) (Provider, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  settings.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if settings.GeminiAPIBase != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: settings.GeminiAPIBase}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: settings.GeminiModel}, nil
}

func (p *geminiProvider) GenerateContent(ctx context.Context, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return p.client.Models.GenerateContent(ctx, p.model, contents, cfg)
}
