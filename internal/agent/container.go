package agent

import (
	"context"
	"fmt"

	"quizzly-backend/internal/config"
	"quizzly-backend/internal/quiz"
)

type AgentContainer struct {
	Service Service
}

func NewAgentContainer(ctx context.Context, settings *config.Settings, repo quiz.QuizRepository) (*AgentContainer, error) {
	provider, err := NewGeminiProvider(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to build agent provider: %w", err)
	}

	tools := NewToolset(repo)
	service := NewService(provider, tools, settings)

	return &AgentContainer{Service: service}, nil
}
