package container

import (
	"context"
	"fmt"

	"quizzly-backend/internal/agent"
	"quizzly-backend/internal/config"
	"quizzly-backend/internal/quiz"
)

type Container struct {
	Settings       *config.Settings
	AgentContainer *agent.AgentContainer
	QuizContainer  *quiz.QuizContainer
}

// New wires the whole service. The agent gateway is constructed once here and
// handed to the quiz service explicitly; nothing reaches for a process-wide
// agent instance.
func New(ctx context.Context) (*Container, error) {
	settings := config.Init()

	if err := config.Connect(ctx, settings.DatabaseDSN); err != nil {
		return nil, err
	}
	if err := quiz.AutoMigrate(config.DB); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	repo := quiz.NewRepository(config.DB)

	agentContainer, err := agent.NewAgentContainer(ctx, settings, repo)
	if err != nil {
		return nil, err
	}

	quizContainer := quiz.NewQuizContainer(config.DB, agentContainer.Service)

	return &Container{
		Settings:       settings,
		AgentContainer: agentContainer,
		QuizContainer:  quizContainer,
	}, nil
}
