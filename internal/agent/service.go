package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"quizzly-backend/internal/config"
)

var ErrGenerationFailed = errors.New("agent failed to initialize the quiz session")

// maxTurns caps the tool-calling conversation. A well-behaved run needs two
// turns (context lookup, then recording); the cap only guards against a model
// that keeps calling tools.
const maxTurns = 6

type Service interface {
	GenerateQuiz(ctx context.Context, topic string) (uint, error)
}

type service struct {
	provider Provider
	tools    *Toolset
	settings *config.Settings
}

func NewService(provider Provider, tools *Toolset, settings *config.Settings) Service {
	return &service{provider: provider, tools: tools, settings: settings}
}

type toolEvent struct {
	Name     string
	Response map[string]any
}

// GenerateQuiz drives the agent conversation: the model is given the two
// tools, every function call it emits is executed locally and fed back, and
// the collected tool events are then scanned for the session id recorded by
// record_quiz_session.
func (s *service) GenerateQuiz(ctx context.Context, topic string) (uint, error) {
	log := config.WithContext(ctx).
		WithField("run_id", uuid.NewString()).
		WithField("topic", topic)

	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(s.settings.GeminiTemperature)),
		MaxOutputTokens:   int32(s.settings.GeminiMaxTokens),
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Tools: []*genai.Tool{
			{FunctionDeclarations: s.tools.Declarations()},
		},
	}

	contents := []*genai.Content{
		genai.NewContentFromText(buildUserPrompt(topic), genai.RoleUser),
	}

	var events []toolEvent
	for turn := 0; turn < maxTurns; turn++ {
		resp, err := s.provider.GenerateContent(ctx, contents, cfg)
		if err != nil {
			return 0, fmt.Errorf("agent run failed: %w", err)
		}

		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			break
		}

		if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
			contents = append(contents, resp.Candidates[0].Content)
		}

		parts := make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			log.WithField("tool", call.Name).Debug("executing tool call")
			response := s.tools.Dispatch(ctx, call)
			events = append(events, toolEvent{Name: call.Name, Response: response})
			parts = append(parts, genai.NewPartFromFunctionResponse(call.Name, response))
		}
		contents = append(contents, genai.NewContentFromParts(parts, genai.RoleUser))
	}

	for _, ev := range events {
		if ev.Name != toolRecordQuizSession {
			continue
		}
		if id, ok := ev.Response["result"].(int64); ok && id != failureSentinel {
			return uint(id), nil
		}
	}

	log.Warn("agent finished without recording a quiz session")
	return 0, ErrGenerationFailed
}
