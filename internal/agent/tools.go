package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"quizzly-backend/internal/config"
	"quizzly-backend/internal/quiz"
)

const (
	toolRecordQuizSession     = "record_quiz_session"
	toolGetEducationalContext = "get_educational_context"

	// failureSentinel is what record_quiz_session reports to the model when
	// the storage write fails. The generation loop treats it as a hard error.
	failureSentinel = -1
)

// Toolset is the only surface through which the agent touches storage.
type Toolset struct {
	repo quiz.QuizRepository
}

func NewToolset(repo quiz.QuizRepository) *Toolset {
	return &Toolset{repo: repo}
}

func (t *Toolset) Declarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name:        toolRecordQuizSession,
			Description: "Saves a finished quiz to the database: creates a quiz session for the topic and stores every question with its choices. Returns the new session id, or -1 on failure.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"topic": {
						Type:        genai.TypeString,
						Description: "The subject of the quiz.",
					},
					"questions": {
						Type:        genai.TypeArray,
						Description: "The generated questions, in presentation order.",
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"question_text": {Type: genai.TypeString},
								"choices": {
									Type: genai.TypeArray,
									Items: &genai.Schema{
										Type: genai.TypeObject,
										Properties: map[string]*genai.Schema{
											"choice_text": {Type: genai.TypeString},
											"is_correct":  {Type: genai.TypeBoolean},
										},
										Required: []string{"choice_text", "is_correct"},
									},
								},
							},
							Required: []string{"question_text", "choices"},
						},
					},
				},
				Required: []string{"topic", "questions"},
			},
		},
		{
			Name:        toolGetEducationalContext,
			Description: "Provides pedagogical guidance for a topic to help generate accurate and challenging questions.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"topic": {Type: genai.TypeString},
				},
				Required: []string{"topic"},
			},
		},
	}
}

// Dispatch executes one function call issued by the model and returns the
// response payload to feed back into the conversation.
func (t *Toolset) Dispatch(ctx context.Context, call *genai.FunctionCall) map[string]any {
	log := config.WithContext(ctx).WithField("tool", call.Name)

	switch call.Name {
	case toolRecordQuizSession:
		return map[string]any{"result": t.recordQuizSession(ctx, call.Args)}
	case toolGetEducationalContext:
		topic, _ := call.Args["topic"].(string)
		return map[string]any{"result": EducationalContext(topic)}
	default:
		log.Warn("model called an undeclared tool")
		return map[string]any{"error": fmt.Sprintf("unknown tool %q", call.Name)}
	}
}

type recordQuizArgs struct {
	Topic     string                   `json:"topic"`
	Questions []quiz.GeneratedQuestion `json:"questions"`
}

func (t *Toolset) recordQuizSession(ctx context.Context, args map[string]any) int64 {
	log := config.WithContext(ctx)

	raw, err := json.Marshal(args)
	if err != nil {
		log.WithError(err).Error("failed to re-encode tool arguments")
		return failureSentinel
	}
	var parsed recordQuizArgs
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.WithError(err).Error("record_quiz_session received malformed arguments")
		return failureSentinel
	}
	if parsed.Topic == "" || len(parsed.Questions) == 0 {
		log.Warn("record_quiz_session called without topic or questions")
		return failureSentinel
	}

	sessionID, err := t.repo.RecordGeneratedQuiz(parsed.Topic, parsed.Questions)
	if err != nil {
		log.WithError(err).Error("failed to persist generated quiz")
		return failureSentinel
	}

	log.WithField("session_id", sessionID).
		WithField("questions", len(parsed.Questions)).
		Info("generated quiz persisted")
	return int64(sessionID)
}
