package quiz

import (
	"context"
	"errors"
	"fmt"

	"quizzly-backend/internal/config"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrChoiceNotFound   = errors.New("choice not found")
	ErrNoMoreQuestions  = errors.New("no more questions available")
)

// Generator is the agent gateway contract: given a topic it either records a
// full quiz in storage and reports the new session id, or fails.
type Generator interface {
	GenerateQuiz(ctx context.Context, topic string) (uint, error)
}

type QuizService interface {
	Generate(ctx context.Context, topic string) (*GenerateResponse, error)
	NextQuestion(ctx context.Context, sessionID uint) (*QuestionResponse, error)
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error)
	Finalize(ctx context.Context, req FinalizeRequest) (*ResultResponse, error)
}

type quizService struct {
	repo      QuizRepository
	generator Generator
}

func NewService(repo QuizRepository, generator Generator) QuizService {
	return &quizService{repo: repo, generator: generator}
}

func (s *quizService) Generate(ctx context.Context, topic string) (*GenerateResponse, error) {
	log := config.WithContext(ctx).WithField("topic", topic)
	log.Info("starting quiz generation")

	sessionID, err := s.generator.GenerateQuiz(ctx, topic)
	if err != nil {
		log.WithError(err).Error("quiz generation failed")
		return nil, err
	}

	log.WithField("session_id", sessionID).Info("quiz generated")
	return &GenerateResponse{
		SessionID:      sessionID,
		TotalQuestions: TotalQuestions,
		Message:        "Your quiz has been generated successfully! You can now start the test.",
	}, nil
}

func (s *quizService) NextQuestion(ctx context.Context, sessionID uint) (*QuestionResponse, error) {
	session, err := s.repo.GetSessionByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	answered, err := s.repo.AnsweredQuestionIDs(sessionID)
	if err != nil {
		return nil, err
	}

	question, err := s.repo.NextQuestion(session.Topic, answered)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrNoMoreQuestions
	}

	choices := make([]ChoiceDTO, 0, len(question.Choices))
	for _, c := range question.Choices {
		choices = append(choices, ChoiceDTO{ID: c.ID, ChoiceText: c.ChoiceText})
	}

	return &QuestionResponse{
		ID:             question.ID,
		QuestionText:   question.QuestionText,
		Choices:        choices,
		CurrentNumber:  len(answered) + 1,
		TotalQuestions: TotalQuestions,
	}, nil
}

func (s *quizService) Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error) {
	log := config.WithContext(ctx).WithField("session_id", req.SessionID)

	session, err := s.repo.GetSessionByID(req.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	question, err := s.repo.GetQuestionByID(req.QuestionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	choice, err := s.repo.GetChoiceByID(req.ChoiceID)
	if err != nil {
		return nil, err
	}
	if choice == nil {
		return nil, ErrChoiceNotFound
	}

	answer := UserAnswer{
		SessionID:  req.SessionID,
		QuestionID: req.QuestionID,
		ChoiceID:   req.ChoiceID,
		IsCorrect:  choice.IsCorrect,
	}
	if err := s.repo.CreateAnswer(&answer); err != nil {
		log.WithError(err).Error("failed to record answer")
		return nil, err
	}

	resp := SubmitResponse{IsCorrect: choice.IsCorrect}

	if !choice.IsCorrect {
		correct, err := s.repo.CorrectChoice(question.ID)
		if err != nil {
			return nil, err
		}
		correctText := "unknown"
		if correct != nil {
			resp.CorrectChoiceID = &correct.ID
			correctText = correct.ChoiceText
		}
		resp.Explanation = fmt.Sprintf(
			"The correct answer is '%s'. This is the most accurate option based on the question requirements.",
			correctText,
		)
	}

	answeredCount, err := s.repo.CountAnswers(req.SessionID)
	if err != nil {
		return nil, err
	}
	resp.NextQuestionAvailable = answeredCount < TotalQuestions

	return &resp, nil
}

func (s *quizService) Finalize(ctx context.Context, req FinalizeRequest) (*ResultResponse, error) {
	log := config.WithContext(ctx).WithField("session_id", req.SessionID)

	session, err := s.repo.GetSessionByID(req.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	result := QuizResult{
		UserName:       req.UserName,
		UserEmail:      req.UserEmail,
		Topic:          session.Topic,
		Score:          session.TotalScore,
		TotalQuestions: TotalQuestions,
	}
	if err := s.repo.FinalizeSession(&result, session.ID); err != nil {
		log.WithError(err).Error("failed to finalize session")
		return nil, err
	}

	log.WithField("score", result.Score).Info("session finalized")
	return &ResultResponse{
		UserName:       result.UserName,
		Topic:          result.Topic,
		Score:          result.Score,
		TotalQuestions: TotalQuestions,
		Percentage:     float64(result.Score) / float64(TotalQuestions) * 100,
		CompletedAt:    result.CompletedAt,
	}, nil
}
