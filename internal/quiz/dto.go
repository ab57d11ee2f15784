package quiz

import "time"

type GenerateRequest struct {
	Topic string `json:"topic" validate:"required,min=2"`
}

type GenerateResponse struct {
	SessionID      uint   `json:"session_id"`
	TotalQuestions int    `json:"total_questions"`
	Message        string `json:"message"`
}

// ChoiceDTO deliberately omits the correctness flag so the client can never
// see the answer key while the quiz is running.
type ChoiceDTO struct {
	ID         uint   `json:"id"`
	ChoiceText string `json:"choice_text"`
}

type QuestionResponse struct {
	ID             uint        `json:"id"`
	QuestionText   string      `json:"question_text"`
	Choices        []ChoiceDTO `json:"choices"`
	CurrentNumber  int         `json:"current_number"`
	TotalQuestions int         `json:"total_questions"`
}

type SubmitRequest struct {
	SessionID  uint `json:"session_id" validate:"required"`
	QuestionID uint `json:"question_id" validate:"required"`
	ChoiceID   uint `json:"choice_id" validate:"required"`
}

type SubmitResponse struct {
	IsCorrect             bool   `json:"is_correct"`
	CorrectChoiceID       *uint  `json:"correct_choice_id,omitempty"`
	Explanation           string `json:"explanation,omitempty"`
	NextQuestionAvailable bool   `json:"next_question_available"`
}

type FinalizeRequest struct {
	SessionID uint   `json:"session_id" validate:"required"`
	UserName  string `json:"user_name" validate:"required"`
	UserEmail string `json:"user_email" validate:"required,email"`
}

type ResultResponse struct {
	UserName       string    `json:"user_name"`
	Topic          string    `json:"topic"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     float64   `json:"percentage"`
	CompletedAt    time.Time `json:"completed_at"`
}
