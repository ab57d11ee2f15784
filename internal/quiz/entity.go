package quiz

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"

	// TotalQuestions is the number of questions the agent is instructed to
	// author per session. What the agent actually recorded is not re-checked.
	TotalQuestions = 5
)

type Question struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	QuestionText string `gorm:"type:text;not null" json:"question_text"`
	Topic        string `gorm:"type:text;not null;index" json:"topic"`
	OrderIndex   int    `gorm:"not null;default:0" json:"order_index"`

	Choices []Choice `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"choices,omitempty"`
}

type Choice struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ChoiceText string `gorm:"type:text;not null" json:"choice_text"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"is_correct"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
}

type QuizSession struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Topic      string    `gorm:"type:text;not null;index" json:"topic"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	Status     string    `gorm:"type:varchar(20);not null;default:active" json:"status"`
	TotalScore int       `gorm:"not null;default:0" json:"total_score"`

	Answers []UserAnswer `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

type UserAnswer struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	SessionID  uint `gorm:"not null;index" json:"session_id"`
	QuestionID uint `gorm:"not null" json:"question_id"`
	ChoiceID   uint `gorm:"not null" json:"choice_id"`
	IsCorrect  bool `gorm:"not null" json:"is_correct"`
}

// QuizResult is the archival snapshot written at finalize time. It carries no
// foreign key back to the session: sessions may be pruned while results stay.
type QuizResult struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserName       string    `gorm:"type:text;not null" json:"user_name"`
	UserEmail      string    `gorm:"type:text;not null;index" json:"user_email"`
	Topic          string    `gorm:"type:text;not null" json:"topic"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null;default:5" json:"total_questions"`
	CompletedAt    time.Time `gorm:"autoCreateTime" json:"completed_at"`
}

// GeneratedChoice and GeneratedQuestion are the shapes the generation agent
// hands over when it records a finished quiz.
type GeneratedChoice struct {
	ChoiceText string `json:"choice_text"`
	IsCorrect  bool   `json:"is_correct"`
}

type GeneratedQuestion struct {
	QuestionText string            `json:"question_text"`
	Choices      []GeneratedChoice `json:"choices"`
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&QuizSession{},
		&Question{},
		&Choice{},
		&UserAnswer{},
		&QuizResult{},
	)
}
