package quiz

import (
	"errors"

	"gorm.io/gorm"
)

type QuizRepository interface {
	// RecordGeneratedQuiz writes one session and its generated questions and
	// choices in a single transaction. Partial writes never survive a failure.
	RecordGeneratedQuiz(topic string, questions []GeneratedQuestion) (uint, error)

	GetSessionByID(id uint) (*QuizSession, error)
	GetQuestionByID(id uint) (*Question, error)
	GetChoiceByID(id uint) (*Choice, error)

	AnsweredQuestionIDs(sessionID uint) ([]uint, error)
	NextQuestion(topic string, excluded []uint) (*Question, error)
	CorrectChoice(questionID uint) (*Choice, error)
	CountAnswers(sessionID uint) (int64, error)

	// CreateAnswer inserts the answer and, when it is correct, bumps the
	// session score at the storage layer inside the same transaction.
	CreateAnswer(answer *UserAnswer) error

	// FinalizeSession inserts the archival result and marks the session
	// completed in one transaction.
	FinalizeSession(result *QuizResult, sessionID uint) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) RecordGeneratedQuiz(topic string, questions []GeneratedQuestion) (uint, error) {
	session := QuizSession{Topic: topic, Status: StatusActive}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		for i, q := range questions {
			question := Question{
				QuestionText: q.QuestionText,
				Topic:        topic,
				OrderIndex:   i + 1,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
			for _, c := range q.Choices {
				choice := Choice{
					ChoiceText: c.ChoiceText,
					IsCorrect:  c.IsCorrect,
					QuestionID: question.ID,
				}
				if err := tx.Create(&choice).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return session.ID, nil
}

func (r *quizRepository) GetSessionByID(id uint) (*QuizSession, error) {
	var session QuizSession
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *quizRepository) GetQuestionByID(id uint) (*Question, error) {
	var question Question
	if err := r.db.Preload("Choices").First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *quizRepository) GetChoiceByID(id uint) (*Choice, error) {
	var choice Choice
	if err := r.db.First(&choice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &choice, nil
}

func (r *quizRepository) AnsweredQuestionIDs(sessionID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&UserAnswer{}).
		Where("session_id = ?", sessionID).
		Pluck("question_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *quizRepository) NextQuestion(topic string, excluded []uint) (*Question, error) {
	query := r.db.Preload("Choices").Where("topic = ?", topic)
	if len(excluded) > 0 {
		query = query.Where("id NOT IN ?", excluded)
	}

	var question Question
	if err := query.Order("order_index ASC, id ASC").First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *quizRepository) CorrectChoice(questionID uint) (*Choice, error) {
	var choice Choice
	if err := r.db.
		Where("question_id = ? AND is_correct = ?", questionID, true).
		First(&choice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &choice, nil
}

func (r *quizRepository) CountAnswers(sessionID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&UserAnswer{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *quizRepository) CreateAnswer(answer *UserAnswer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(answer).Error; err != nil {
			return err
		}
		if answer.IsCorrect {
			if err := tx.Model(&QuizSession{}).
				Where("id = ?", answer.SessionID).
				UpdateColumn("total_score", gorm.Expr("total_score + ?", 1)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *quizRepository) FinalizeSession(result *QuizResult, sessionID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(result).Error; err != nil {
			return err
		}
		return tx.Model(&QuizSession{}).
			Where("id = ?", sessionID).
			Update("status", StatusCompleted).Error
	})
}
