package quiz_test

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"quizzly-backend/internal/quiz"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	// A second pooled connection would see its own empty :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := quiz.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

// generatedQuestions builds what the agent would record: five questions on
// the topic, four choices each, first choice correct.
func generatedQuestions(topic string) []quiz.GeneratedQuestion {
	questions := make([]quiz.GeneratedQuestion, 0, quiz.TotalQuestions)
	for i := 1; i <= quiz.TotalQuestions; i++ {
		q := quiz.GeneratedQuestion{
			QuestionText: fmt.Sprintf("%s question %d?", topic, i),
		}
		for j := 1; j <= 4; j++ {
			q.Choices = append(q.Choices, quiz.GeneratedChoice{
				ChoiceText: fmt.Sprintf("Option %d for question %d", j, i),
				IsCorrect:  j == 1,
			})
		}
		questions = append(questions, q)
	}
	return questions
}

func seedGeneratedQuiz(t *testing.T, repo quiz.QuizRepository, topic string) uint {
	t.Helper()

	sessionID, err := repo.RecordGeneratedQuiz(topic, generatedQuestions(topic))
	if err != nil {
		t.Fatalf("failed to seed generated quiz: %v", err)
	}
	return sessionID
}

func correctChoiceOf(t *testing.T, q *quiz.QuestionResponse, db *gorm.DB) (correct uint, wrong uint) {
	t.Helper()

	var choices []quiz.Choice
	if err := db.Where("question_id = ?", q.ID).Find(&choices).Error; err != nil {
		t.Fatalf("failed to load choices: %v", err)
	}
	for _, c := range choices {
		if c.IsCorrect {
			correct = c.ID
		} else if wrong == 0 {
			wrong = c.ID
		}
	}
	if correct == 0 || wrong == 0 {
		t.Fatalf("question %d is missing a correct or wrong choice", q.ID)
	}
	return correct, wrong
}
