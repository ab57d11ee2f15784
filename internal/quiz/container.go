package quiz

import "gorm.io/gorm"

type QuizContainer struct {
	Repo    QuizRepository
	Service QuizService
	Handler *Handler
}

func NewQuizContainer(db *gorm.DB, generator Generator) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, generator)
	handler := NewHandler(service)

	return &QuizContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
