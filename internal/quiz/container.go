package quiz

import (
	"github.com/skabbuzaid/AiBackend/internal/llm"
	"github.com/skabbuzaid/AiBackend/internal/topic"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Handler *Handler
	Repo    QuizRepository
}

func NewQuizContainer(db *gorm.DB, topics topic.TopicRepository, provider llm.Provider) *QuizContainer {
	repo := NewRepository(db, topics)
	service := NewService(repo, provider)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Repo:    repo,
	}
}
