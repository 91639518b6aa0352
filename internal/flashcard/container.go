package flashcard

import (
	"github.com/skabbuzaid/AiBackend/internal/llm"
	"github.com/skabbuzaid/AiBackend/internal/topic"
	"gorm.io/gorm"
)

type FlashcardContainer struct {
	Handler *Handler
	Repo    FlashcardRepository
}

func NewFlashcardContainer(db *gorm.DB, topics topic.TopicRepository, provider llm.Provider) *FlashcardContainer {
	repo := NewRepository(db, topics)
	service := NewService(repo, provider)
	handler := NewHandler(service)

	return &FlashcardContainer{
		Handler: handler,
		Repo:    repo,
	}
}
