package chat

import (
	"github.com/skabbuzaid/AiBackend/internal/llm"
	"gorm.io/gorm"
)

type ChatContainer struct {
	Handler *Handler
	Repo    ChatRepository
}

func NewChatContainer(db *gorm.DB, scores ScoreCounter, topics TopicSource, provider llm.Provider, searcher Searcher) *ChatContainer {
	repo := NewRepository(db)
	service := NewService(repo, scores, topics, provider, searcher)
	handler := NewHandler(service)

	return &ChatContainer{
		Handler: handler,
		Repo:    repo,
	}
}
