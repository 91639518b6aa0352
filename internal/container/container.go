package container

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/skabbuzaid/AiBackend/internal/chat"
	"github.com/skabbuzaid/AiBackend/internal/companion"
	"github.com/skabbuzaid/AiBackend/internal/config"
	"github.com/skabbuzaid/AiBackend/internal/flashcard"
	"github.com/skabbuzaid/AiBackend/internal/llm"
	"github.com/skabbuzaid/AiBackend/internal/progress"
	"github.com/skabbuzaid/AiBackend/internal/quiz"
	"github.com/skabbuzaid/AiBackend/internal/search"
	"github.com/skabbuzaid/AiBackend/internal/session"
	"github.com/skabbuzaid/AiBackend/internal/topic"
)

type Container struct {
	ChatContainer      *chat.ChatContainer
	QuizContainer      *quiz.QuizContainer
	FlashcardContainer *flashcard.FlashcardContainer
	ProgressContainer  *progress.ProgressContainer
	CompanionContainer *companion.CompanionContainer
	SessionHandler     *session.Handler
}

func New() *Container {
	config.Load()
	config.Init()

	ctx := context.Background()

	if err := config.Connect(ctx, config.AppConfig.DatabaseDSN); err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.AutoMigrate(
		&chat.ChatTurn{},
		&quiz.Quiz{},
		&quiz.QuizScore{},
		&flashcard.FlashcardSet{},
		&topic.Topic{},
	); err != nil {
		logrus.Fatalf("failed to run migrations: %v", err)
	}

	// A missing API key degrades generation to placeholder content and
	// chat to 503, so startup proceeds with a nil provider.
	provider, err := llm.NewGeminiProvider(ctx)
	if err != nil {
		logrus.WithError(err).Warn("LLM provider unavailable")
		provider = nil
	}

	searcher := search.NewClient()
	topicRepo := topic.NewRepository(config.DB)

	quizContainer := quiz.NewQuizContainer(config.DB, topicRepo, provider)
	flashcardContainer := flashcard.NewFlashcardContainer(config.DB, topicRepo, provider)
	chatContainer := chat.NewChatContainer(config.DB, quizContainer.Repo, topicRepo, provider, searcher)
	progressContainer := progress.NewProgressContainer(quizContainer.Repo, flashcardContainer.Repo, topicRepo)

	return &Container{
		ChatContainer:      chatContainer,
		QuizContainer:      quizContainer,
		FlashcardContainer: flashcardContainer,
		ProgressContainer:  progressContainer,
		CompanionContainer: companion.NewCompanionContainer(),
		SessionHandler:     session.NewHandler(),
	}
}
