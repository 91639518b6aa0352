package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/skabbuzaid/AiBackend/internal/config"
	"github.com/skabbuzaid/AiBackend/internal/llm"
	"github.com/skabbuzaid/AiBackend/internal/search"
)

const historyWindow = 10

// ScoreCounter reports how many quiz submissions a session has made.
// Satisfied by the quiz repository.
type ScoreCounter interface {
	CountScoresBySession(sessionID string) (int64, error)
}

// TopicSource lists a session's most recently studied topic names.
// Satisfied by the topic repository.
type TopicSource interface {
	RecentNames(sessionID string, limit int) ([]string, error)
}

// Searcher is the best-effort web-search collaborator.
type Searcher interface {
	SearchFormatted(ctx context.Context, query string, maxResults int) string
}

type ChatService interface {
	Respond(ctx context.Context, sessionID, userText string) (string, error)
	History(ctx context.Context, sessionID string) ([]ChatTurn, error)
}

type chatService struct {
	repo     ChatRepository
	scores   ScoreCounter
	topics   TopicSource
	provider llm.Provider
	searcher Searcher
}

func NewService(repo ChatRepository, scores ScoreCounter, topics TopicSource, provider llm.Provider, searcher Searcher) ChatService {
	return &chatService{
		repo:     repo,
		scores:   scores,
		topics:   topics,
		provider: provider,
		searcher: searcher,
	}
}

const systemPromptTemplate = `You are EduAI, a friendly and encouraging AI tutor. Explain concepts
clearly, use Markdown formatting, give concrete examples, and adapt your
depth to the learner.

Learner profile:
- Quizzes taken: %d
- Recent topics: %s`

// Respond runs one chat exchange: gather context (failures tolerated),
// persist the user turn, invoke the model, persist the reply.
func (s *chatService) Respond(ctx context.Context, sessionID, userText string) (string, error) {
	log := config.WithContext(ctx)

	systemPrompt, history := s.gatherContext(ctx, sessionID)

	// The user's raw message is recorded before anything downstream can
	// fail, including an unconfigured model.
	if err := s.repo.Append(&ChatTurn{SessionID: sessionID, Role: RoleUser, Content: userText}); err != nil {
		return "", fmt.Errorf("failed to save user turn: %w", err)
	}

	if s.provider == nil {
		return "", llm.ErrUnconfigured
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	for _, turn := range history {
		role := llm.RoleUser
		if turn.Role == RoleAI {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: s.augment(ctx, userText)})

	reply, err := s.provider.Invoke(ctx, messages)
	if err != nil {
		log.WithError(err).Error("chat completion failed")
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if err := s.repo.Append(&ChatTurn{SessionID: sessionID, Role: RoleAI, Content: reply}); err != nil {
		return "", fmt.Errorf("failed to save assistant turn: %w", err)
	}

	return reply, nil
}

// gatherContext builds the system prompt and history window. Any failure
// degrades to an empty profile or history instead of aborting the turn.
func (s *chatService) gatherContext(ctx context.Context, sessionID string) (string, []ChatTurn) {
	log := config.WithContext(ctx)

	var quizCount int64
	if n, err := s.scores.CountScoresBySession(sessionID); err != nil {
		log.WithError(err).Warn("failed to count quiz scores, continuing with empty profile")
	} else {
		quizCount = n
	}

	topicList := "None yet"
	if names, err := s.topics.RecentNames(sessionID, 3); err != nil {
		log.WithError(err).Warn("failed to load recent topics, continuing with empty profile")
	} else if len(names) > 0 {
		topicList = strings.Join(names, ", ")
	}

	history, err := s.repo.Oldest(sessionID, historyWindow)
	if err != nil {
		log.WithError(err).Warn("failed to load chat history, continuing without it")
		history = nil
	}

	return fmt.Sprintf(systemPromptTemplate, quizCount, topicList), history
}

// augment appends formatted web-search results when the message asks for
// current information.
func (s *chatService) augment(ctx context.Context, userText string) string {
	if s.searcher == nil || !search.NeedsSearch(userText) {
		return userText
	}
	results := s.searcher.SearchFormatted(ctx, userText, 5)
	return fmt.Sprintf("%s\n\n%s", userText, results)
}

func (s *chatService) History(ctx context.Context, sessionID string) ([]ChatTurn, error) {
	turns, err := s.repo.All(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	return turns, nil
}
