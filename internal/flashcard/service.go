package flashcard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skabbuzaid/AiBackend/internal/config"
	"github.com/skabbuzaid/AiBackend/internal/llm"
)

var ErrSetNotFound = errors.New("flashcard set not found")

type GenerateRequest struct {
	Topic     string `json:"topic"`
	NumCards  int    `json:"num_cards"`
	SessionID string `json:"session_id"`
}

type FlashcardService interface {
	Generate(ctx context.Context, req GenerateRequest) (*FlashcardSet, error)
	Get(ctx context.Context, setID string) (*FlashcardSet, error)
	ListBySession(ctx context.Context, sessionID string) ([]SetSummary, error)
}

type flashcardService struct {
	repo     FlashcardRepository
	provider llm.Provider
}

func NewService(repo FlashcardRepository, provider llm.Provider) FlashcardService {
	return &flashcardService{repo: repo, provider: provider}
}

type generationPayload struct {
	Title string `json:"title"`
	Cards []Card `json:"cards"`
}

func parseGeneration(raw string) (string, []Card, error) {
	clean := llm.ExtractJSON(raw)
	if clean == "" {
		return "", nil, errors.New("empty generation response")
	}

	var payload generationPayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return "", nil, fmt.Errorf("failed to decode generation JSON: %w", err)
	}
	if len(payload.Cards) == 0 {
		return "", nil, errors.New("generation contained no cards")
	}
	for i := range payload.Cards {
		c := &payload.Cards[i]
		if c.Front == "" || c.Back == "" {
			return "", nil, fmt.Errorf("card %d is missing front or back", i+1)
		}
		if c.ID == 0 {
			c.ID = i + 1
		}
	}
	return payload.Title, payload.Cards, nil
}

func fallbackSet(topic string) (string, []Card) {
	title := fmt.Sprintf("Flashcards: %s", topic)
	cards := []Card{{
		ID:    1,
		Front: fmt.Sprintf("What is %s?", topic),
		Back:  fmt.Sprintf("Review your study material on %s.", topic),
		Hint:  "Placeholder card generated while the flashcard service was unavailable.",
	}}
	return title, cards
}

// Generate mirrors quiz generation: collaborator or parse failures are
// masked with a placeholder set, only store failures surface.
func (s *flashcardService) Generate(ctx context.Context, req GenerateRequest) (*FlashcardSet, error) {
	log := config.WithContext(ctx)

	title, cards := s.generateCards(ctx, req)

	set := &FlashcardSet{
		ID:        fmt.Sprintf("flashcard-%s", strings.ReplaceAll(uuid.NewString(), "-", "")),
		Topic:     req.Topic,
		Title:     title,
		SessionID: req.SessionID,
	}
	if err := set.SetCards(cards); err != nil {
		return nil, fmt.Errorf("failed to encode cards: %w", err)
	}

	if err := s.repo.CreateWithTopic(set); err != nil {
		log.WithError(err).Error("failed to persist flashcard set")
		return nil, fmt.Errorf("failed to save flashcard set: %w", err)
	}

	log.WithField("set_id", set.ID).Infof("generated flashcard set with %d cards", len(cards))
	return set, nil
}

func (s *flashcardService) generateCards(ctx context.Context, req GenerateRequest) (string, []Card) {
	log := config.WithContext(ctx)

	if s.provider == nil {
		log.Warn("llm provider unavailable, using fallback flashcards")
		return fallbackSet(req.Topic)
	}

	raw, err := s.provider.Invoke(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: generationSystemPrompt},
		{Role: llm.RoleUser, Content: buildGenerationPrompt(req.Topic, req.NumCards)},
	})
	if err != nil {
		log.WithError(err).Warn("flashcard generation call failed, using fallback set")
		return fallbackSet(req.Topic)
	}

	title, cards, err := parseGeneration(raw)
	if err != nil {
		log.WithError(err).Warn("flashcard generation response unusable, using fallback set")
		return fallbackSet(req.Topic)
	}
	return title, cards
}

func (s *flashcardService) Get(ctx context.Context, setID string) (*FlashcardSet, error) {
	set, err := s.repo.GetByID(setID)
	if err != nil {
		return nil, fmt.Errorf("failed to load flashcard set: %w", err)
	}
	if set == nil {
		return nil, ErrSetNotFound
	}
	return set, nil
}

func (s *flashcardService) ListBySession(ctx context.Context, sessionID string) ([]SetSummary, error) {
	sets, err := s.repo.ListBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flashcard sets: %w", err)
	}

	summaries := make([]SetSummary, 0, len(sets))
	for i := range sets {
		cards, err := sets[i].DecodeCards()
		if err != nil {
			config.WithContext(ctx).WithError(err).
				Warnf("skipping undecodable card payload for set %s", sets[i].ID)
			cards = nil
		}
		summaries = append(summaries, SetSummary{
			SetID:     sets[i].ID,
			Title:     sets[i].Title,
			Topic:     sets[i].Topic,
			CardCount: len(cards),
			CreatedAt: sets[i].CreatedAt,
		})
	}
	return summaries, nil
}
