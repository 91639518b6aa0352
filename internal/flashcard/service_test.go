package flashcard

import (
	"context"
	"errors"
	"testing"

	"github.com/skabbuzaid/AiBackend/internal/llm"
)

type fakeRepo struct {
	sets    map[string]*FlashcardSet
	order   []string
	touched []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{sets: map[string]*FlashcardSet{}}
}

func (f *fakeRepo) CreateWithTopic(s *FlashcardSet) error {
	f.sets[s.ID] = s
	f.order = append(f.order, s.ID)
	f.touched = append(f.touched, s.Topic)
	return nil
}

func (f *fakeRepo) GetByID(id string) (*FlashcardSet, error) {
	return f.sets[id], nil
}

func (f *fakeRepo) ListBySession(sessionID string) ([]FlashcardSet, error) {
	var out []FlashcardSet
	for _, id := range f.order {
		if f.sets[id].SessionID == sessionID {
			out = append(out, *f.sets[id])
		}
	}
	return out, nil
}

func (f *fakeRepo) CountBySession(sessionID string) (int64, error) {
	out, _ := f.ListBySession(sessionID)
	return int64(len(out)), nil
}

type fakeProvider struct {
	response string
	err      error
}

func (f *fakeProvider) Invoke(_ context.Context, _ []llm.Message) (string, error) {
	return f.response, f.err
}

const validGeneration = "```json\n" + `{
	"title": "Go Terms",
	"cards": [
		{"id": 1, "front": "goroutine", "back": "A lightweight thread managed by the Go runtime.", "hint": "concurrency"},
		{"front": "channel", "back": "A typed conduit for goroutine communication."}
	]
}` + "\n```"

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("ParsesAndBackfillsIDs", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, &fakeProvider{response: validGeneration})

		set, err := svc.Generate(ctx, GenerateRequest{Topic: "Go", NumCards: 2, SessionID: "s1"})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		cards, err := set.DecodeCards()
		if err != nil || len(cards) != 2 {
			t.Fatalf("cards = %v, err %v", cards, err)
		}
		if cards[1].ID != 2 {
			t.Errorf("second card id = %d, want backfilled 2", cards[1].ID)
		}
		if len(repo.touched) != 1 || repo.touched[0] != "Go" {
			t.Errorf("topic not touched: %v", repo.touched)
		}
	})

	t.Run("FallbackOnProviderError", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, &fakeProvider{err: errors.New("timeout")})

		set, err := svc.Generate(ctx, GenerateRequest{Topic: "Biology", SessionID: "s1"})
		if err != nil {
			t.Fatalf("Generate must not surface collaborator errors: %v", err)
		}
		cards, _ := set.DecodeCards()
		if len(cards) != 1 {
			t.Errorf("expected one placeholder card, got %d", len(cards))
		}
	})

	t.Run("RejectsCardWithoutBack", func(t *testing.T) {
		raw := `{"title": "T", "cards": [{"id": 1, "front": "x", "back": ""}]}`
		if _, _, err := parseGeneration(raw); err == nil {
			t.Error("expected error for card missing back")
		}
	})
}

func TestListBySession(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo, &fakeProvider{response: validGeneration})

	if _, err := svc.Generate(ctx, GenerateRequest{Topic: "Go", SessionID: "s1"}); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if _, err := svc.Generate(ctx, GenerateRequest{Topic: "SQL", SessionID: "s2"}); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	summaries, err := svc.ListBySession(ctx, "s1")
	if err != nil {
		t.Fatalf("ListBySession failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	if summaries[0].CardCount != 2 || summaries[0].Topic != "Go" {
		t.Errorf("unexpected summary: %+v", summaries[0])
	}
}
