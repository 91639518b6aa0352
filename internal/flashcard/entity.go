package flashcard

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Card struct {
	ID    int    `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
	Hint  string `json:"hint,omitempty"`
}

// FlashcardSet is immutable once created; cards live in a JSON column in
// generator order.
type FlashcardSet struct {
	ID        string         `gorm:"size:50;primaryKey" json:"set_id"`
	Topic     string         `gorm:"size:255;not null" json:"topic"`
	Title     string         `gorm:"size:255" json:"title"`
	Cards     datatypes.JSON `gorm:"not null" json:"cards"`
	SessionID string         `gorm:"size:255;index" json:"session_id"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (s *FlashcardSet) DecodeCards() ([]Card, error) {
	var cards []Card
	if err := json.Unmarshal(s.Cards, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *FlashcardSet) SetCards(cards []Card) error {
	raw, err := json.Marshal(cards)
	if err != nil {
		return err
	}
	s.Cards = datatypes.JSON(raw)
	return nil
}

// SetSummary is the listing shape for a session's sets.
type SetSummary struct {
	SetID     string    `json:"set_id"`
	Title     string    `json:"title"`
	Topic     string    `json:"topic"`
	CardCount int       `json:"card_count"`
	CreatedAt time.Time `json:"created_at"`
}
