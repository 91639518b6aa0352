package chat

import "gorm.io/gorm"

type ChatRepository interface {
	Append(turn *ChatTurn) error
	// Oldest returns up to limit turns, oldest first. The conversation
	// window is a bounded prefix, not a sliding recent-window.
	Oldest(sessionID string, limit int) ([]ChatTurn, error)
	All(sessionID string) ([]ChatTurn, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Append(turn *ChatTurn) error {
	return r.db.Create(turn).Error
}

func (r *chatRepository) Oldest(sessionID string, limit int) ([]ChatTurn, error) {
	var turns []ChatTurn
	if err := r.db.
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Limit(limit).
		Find(&turns).Error; err != nil {
		return nil, err
	}
	return turns, nil
}

func (r *chatRepository) All(sessionID string) ([]ChatTurn, error) {
	var turns []ChatTurn
	if err := r.db.
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&turns).Error; err != nil {
		return nil, err
	}
	return turns, nil
}
