package flashcard

import (
	"errors"

	"github.com/skabbuzaid/AiBackend/internal/topic"
	"gorm.io/gorm"
)

type FlashcardRepository interface {
	// CreateWithTopic persists the set and touches the session's topic
	// row in one transaction.
	CreateWithTopic(s *FlashcardSet) error
	GetByID(id string) (*FlashcardSet, error)
	ListBySession(sessionID string) ([]FlashcardSet, error)
	CountBySession(sessionID string) (int64, error)
}

type flashcardRepository struct {
	db     *gorm.DB
	topics topic.TopicRepository
}

func NewRepository(db *gorm.DB, topics topic.TopicRepository) FlashcardRepository {
	return &flashcardRepository{db: db, topics: topics}
}

func (r *flashcardRepository) CreateWithTopic(s *FlashcardSet) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(s).Error; err != nil {
			return err
		}
		return r.topics.Touch(tx, s.SessionID, s.Topic)
	})
}

func (r *flashcardRepository) GetByID(id string) (*FlashcardSet, error) {
	var set FlashcardSet
	if err := r.db.First(&set, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &set, nil
}

func (r *flashcardRepository) ListBySession(sessionID string) ([]FlashcardSet, error) {
	var sets []FlashcardSet
	if err := r.db.
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (r *flashcardRepository) CountBySession(sessionID string) (int64, error) {
	var count int64
	err := r.db.Model(&FlashcardSet{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}
