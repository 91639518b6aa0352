package topic

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type TopicRepository interface {
	// Touch upserts the (sessionID, name) row, bumping last_studied. When
	// tx is non-nil the write joins the caller's transaction.
	Touch(tx *gorm.DB, sessionID, name string) error
	RecentNames(sessionID string, limit int) ([]string, error)
	CountDistinct(sessionID string) (int64, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Touch(tx *gorm.DB, sessionID, name string) error {
	db := tx
	if db == nil {
		db = r.db
	}

	var t Topic
	err := db.Where("session_id = ? AND name = ?", sessionID, name).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&Topic{
			SessionID:   sessionID,
			Name:        name,
			LastStudied: time.Now().UTC(),
		}).Error
	}
	if err != nil {
		return err
	}
	return db.Model(&t).Update("last_studied", time.Now().UTC()).Error
}

func (r *topicRepository) RecentNames(sessionID string, limit int) ([]string, error) {
	var names []string
	err := r.db.Model(&Topic{}).
		Where("session_id = ?", sessionID).
		Order("last_studied DESC").
		Limit(limit).
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *topicRepository) CountDistinct(sessionID string) (int64, error) {
	var count int64
	err := r.db.Model(&Topic{}).
		Where("session_id = ?", sessionID).
		Distinct("name").
		Count(&count).Error
	return count, err
}
