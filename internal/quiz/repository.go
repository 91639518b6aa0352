package quiz

import (
	"errors"

	"github.com/skabbuzaid/AiBackend/internal/topic"
	"gorm.io/gorm"
)

type QuizRepository interface {
	// CreateWithTopic persists the quiz and touches the session's topic
	// row in one transaction: a partial Quiz+Topic write never persists.
	CreateWithTopic(q *Quiz) error
	GetByID(id string) (*Quiz, error)
	// SaveScoreWithTopic persists the score and touches the quiz's topic
	// row atomically.
	SaveScoreWithTopic(s *QuizScore, topicName string) error
	ScoresBySession(sessionID string) ([]QuizScore, error)
	RecentScoresBySession(sessionID string, limit int) ([]QuizScore, error)
	CountScoresBySession(sessionID string) (int64, error)
}

type quizRepository struct {
	db     *gorm.DB
	topics topic.TopicRepository
}

func NewRepository(db *gorm.DB, topics topic.TopicRepository) QuizRepository {
	return &quizRepository{db: db, topics: topics}
}

func (r *quizRepository) CreateWithTopic(q *Quiz) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(q).Error; err != nil {
			return err
		}
		return r.topics.Touch(tx, q.SessionID, q.Topic)
	})
}

func (r *quizRepository) GetByID(id string) (*Quiz, error) {
	var q Quiz
	if err := r.db.First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *quizRepository) SaveScoreWithTopic(s *QuizScore, topicName string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(s).Error; err != nil {
			return err
		}
		return r.topics.Touch(tx, s.SessionID, topicName)
	})
}

func (r *quizRepository) ScoresBySession(sessionID string) ([]QuizScore, error) {
	var scores []QuizScore
	if err := r.db.
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *quizRepository) RecentScoresBySession(sessionID string, limit int) ([]QuizScore, error) {
	var scores []QuizScore
	if err := r.db.
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *quizRepository) CountScoresBySession(sessionID string) (int64, error) {
	var count int64
	err := r.db.Model(&QuizScore{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}
