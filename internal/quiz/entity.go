package quiz

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Question is one entry in a quiz's stored question list. IDs are assigned
// by the generator, unique within the quiz but not globally; scoring keys
// by the id as stored, never by position.
type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// Quiz is immutable once created. Questions live in a JSON column, in the
// order the generator produced them.
type Quiz struct {
	ID         string         `gorm:"size:50;primaryKey" json:"quiz_id"`
	Topic      string         `gorm:"size:255;not null" json:"topic"`
	Difficulty Difficulty     `gorm:"size:50" json:"difficulty"`
	Title      string         `gorm:"size:255" json:"title"`
	Questions  datatypes.JSON `gorm:"not null" json:"questions"`
	SessionID  string         `gorm:"size:255;index" json:"session_id"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (q *Quiz) DecodeQuestions() ([]Question, error) {
	var questions []Question
	if err := json.Unmarshal(q.Questions, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (q *Quiz) SetQuestions(questions []Question) error {
	raw, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	q.Questions = datatypes.JSON(raw)
	return nil
}

// QuestionResult is the per-question detail recorded with every score.
type QuestionResult struct {
	QuestionID    int    `json:"question_id"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
}

// QuizScore is one scoring event for one submission, never mutated.
type QuizScore struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	QuizID         string         `gorm:"size:50;index" json:"quiz_id"`
	SessionID      string         `gorm:"size:255;index" json:"session_id"`
	Score          float64        `json:"score"`
	CorrectCount   int            `json:"correct_count"`
	TotalQuestions int            `json:"total_questions"`
	Details        datatypes.JSON `json:"details"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (s *QuizScore) SetDetails(results []QuestionResult) error {
	raw, err := json.Marshal(results)
	if err != nil {
		return err
	}
	s.Details = datatypes.JSON(raw)
	return nil
}
