package progress

import "time"

// RecentQuiz is one row of the dashboard's recent-activity list.
type RecentQuiz struct {
	QuizID string    `json:"quiz_id"`
	Topic  string    `json:"topic"`
	Score  float64   `json:"score"`
	Date   time.Time `json:"date"`
}

// Summary aggregates a session's learning activity.
type Summary struct {
	TotalQuizzes   int64        `json:"total_quizzes"`
	AverageScore   float64      `json:"average_score"`
	TopicsStudied  int64        `json:"topics_studied"`
	FlashcardSets  int64        `json:"flashcard_sets"`
	RecentQuizzes  []RecentQuiz `json:"recent_quizzes"`
	LearningStreak int          `json:"learning_streak"`
}
