package progress

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/skabbuzaid/AiBackend/internal/config"
	"github.com/skabbuzaid/AiBackend/internal/quiz"
)

const recentQuizLimit = 5

// unknownTopic labels a recent score whose quiz row no longer exists.
const unknownTopic = "Unknown"

// ScoreSource provides the quiz-side aggregates. Satisfied by the quiz
// repository.
type ScoreSource interface {
	ScoresBySession(sessionID string) ([]quiz.QuizScore, error)
	RecentScoresBySession(sessionID string, limit int) ([]quiz.QuizScore, error)
	GetByID(id string) (*quiz.Quiz, error)
}

// SetCounter counts a session's flashcard sets. Satisfied by the
// flashcard repository.
type SetCounter interface {
	CountBySession(sessionID string) (int64, error)
}

// TopicCounter counts a session's distinct studied topics. Satisfied by
// the topic repository.
type TopicCounter interface {
	CountDistinct(sessionID string) (int64, error)
}

type ProgressService interface {
	Summary(ctx context.Context, sessionID string) (*Summary, error)
}

type progressService struct {
	scores ScoreSource
	sets   SetCounter
	topics TopicCounter
}

func NewService(scores ScoreSource, sets SetCounter, topics TopicCounter) ProgressService {
	return &progressService{scores: scores, sets: sets, topics: topics}
}

func (s *progressService) Summary(ctx context.Context, sessionID string) (*Summary, error) {
	log := config.WithContext(ctx)

	allScores, err := s.scores.ScoresBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz scores: %w", err)
	}

	var avg float64
	if len(allScores) > 0 {
		var sum float64
		for _, sc := range allScores {
			sum += sc.Score
		}
		avg = math.Round(sum/float64(len(allScores))*10) / 10
	}

	topicCount, err := s.topics.CountDistinct(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count topics: %w", err)
	}

	setCount, err := s.sets.CountBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count flashcard sets: %w", err)
	}

	recent, err := s.scores.RecentScoresBySession(sessionID, recentQuizLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent scores: %w", err)
	}

	recentQuizzes := make([]RecentQuiz, 0, len(recent))
	times := make([]time.Time, 0, len(allScores))
	for _, sc := range allScores {
		times = append(times, sc.CreatedAt)
	}
	for _, sc := range recent {
		recentQuizzes = append(recentQuizzes, RecentQuiz{
			QuizID: sc.QuizID,
			Topic:  s.topicFor(ctx, sc.QuizID),
			Score:  sc.Score,
			Date:   sc.CreatedAt,
		})
	}

	log.WithField("session_id", sessionID).Debug("progress summary assembled")

	return &Summary{
		TotalQuizzes:   int64(len(allScores)),
		AverageScore:   avg,
		TopicsStudied:  topicCount,
		FlashcardSets:  setCount,
		RecentQuizzes:  recentQuizzes,
		LearningStreak: LearningStreak(times),
	}, nil
}

// topicFor resolves a score's topic through its quiz row. A missing or
// unreadable quiz degrades to the Unknown label instead of failing the
// whole summary.
func (s *progressService) topicFor(ctx context.Context, quizID string) string {
	q, err := s.scores.GetByID(quizID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("failed to resolve quiz topic")
		return unknownTopic
	}
	if q == nil || q.Topic == "" {
		return unknownTopic
	}
	return q.Topic
}
