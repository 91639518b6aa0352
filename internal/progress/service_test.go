package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skabbuzaid/AiBackend/internal/quiz"
)

type fakeScores struct {
	scores  []quiz.QuizScore
	quizzes map[string]*quiz.Quiz
	err     error
}

func (f *fakeScores) ScoresBySession(string) ([]quiz.QuizScore, error) {
	return f.scores, f.err
}

func (f *fakeScores) RecentScoresBySession(_ string, limit int) ([]quiz.QuizScore, error) {
	if f.err != nil {
		return nil, f.err
	}
	// newest first
	var out []quiz.QuizScore
	for i := len(f.scores) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.scores[i])
	}
	return out, nil
}

func (f *fakeScores) GetByID(id string) (*quiz.Quiz, error) {
	return f.quizzes[id], nil
}

type fakeSets struct {
	count int64
	err   error
}

func (f *fakeSets) CountBySession(string) (int64, error) { return f.count, f.err }

type fakeTopics struct {
	count int64
	err   error
}

func (f *fakeTopics) CountDistinct(string) (int64, error) { return f.count, f.err }

func TestSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptySession", func(t *testing.T) {
		svc := NewService(&fakeScores{}, &fakeSets{}, &fakeTopics{})

		sum, err := svc.Summary(ctx, "s1")
		if err != nil {
			t.Fatalf("Summary failed: %v", err)
		}
		if sum.TotalQuizzes != 0 || sum.AverageScore != 0 || sum.LearningStreak != 0 {
			t.Errorf("expected empty summary, got %+v", sum)
		}
		if len(sum.RecentQuizzes) != 0 {
			t.Errorf("expected no recent quizzes, got %d", len(sum.RecentQuizzes))
		}
	})

	t.Run("AveragesAndCounts", func(t *testing.T) {
		now := time.Now().UTC()
		scores := &fakeScores{
			scores: []quiz.QuizScore{
				{QuizID: "quiz-a", Score: 100, CreatedAt: now.AddDate(0, 0, -1)},
				{QuizID: "quiz-b", Score: 66.7, CreatedAt: now},
			},
			quizzes: map[string]*quiz.Quiz{
				"quiz-a": {ID: "quiz-a", Topic: "Algebra"},
				"quiz-b": {ID: "quiz-b", Topic: "Biology"},
			},
		}
		svc := NewService(scores, &fakeSets{count: 2}, &fakeTopics{count: 3})

		sum, err := svc.Summary(ctx, "s1")
		if err != nil {
			t.Fatalf("Summary failed: %v", err)
		}
		if sum.TotalQuizzes != 2 {
			t.Errorf("TotalQuizzes = %d, want 2", sum.TotalQuizzes)
		}
		if sum.AverageScore != 83.4 {
			t.Errorf("AverageScore = %v, want 83.4", sum.AverageScore)
		}
		if sum.TopicsStudied != 3 || sum.FlashcardSets != 2 {
			t.Errorf("counts = %d topics / %d sets, want 3/2", sum.TopicsStudied, sum.FlashcardSets)
		}
		if sum.LearningStreak != 2 {
			t.Errorf("LearningStreak = %d, want 2", sum.LearningStreak)
		}
		if len(sum.RecentQuizzes) != 2 || sum.RecentQuizzes[0].Topic != "Biology" {
			t.Errorf("RecentQuizzes = %+v", sum.RecentQuizzes)
		}
	})

	t.Run("MissingQuizFallsBackToUnknown", func(t *testing.T) {
		scores := &fakeScores{
			scores:  []quiz.QuizScore{{QuizID: "quiz-gone", Score: 50, CreatedAt: time.Now().UTC()}},
			quizzes: map[string]*quiz.Quiz{},
		}
		svc := NewService(scores, &fakeSets{}, &fakeTopics{})

		sum, err := svc.Summary(ctx, "s1")
		if err != nil {
			t.Fatalf("Summary failed: %v", err)
		}
		if sum.RecentQuizzes[0].Topic != "Unknown" {
			t.Errorf("Topic = %q, want Unknown", sum.RecentQuizzes[0].Topic)
		}
	})

	t.Run("StoreFailureSurfaces", func(t *testing.T) {
		svc := NewService(&fakeScores{err: errors.New("db down")}, &fakeSets{}, &fakeTopics{})

		if _, err := svc.Summary(ctx, "s1"); err == nil {
			t.Fatal("expected store failure to surface")
		}
	})
}
