package progress

import (
	"testing"
	"time"
)

func day(offset int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -offset)
}

func TestLearningStreak(t *testing.T) {
	t.Run("NoActivity", func(t *testing.T) {
		if got := LearningStreak(nil); got != 0 {
			t.Errorf("streak = %d, want 0", got)
		}
	})

	t.Run("ThreeConsecutiveDays", func(t *testing.T) {
		times := []time.Time{day(0), day(1), day(2)}
		if got := LearningStreak(times); got != 3 {
			t.Errorf("streak = %d, want 3", got)
		}
	})

	t.Run("GapBreaksStreak", func(t *testing.T) {
		times := []time.Time{day(0), day(3)}
		if got := LearningStreak(times); got != 1 {
			t.Errorf("streak = %d, want 1", got)
		}
	})

	t.Run("SameDayCountsOnce", func(t *testing.T) {
		times := []time.Time{day(0), day(0), day(0)}
		if got := LearningStreak(times); got != 1 {
			t.Errorf("streak = %d, want 1", got)
		}
	})

	t.Run("UnsortedInput", func(t *testing.T) {
		times := []time.Time{day(2), day(0), day(1)}
		if got := LearningStreak(times); got != 3 {
			t.Errorf("streak = %d, want 3", got)
		}
	})

	t.Run("StreakEndsBeforeOlderRun", func(t *testing.T) {
		// Two recent days, then a gap, then three older consecutive days:
		// only the recent run counts.
		times := []time.Time{day(0), day(1), day(5), day(6), day(7)}
		if got := LearningStreak(times); got != 2 {
			t.Errorf("streak = %d, want 2", got)
		}
	})
}
