package progress

import (
	"sort"
	"time"
)

// LearningStreak counts consecutive calendar days with at least one quiz
// submission, ending at the most recent study day. Days are compared in
// UTC, so multiple submissions on the same day count once.
func LearningStreak(times []time.Time) int {
	if len(times) == 0 {
		return 0
	}

	seen := make(map[time.Time]struct{}, len(times))
	days := make([]time.Time, 0, len(times))
	for _, ts := range times {
		day := ts.UTC().Truncate(24 * time.Hour)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) != 24*time.Hour {
			break
		}
		streak++
	}
	return streak
}
