package quiz

import "testing"

func question(id int, correct string) Question {
	return Question{
		ID:            id,
		Question:      "q",
		Options:       []string{"A) one", "B) two", "C) three", "D) four"},
		CorrectAnswer: correct,
		Explanation:   "because",
	}
}

func TestScoreSubmission(t *testing.T) {
	t.Run("EmptyQuiz", func(t *testing.T) {
		result := scoreSubmission(nil, map[string]string{"1": "A"})
		if result.Score != 0 || result.Total != 0 || result.Correct != 0 {
			t.Errorf("empty quiz scored %+v, want zeros", result)
		}
	})

	t.Run("StringKeyedLookup", func(t *testing.T) {
		// Answers arrive keyed by the question id's string form.
		result := scoreSubmission([]Question{question(1, "A")}, map[string]string{"1": "A"})
		if result.Score != 100.0 || result.Correct != 1 {
			t.Errorf("got score=%v correct=%d, want 100.0 and 1", result.Score, result.Correct)
		}
	})

	t.Run("FullOptionAnswerMatchesBareMarker", func(t *testing.T) {
		result := scoreSubmission([]Question{question(1, "A")}, map[string]string{"1": "A) one"})
		if result.Correct != 1 {
			t.Errorf("full option string did not match bare marker: %+v", result.Results[0])
		}
	})

	t.Run("WrongAnswer", func(t *testing.T) {
		result := scoreSubmission([]Question{question(1, "A")}, map[string]string{"1": "B"})
		if result.Score != 0.0 || result.Correct != 0 {
			t.Errorf("got score=%v correct=%d, want 0.0 and 0", result.Score, result.Correct)
		}
	})

	t.Run("MissingAnswerNeverMatches", func(t *testing.T) {
		result := scoreSubmission([]Question{question(1, "A")}, map[string]string{})
		if result.Score != 0.0 || result.Results[0].IsCorrect {
			t.Errorf("missing answer counted as correct: %+v", result)
		}
	})

	t.Run("EmptyCorrectMarkerNeverMatches", func(t *testing.T) {
		result := scoreSubmission([]Question{question(1, "")}, map[string]string{"1": ""})
		if result.Results[0].IsCorrect {
			t.Error("empty correct marker matched empty answer")
		}
	})

	t.Run("Rounding", func(t *testing.T) {
		qs := []Question{question(1, "A"), question(2, "A"), question(3, "A")}
		result := scoreSubmission(qs, map[string]string{"1": "A"})
		if result.Score != 33.3 {
			t.Errorf("score = %v, want 33.3", result.Score)
		}
	})

	t.Run("HalfRight", func(t *testing.T) {
		qs := []Question{question(1, "A"), question(2, "A"), question(3, "A"), question(4, "A")}
		result := scoreSubmission(qs, map[string]string{"1": "A", "2": "A", "3": "B"})
		if result.Score != 50.0 || result.Correct != 2 {
			t.Errorf("got score=%v correct=%d, want 50.0 and 2", result.Score, result.Correct)
		}
	})

	t.Run("ScoringKeysByIdNotPosition", func(t *testing.T) {
		// Non-contiguous ids must still be looked up as given.
		qs := []Question{question(7, "A"), question(3, "B")}
		result := scoreSubmission(qs, map[string]string{"7": "A", "3": "B"})
		if result.Correct != 2 {
			t.Errorf("id-keyed lookup failed: %+v", result.Results)
		}
	})

	t.Run("Messages", func(t *testing.T) {
		pass := scoreSubmission([]Question{question(1, "A")}, map[string]string{"1": "A"})
		if pass.Message != "Great job!" {
			t.Errorf("message = %q, want %q", pass.Message, "Great job!")
		}
		fail := scoreSubmission([]Question{question(1, "A")}, map[string]string{"1": "B"})
		if fail.Message != "Keep practicing!" {
			t.Errorf("message = %q, want %q", fail.Message, "Keep practicing!")
		}
	})
}
