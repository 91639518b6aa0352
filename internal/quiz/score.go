package quiz

import (
	"math"
	"strconv"
)

// ScoreResult is the payload returned for one submission.
type ScoreResult struct {
	Score   float64          `json:"score"`
	Correct int              `json:"correct"`
	Total   int              `json:"total"`
	Results []QuestionResult `json:"results"`
	Message string           `json:"message"`
}

// scoreSubmission grades answers against the stored questions, in stored
// order. Answers arrive keyed by the question id's string form (they
// cross a serialization boundary), so lookup converts each id with
// strconv. A missing answer normalizes to empty and never matches; an
// empty correct-answer marker never counts as matched either.
func scoreSubmission(questions []Question, answers map[string]string) ScoreResult {
	correct := 0
	results := make([]QuestionResult, 0, len(questions))

	for _, q := range questions {
		userAnswer := answers[strconv.Itoa(q.ID)]

		correctChar := NormalizeAnswer(q.CorrectAnswer)
		userChar := NormalizeAnswer(userAnswer)
		isCorrect := correctChar != "" && correctChar == userChar
		if isCorrect {
			correct++
		}

		results = append(results, QuestionResult{
			QuestionID:    q.ID,
			Question:      q.Question,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     isCorrect,
			Explanation:   q.Explanation,
		})
	}

	total := len(questions)
	score := 0.0
	if total > 0 {
		score = math.Round(float64(correct)/float64(total)*1000) / 10
	}

	message := "Keep practicing!"
	if score >= 70 {
		message = "Great job!"
	}

	return ScoreResult{
		Score:   score,
		Correct: correct,
		Total:   total,
		Results: results,
		Message: message,
	}
}
