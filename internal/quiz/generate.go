package quiz

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/skabbuzaid/AiBackend/internal/llm"
)

type generationPayload struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// parseGeneration validates the model's raw reply into a title and
// question list. The reply is untrusted text: code fences are stripped,
// field presence is checked, and missing question ids are backfilled
// 1-based so scoring always has a key.
func parseGeneration(raw string) (string, []Question, error) {
	clean := llm.ExtractJSON(raw)
	if clean == "" {
		return "", nil, errors.New("empty generation response")
	}

	var payload generationPayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return "", nil, fmt.Errorf("failed to decode generation JSON: %w", err)
	}
	if len(payload.Questions) == 0 {
		return "", nil, errors.New("generation contained no questions")
	}
	for i := range payload.Questions {
		q := &payload.Questions[i]
		if q.Question == "" || len(q.Options) == 0 || q.CorrectAnswer == "" {
			return "", nil, fmt.Errorf("question %d is missing required fields", i+1)
		}
		if q.ID == 0 {
			q.ID = i + 1
		}
	}
	return payload.Title, payload.Questions, nil
}

// fallbackQuiz is the deterministic placeholder used when generation
// fails for any reason. Callers of Generate never see a failure.
func fallbackQuiz(topic string) (string, []Question) {
	title := fmt.Sprintf("Quiz: %s", topic)
	questions := []Question{{
		ID:       1,
		Question: fmt.Sprintf("Which of the following best describes %s?", topic),
		Options: []string{
			fmt.Sprintf("A) A core concept of %s", topic),
			"B) An unrelated concept",
			"C) A historical curiosity",
			"D) None of the above",
		},
		CorrectAnswer: "A",
		Explanation:   "Placeholder question generated while the quiz service was unavailable.",
	}}
	return title, questions
}
