package quiz

import "fmt"

const maxQuestions = 20

const generationSystemPrompt = `You are a quiz generator for a study application.

Create clear, challenging multiple-choice questions aimed at real learning.

Rules:
1. Each question has exactly one correct answer.
2. Each question has 4 plausible options labeled "A) ...", "B) ...", "C) ...", "D) ...".
3. Distractors must be reasonable: similar length and structure to the correct option, never obviously wrong.
4. Never reveal the answer in the question text; explain only in the "explanation" field.
5. Number questions with an integer "id" starting at 1.

Respond with pure, valid JSON and nothing else, in exactly this shape:

{
  "title": "<short quiz title>",
  "questions": [
    {
      "id": 1,
      "question": "<question text>",
      "options": ["A) ...", "B) ...", "C) ...", "D) ..."],
      "correct_answer": "A",
      "explanation": "<brief explanation of the correct answer>"
    }
  ]
}`

func buildGenerationPrompt(topic string, difficulty Difficulty, count int) string {
	if count <= 0 {
		count = 5
	}
	if count > maxQuestions {
		count = maxQuestions
	}
	return fmt.Sprintf(
		"Generate %d multiple-choice questions about %q at %s difficulty. "+
			"Vary the question style: definitions, application and analysis. "+
			"Return only the JSON object described in the system prompt.",
		count, topic, difficulty,
	)
}
