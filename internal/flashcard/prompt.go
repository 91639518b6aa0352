package flashcard

import "fmt"

const maxCards = 50

const generationSystemPrompt = `You are a flashcard generator for a study application.

Create concise, memorable flashcards. The front is a term or question, the
back is the answer or definition, and the optional hint nudges recall
without giving the answer away.

Respond with pure, valid JSON and nothing else, in exactly this shape:

{
  "title": "<short set title>",
  "cards": [
    {
      "id": 1,
      "front": "<term or question>",
      "back": "<answer or definition>",
      "hint": "<optional hint>"
    }
  ]
}`

func buildGenerationPrompt(topic string, count int) string {
	if count <= 0 {
		count = 10
	}
	if count > maxCards {
		count = maxCards
	}
	return fmt.Sprintf(
		"Generate %d flashcards about %q. Number cards with an integer \"id\" starting at 1. "+
			"Return only the JSON object described in the system prompt.",
		count, topic,
	)
}
