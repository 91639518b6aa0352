package companion

import "math/rand"

type State string

const (
	StateIdle     State = "idle"
	StateThinking State = "thinking"
	StateHappy    State = "happy"
	StateCurious  State = "curious"
	StateWaving   State = "waving"
	StateTalking  State = "talking"
)

// Context describes what the learner is currently doing in the UI.
type Context struct {
	Page   string `json:"page"`
	Action string `json:"action"`
}

// Mood is the companion's reaction: a state for the avatar and an
// optional thought bubble.
type Mood struct {
	State   State   `json:"state"`
	Message *string `json:"message"`
}

// Brain maps UI context to companion moods. Idle behavior is randomized
// through rand, injectable for tests.
type Brain struct {
	rand func() float64
}

func NewBrain() *Brain {
	return &Brain{rand: rand.Float64}
}

func (b *Brain) React(ctx Context) Mood {
	page := ctx.Page
	if page == "" {
		page = "home"
	}
	action := ctx.Action
	if action == "" {
		action = "viewing"
	}

	switch {
	case action == "generating_quiz":
		return mood(StateThinking, "Cooking up a challenge...")
	case action == "submitting_quiz":
		return mood(StateThinking, "Did you get it right?")
	case page == "/quiz" && action == "viewing":
		return mood(StateCurious, "Ready to test your brain?")
	case page == "/chat":
		return mood(StateTalking, "I'm listening!")
	}

	if b.rand() < 0.1 {
		return mood(StateWaving, "Hi there!")
	}
	if b.rand() < 0.05 {
		return mood(StateHappy, "I love learning!")
	}
	return Mood{State: StateIdle}
}

func mood(s State, message string) Mood {
	return Mood{State: s, Message: &message}
}
