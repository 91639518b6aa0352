package companion

import "testing"

// seqBrain replays a fixed sequence of rand values.
func seqBrain(vals ...float64) *Brain {
	i := 0
	return &Brain{rand: func() float64 {
		v := vals[i]
		i++
		return v
	}}
}

func TestReact(t *testing.T) {
	tests := []struct {
		name        string
		ctx         Context
		rand        []float64
		wantState   State
		wantMessage string
	}{
		{"GeneratingQuiz", Context{Page: "/quiz", Action: "generating_quiz"}, nil, StateThinking, "Cooking up a challenge..."},
		{"SubmittingQuiz", Context{Action: "submitting_quiz"}, nil, StateThinking, "Did you get it right?"},
		{"ViewingQuizPage", Context{Page: "/quiz"}, nil, StateCurious, "Ready to test your brain?"},
		{"ChatPage", Context{Page: "/chat", Action: "typing"}, nil, StateTalking, "I'm listening!"},
		{"IdleWave", Context{Page: "/dashboard"}, []float64{0.05}, StateWaving, "Hi there!"},
		{"IdleHappy", Context{Page: "/dashboard"}, []float64{0.9, 0.04}, StateHappy, "I love learning!"},
		{"PlainIdle", Context{}, []float64{0.9, 0.9}, StateIdle, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seqBrain(tt.rand...).React(tt.ctx)
			if got.State != tt.wantState {
				t.Errorf("state = %q, want %q", got.State, tt.wantState)
			}
			if tt.wantMessage == "" {
				if got.Message != nil {
					t.Errorf("message = %q, want nil", *got.Message)
				}
			} else if got.Message == nil || *got.Message != tt.wantMessage {
				t.Errorf("message = %v, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}
