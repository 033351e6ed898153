package gate

import "testing"

func newTestGate() *PatternGate {
	return NewPatternGate(
		[]string{"hi", "hello", "good morning"},
		[]string{"birthday", "joke", "love"},
		[]string{"how about", "what about", "those", "details"},
	)
}

func TestIsGreeting(t *testing.T) {
	g := newTestGate()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "exact match", in: "hi", want: true},
		{name: "prefix match", in: "hello there", want: true},
		{name: "case and whitespace", in: "  Good Morning!  ", want: true},
		{name: "greeting mid-sentence does not count", in: "can you say hi to staff", want: false},
		{name: "regular question", in: "how do I enroll", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.IsGreeting(tt.in); got != tt.want {
				t.Errorf("IsGreeting(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsBlockedQuestion(t *testing.T) {
	g := newTestGate()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "contained anywhere", in: "when is your birthday", want: true},
		{name: "case insensitive", in: "Tell me a JOKE", want: true},
		{name: "unrelated", in: "what are the admission requirements", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.IsBlockedQuestion(tt.in); got != tt.want {
				t.Errorf("IsBlockedQuestion(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsVagueFollowUp(t *testing.T) {
	g := newTestGate()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "prefix phrase", in: "how about the executive class", want: true},
		{name: "exact pronoun", in: "those", want: true},
		{name: "phrase mid-sentence does not count", in: "I want details eventually", want: false},
		{name: "topic restated", in: "scholarship requirements", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.IsVagueFollowUp(tt.in); got != tt.want {
				t.Errorf("IsVagueFollowUp(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
