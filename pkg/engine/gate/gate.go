package gate

import (
	"strings"

	"student-guide-be/pkg/engine/textutil"
)

// PatternGate runs the cheap deterministic filters ahead of any model call:
// greetings and blocked topics short-circuit the pipeline, and the vague
// follow-up check feeds the confidence gate's context-reuse logic.
type PatternGate struct {
	greetings []string
	blocked   []string
	vague     []string
}

func NewPatternGate(greetings, blocked, vague []string) *PatternGate {
	return &PatternGate{
		greetings: greetings,
		blocked:   blocked,
		vague:     vague,
	}
}

// IsGreeting reports whether the message equals or starts with a greeting
// phrase.
func (g *PatternGate) IsGreeting(message string) bool {
	msg := textutil.Normalize(message)
	for _, p := range g.greetings {
		if msg == p || strings.HasPrefix(msg, p) {
			return true
		}
	}
	return false
}

// IsBlockedQuestion reports whether the message contains a disallowed topic.
func (g *PatternGate) IsBlockedQuestion(message string) bool {
	msg := textutil.Normalize(message)
	for _, p := range g.blocked {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// IsVagueFollowUp reports whether the message references prior context
// without restating a topic ("what about...", "those").
func (g *PatternGate) IsVagueFollowUp(message string) bool {
	msg := textutil.Normalize(message)
	for _, p := range g.vague {
		if msg == p || strings.HasPrefix(msg, p) {
			return true
		}
	}
	return false
}
