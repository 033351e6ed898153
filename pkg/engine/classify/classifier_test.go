package classify

import (
	"context"
	"errors"
	"testing"
	"time"

	"student-guide-be/pkg/llm"
)

type fakeProvider struct {
	reply string
	err   error

	lastHistory []llm.Message
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.lastHistory = history
	return f.reply, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.reply, f.err
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestAIClassifier(t *testing.T) {
	intents := []Intent{
		{Id: "enrollment", Label: "Enrollment", Enabled: true},
		{Id: "scholarship", Label: "Scholarships", Enabled: true},
		{Id: "grading", Label: "Grading System", Enabled: false},
	}

	tests := []struct {
		name       string
		reply      string
		err        error
		wantIntent string
		wantConf   float64
	}{
		{
			name:       "valid output",
			reply:      `{"intent": "enrollment", "confidence": 0.82}`,
			wantIntent: "enrollment",
			wantConf:   0.82,
		},
		{
			name:       "fenced output",
			reply:      "```json\n{\"intent\": \"scholarship\", \"confidence\": 0.7}\n```",
			wantIntent: "scholarship",
			wantConf:   0.7,
		},
		{
			name:       "unknown is always acceptable",
			reply:      `{"intent": "unknown", "confidence": 0.1}`,
			wantIntent: IntentUnknown,
			wantConf:   0.1,
		},
		{
			name:       "id outside closed set collapses to unknown",
			reply:      `{"intent": "cafeteria_menu", "confidence": 0.9}`,
			wantIntent: IntentUnknown,
			wantConf:   0,
		},
		{
			name:       "disabled intent is outside the closed set",
			reply:      `{"intent": "grading", "confidence": 0.9}`,
			wantIntent: IntentUnknown,
			wantConf:   0,
		},
		{
			name:       "malformed json",
			reply:      "the intent is enrollment I think",
			wantIntent: IntentUnknown,
			wantConf:   0,
		},
		{
			name:       "provider error",
			err:        errors.New("connection refused"),
			wantIntent: IntentUnknown,
			wantConf:   0,
		},
		{
			name:       "confidence clamped to one",
			reply:      `{"intent": "enrollment", "confidence": 3.5}`,
			wantIntent: "enrollment",
			wantConf:   1,
		},
		{
			name:       "negative confidence clamped to zero",
			reply:      `{"intent": "enrollment", "confidence": -0.5}`,
			wantIntent: "enrollment",
			wantConf:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{reply: tt.reply, err: tt.err}
			c := NewAIClassifier(provider, time.Second, nopLogger{})

			got := c.Classify(context.Background(), "some question", intents)

			if got.IntentId != tt.wantIntent {
				t.Errorf("IntentId = %s, want %s", got.IntentId, tt.wantIntent)
			}
			if got.Confidence != tt.wantConf {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConf)
			}
			if got.Method != MethodAI {
				t.Errorf("Method = %s, want %s", got.Method, MethodAI)
			}
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no fence", in: `{"a": 1}`, want: `{"a": 1}`},
		{name: "json fence", in: "```json\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "bare fence", in: "```\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "surrounding whitespace", in: "  {\"a\": 1}  ", want: `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFences(tt.in); got != tt.want {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
