package classify

import "testing"

func TestConfidenceGate(t *testing.T) {
	g := NewConfidenceGate()

	tests := []struct {
		name        string
		detected    Result
		lastIntent  string
		vague       bool
		wantIntent  string
		wantConf    float64
		wantMethod  string
		wantClarify bool
	}{
		{
			name:       "confident ai passes through",
			detected:   Result{IntentId: "enrollment", Confidence: 0.8, Method: MethodAI},
			wantIntent: "enrollment",
			wantConf:   0.8,
			wantMethod: MethodAI,
		},
		{
			name:       "low confidence ai forced to unknown",
			detected:   Result{IntentId: "enrollment", Confidence: 0.3, Method: MethodAI},
			wantIntent: IntentUnknown,
			wantConf:   0.3,
			wantMethod: MethodAI,
		},
		{
			name:        "clarify band asks instead of answering",
			detected:    Result{IntentId: "enrollment", Confidence: 0.55, Method: MethodAI},
			wantIntent:  IntentUnknown,
			wantConf:    0.55,
			wantMethod:  MethodAI,
			wantClarify: true,
		},
		{
			name:        "clarify band lower bound inclusive",
			detected:    Result{IntentId: "enrollment", Confidence: 0.5, Method: MethodAI},
			wantIntent:  IntentUnknown,
			wantConf:    0.5,
			wantMethod:  MethodAI,
			wantClarify: true,
		},
		{
			name:       "threshold boundary passes",
			detected:   Result{IntentId: "enrollment", Confidence: 0.6, Method: MethodAI},
			wantIntent: "enrollment",
			wantConf:   0.6,
			wantMethod: MethodAI,
		},
		{
			name:       "keyword result never thresholded",
			detected:   Result{IntentId: "enrollment", Confidence: 0.9, Method: MethodKeyword},
			wantIntent: "enrollment",
			wantConf:   0.9,
			wantMethod: MethodKeyword,
		},
		{
			name:       "vague follow-up inherits last intent",
			detected:   Result{IntentId: IntentUnknown, Confidence: 0.2, Method: MethodAI},
			lastIntent: "scholarship",
			vague:      true,
			wantIntent: "scholarship",
			wantConf:   ContextReuseConfidence,
			wantMethod: MethodContext,
		},
		{
			name:       "context reuse needs the original result to be unknown",
			detected:   Result{IntentId: "enrollment", Confidence: 0.3, Method: MethodAI},
			lastIntent: "scholarship",
			vague:      true,
			wantIntent: IntentUnknown,
			wantConf:   0.3,
			wantMethod: MethodAI,
		},
		{
			name:       "vague follow-up without session memory stays unknown",
			detected:   Result{IntentId: IntentUnknown, Confidence: 0.2, Method: MethodAI},
			vague:      true,
			wantIntent: IntentUnknown,
			wantConf:   0.2,
			wantMethod: MethodAI,
		},
		{
			name:       "specific message does not inherit context",
			detected:   Result{IntentId: IntentUnknown, Confidence: 0.2, Method: MethodAI},
			lastIntent: "scholarship",
			vague:      false,
			wantIntent: IntentUnknown,
			wantConf:   0.2,
			wantMethod: MethodAI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := g.Apply(tt.detected, tt.lastIntent, tt.vague)
			if d.Result.IntentId != tt.wantIntent {
				t.Errorf("IntentId = %s, want %s", d.Result.IntentId, tt.wantIntent)
			}
			if d.Result.Confidence != tt.wantConf {
				t.Errorf("Confidence = %v, want %v", d.Result.Confidence, tt.wantConf)
			}
			if d.Result.Method != tt.wantMethod {
				t.Errorf("Method = %s, want %s", d.Result.Method, tt.wantMethod)
			}
			if d.NeedsClarification != tt.wantClarify {
				t.Errorf("NeedsClarification = %v, want %v", d.NeedsClarification, tt.wantClarify)
			}
		})
	}
}
