package classify

import "testing"

func TestKeywordMatcher(t *testing.T) {
	intents := []Intent{
		{Id: "enrollment", Label: "Enrollment", Keywords: []string{"enroll", "registration"}, Enabled: true},
		{Id: "scholarship", Label: "Scholarships", Keywords: []string{"scholarship", "free tuition"}, Enabled: true},
		{Id: "grading", Label: "Grading System", Keywords: []string{"grading"}, Enabled: false},
	}

	m := NewKeywordMatcher()

	tests := []struct {
		name           string
		message        string
		wantIntent     string
		wantConfidence float64
		wantNil        bool
	}{
		{
			name:           "exact match",
			message:        "enroll",
			wantIntent:     "enrollment",
			wantConfidence: KeywordExactConfidence,
		},
		{
			name:           "contains match",
			message:        "how do I enroll this semester",
			wantIntent:     "enrollment",
			wantConfidence: KeywordContainsConfidence,
		},
		{
			name:           "exact in later intent beats contains in earlier",
			message:        "free tuition",
			wantIntent:     "scholarship",
			wantConfidence: KeywordExactConfidence,
		},
		{
			name:           "equal strength keeps earlier intent",
			message:        "enroll with a scholarship",
			wantIntent:     "enrollment",
			wantConfidence: KeywordContainsConfidence,
		},
		{
			name:    "disabled intent never matches",
			message: "grading",
			wantNil: true,
		},
		{
			name:    "no match",
			message: "where is the cafeteria",
			wantNil: true,
		},
		{
			name:           "normalization applies",
			message:        "  ENROLL  ",
			wantIntent:     "enrollment",
			wantConfidence: KeywordExactConfidence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.message, intents)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("Match(%q) = %+v, want nil", tt.message, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Match(%q) = nil, want %s", tt.message, tt.wantIntent)
			}
			if got.IntentId != tt.wantIntent {
				t.Errorf("IntentId = %s, want %s", got.IntentId, tt.wantIntent)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
			if got.Method != MethodKeyword {
				t.Errorf("Method = %s, want %s", got.Method, MethodKeyword)
			}
		})
	}
}
