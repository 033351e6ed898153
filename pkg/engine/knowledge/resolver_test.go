package knowledge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"student-guide-be/pkg/engine/classify"
)

type fakeSource struct {
	contents map[string][]string
	err      error
	calls    int
}

func (f *fakeSource) ContentsByIntentId(ctx context.Context, intentId string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.contents[intentId], nil
}

func TestResolve(t *testing.T) {
	src := &fakeSource{contents: map[string][]string{
		"enrollment": {"Enrollment opens the first two weeks of June."},
	}}
	r := NewResolver(src)

	t.Run("unknown skips the store", func(t *testing.T) {
		got, err := r.Resolve(context.Background(), classify.IntentUnknown)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("snippets = %v, want nil", got)
		}
		if src.calls != 0 {
			t.Errorf("store calls = %d, want 0", src.calls)
		}
	})

	t.Run("known intent fetches contents", func(t *testing.T) {
		got, err := r.Resolve(context.Background(), "enrollment")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("snippets = %v, want 1 entry", got)
		}
	})

	t.Run("store error propagates", func(t *testing.T) {
		broken := NewResolver(&fakeSource{err: errors.New("down")})
		if _, err := broken.Resolve(context.Background(), "enrollment"); err == nil {
			t.Error("expected error")
		}
	})
}

func TestCanAnswer(t *testing.T) {
	snippet := strings.Repeat("x", MinSnippetLength+1)

	tests := []struct {
		name     string
		intentId string
		snippets []string
		want     bool
	}{
		{name: "answerable", intentId: "enrollment", snippets: []string{snippet}, want: true},
		{name: "unknown intent", intentId: classify.IntentUnknown, snippets: []string{snippet}, want: false},
		{name: "no snippets", intentId: "enrollment", snippets: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAnswer(tt.intentId, tt.snippets); got != tt.want {
				t.Errorf("CanAnswer = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasSufficientKnowledge(t *testing.T) {
	long := strings.Repeat("x", MinSnippetLength+1)
	exact := strings.Repeat("x", MinSnippetLength)

	tests := []struct {
		name     string
		snippets []string
		want     bool
	}{
		{name: "long first snippet", snippets: []string{long}, want: true},
		{name: "boundary length fails", snippets: []string{exact}, want: false},
		{name: "only first snippet is judged", snippets: []string{"short", long}, want: false},
		{name: "empty", snippets: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasSufficientKnowledge(tt.snippets); got != tt.want {
				t.Errorf("HasSufficientKnowledge = %v, want %v", got, tt.want)
			}
		})
	}
}
