package knowledge

import (
	"context"

	"student-guide-be/pkg/engine/classify"
)

// MinSnippetLength is a blunt quality proxy: when the first snippet for an
// intent is this short, the curated entry is considered too thin to answer
// from. It is not content-aware.
const MinSnippetLength = 40

// Source is the curated-knowledge collaborator, satisfied by the knowledge
// repository.
type Source interface {
	ContentsByIntentId(ctx context.Context, intentId string) ([]string, error)
}

// Resolver fetches snippets for a resolved intent and judges whether they
// are enough to ground an answer.
type Resolver struct {
	source Source
}

func NewResolver(source Source) *Resolver {
	return &Resolver{source: source}
}

// Resolve returns the snippet contents for an intent, empty for unknown. A
// store failure degrades to empty knowledge so the pipeline falls back
// gracefully instead of erroring.
func (r *Resolver) Resolve(ctx context.Context, intentId string) ([]string, error) {
	if intentId == classify.IntentUnknown {
		return nil, nil
	}
	return r.source.ContentsByIntentId(ctx, intentId)
}

// CanAnswer requires a known intent with at least one snippet.
func CanAnswer(intentId string, snippets []string) bool {
	return intentId != classify.IntentUnknown && len(snippets) > 0
}

// HasSufficientKnowledge applies the first-snippet length heuristic.
func HasSufficientKnowledge(snippets []string) bool {
	return len(snippets) >= 1 && len(snippets[0]) > MinSnippetLength
}
