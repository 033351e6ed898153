package classify

import (
	"strings"

	"student-guide-be/pkg/engine/textutil"
)

const (
	KeywordExactConfidence    = 1.0
	KeywordContainsConfidence = 0.9
)

// KeywordMatcher resolves a message deterministically against the curated
// keyword sets before any model call is spent.
type KeywordMatcher struct{}

func NewKeywordMatcher() *KeywordMatcher {
	return &KeywordMatcher{}
}

// Match scans every enabled intent's keywords in registration order. Exact
// normalized equality scores 1.0, substring containment 0.9. The strongest
// match wins; on equal strength the earliest-registered intent wins. This
// deliberately differs from scan-order-wins short-circuiting, so an exact
// match in a late intent cannot lose to a substring hit in an early one.
// Returns nil when nothing matches.
func (m *KeywordMatcher) Match(message string, intents []Intent) *Result {
	msg := textutil.Normalize(message)

	var best *Result
	for _, intent := range intents {
		if !intent.Enabled {
			continue
		}

		for _, kw := range intent.Keywords {
			keyword := textutil.Normalize(kw)
			if keyword == "" {
				continue
			}

			if msg == keyword {
				if best == nil || best.Confidence < KeywordExactConfidence {
					best = &Result{IntentId: intent.Id, Confidence: KeywordExactConfidence, Method: MethodKeyword}
				}
				break // nothing in this intent can beat an exact hit
			}

			if strings.Contains(msg, keyword) && best == nil {
				best = &Result{IntentId: intent.Id, Confidence: KeywordContainsConfidence, Method: MethodKeyword}
			}
		}

		if best != nil && best.Confidence == KeywordExactConfidence {
			break // no later intent can win a tie against an earlier exact match
		}
	}

	return best
}
