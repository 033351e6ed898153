package classify

const (
	// ConfidenceThreshold: AI guesses below this are not acted on.
	ConfidenceThreshold = 0.6
	// ClarifyThreshold: AI guesses in [ClarifyThreshold, ConfidenceThreshold)
	// trigger a clarifying question instead of an answer.
	ClarifyThreshold = 0.5
	// ContextReuseConfidence is assigned when a vague follow-up inherits the
	// session's previous intent.
	ContextReuseConfidence = 0.9
)

// Decision is the confidence gate's verdict on a raw classification.
type Decision struct {
	Result             Result
	NeedsClarification bool
}

// ConfidenceGate converts a raw classification into an actionable decision.
// Only AI-derived results are thresholded; keyword and context matches pass
// through untouched.
type ConfidenceGate struct{}

func NewConfidenceGate() *ConfidenceGate {
	return &ConfidenceGate{}
}

// Apply runs, in order:
//  1. context reuse — if the original result is unknown, the session has a
//     last intent, and the message is a vague follow-up, the last intent is
//     inherited at ContextReuseConfidence with method "context";
//  2. the unknown threshold — an AI result below ConfidenceThreshold is
//     forced to unknown;
//  3. the clarify band — an AI result in [ClarifyThreshold,
//     ConfidenceThreshold) asks for clarification instead of proceeding.
//
// Context reuse keys off the ORIGINAL intent id: an AI guess that names some
// intent with low confidence is discarded, not redirected to the previous
// topic.
func (g *ConfidenceGate) Apply(detected Result, lastIntent string, vagueFollowUp bool) Decision {
	if detected.IntentId == IntentUnknown && lastIntent != "" && vagueFollowUp {
		return Decision{Result: Result{
			IntentId:   lastIntent,
			Confidence: ContextReuseConfidence,
			Method:     MethodContext,
		}}
	}

	result := detected
	if result.Method == MethodAI && result.Confidence < ConfidenceThreshold {
		result.IntentId = IntentUnknown
	}

	if result.Method == MethodAI &&
		result.Confidence >= ClarifyThreshold &&
		result.Confidence < ConfidenceThreshold {
		return Decision{Result: result, NeedsClarification: true}
	}

	return Decision{Result: result}
}
