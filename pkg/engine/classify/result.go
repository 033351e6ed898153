package classify

const (
	// IntentUnknown is the closed-set escape value. It is never stored as a
	// session's last intent.
	IntentUnknown = "unknown"

	MethodKeyword = "keyword"
	MethodAI      = "ai"
	MethodContext = "context"
)

// Result is the transient outcome of one classification attempt. Only the
// intent id survives into session state.
type Result struct {
	IntentId   string
	Confidence float64
	Method     string
}

// Unknown is the zero-information result every failure path collapses to.
func Unknown() Result {
	return Result{IntentId: IntentUnknown, Confidence: 0, Method: MethodAI}
}

// Intent is the slice of an intent record the matcher needs. The caller maps
// store entities into this shape per request.
type Intent struct {
	Id       string
	Label    string
	Keywords []string
	Enabled  bool
}
