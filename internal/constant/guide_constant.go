package constant

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	ChatRoleSystem    = "system"

	// MaxHistory caps the turns forwarded to answer generation. Older turns
	// are dropped, not summarized. Stored history is not capped here.
	MaxHistory = 6

	// Auto-learn: cap on tokens harvested from a single message, and the
	// minimum token length worth keeping as a keyword.
	AutoLearnMaxTokens      = 5
	AutoLearnMinTokenLength = 3
)

// Fixed replies. These exact texts are part of the bot's contract: the
// greeting and redirect are returned without touching the session, and the
// fallback text doubles as the marker that keeps non-answers out of the
// history forwarded to generation.
const (
	GreetingReply = "Hello! 👋 I’m the PTC Student Guide. How can I help you today?"

	BlockedReply = "I’m here to help with official PTC-related questions like enrollment, scholarships, and executive classes."

	ClarifyReply = "Can you please clarify what you are asking about?"

	FallbackReply = "I may not have details on that yet, but I can help with PTC-related questions like enrollment, scholarships, and executive classes 😊"

	GenerationFailureReply = "Sorry, I’m having trouble answering right now. Please try again in a moment."

	// NoInfoMarker flags assistant turns that carry a non-answer so they are
	// excluded from generation context (they stay in stored history).
	NoInfoMarker = "may not have details"
)

// Pattern gate phrase lists. All matching happens on normalized text.
var (
	GreetingPatterns = []string{
		"hi",
		"hello",
		"hey",
		"good morning",
		"good afternoon",
		"good evening",
	}

	BlockedPatterns = []string{
		"birthday",
		"joke",
		"love",
	}

	VagueFollowUpPatterns = []string{
		"how about",
		"what about",
		"and",
		"those",
		"that",
		"them",
		"more info",
		"details",
	}
)

// Admin AI prompts (intent suggestion from a knowledge passage)
const (
	IntentSuggestionSystemPrompt = "You are a strict JSON API. Do not use markdown."

	IntentSuggestionPromptTemplate = `
You are an AI assistant for a university chatbot.

GOAL:
Your primary goal is to reuse existing intent categories whenever possible.
Improve existing intents by suggesting additional keywords instead of creating new ones.

STRICT RULES:
- You MUST prefer an existing intent if the knowledge is related.
- ONLY create a new intent if the knowledge is clearly unrelated to ALL existing intents.
- Do NOT create new intents for subtopics such as requirements, process, eligibility, details, steps, or guidelines.

EXISTING INTENTS:
%s

OUTPUT FORMAT (JSON ONLY):
{
  "useExistingIntent": true | false,
  "intentId": "string_snake_case",
  "label": "Human Readable Label",
  "keywords": ["keyword1", "keyword2", "keyword3"]
}

GUIDELINES:
- If the topic matches an existing intent, reuse its intentId and label.
- Put subtopics (e.g. requirements, eligibility) into keywords, NOT new intents.
- Keywords should reflect how students naturally ask questions.

KNOWLEDGE:
"""%s"""
`
)
