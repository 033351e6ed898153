package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"student-guide-be/internal/pkg/logger"
	"student-guide-be/pkg/llm"
)

const (
	classifierSystemPrompt = "You classify student questions into predefined intents."

	classifierPromptTemplate = `
Select ONE intent ID from the list below.
If none apply, return "unknown".

Respond ONLY in valid JSON:
{ "intent": "<id>", "confidence": 0.0-1.0 }

INTENTS:
%s

QUESTION:
"%s"
`
)

// AIClassifier asks the language model for a closed-set intent guess when
// keyword matching comes up empty. Every failure mode — timeout, malformed
// JSON, an id outside the closed set — degrades to unknown/0 rather than an
// error; the conversation must always complete.
type AIClassifier struct {
	provider llm.LLMProvider
	timeout  time.Duration
	log      logger.ILogger
}

func NewAIClassifier(provider llm.LLMProvider, timeout time.Duration, log logger.ILogger) *AIClassifier {
	return &AIClassifier{
		provider: provider,
		timeout:  timeout,
		log:      log,
	}
}

type classifierOutput struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// Classify returns a Result with method "ai". The returned intent id is
// validated against the enabled set; anything else collapses to unknown.
func (c *AIClassifier) Classify(ctx context.Context, message string, intents []Intent) Result {
	valid := make(map[string]struct{})
	var lines []string
	for _, intent := range intents {
		if !intent.Enabled {
			continue
		}
		valid[intent.Id] = struct{}{}
		lines = append(lines, fmt.Sprintf("%s: %s", intent.Id, intent.Label))
	}

	prompt := fmt.Sprintf(classifierPromptTemplate, strings.Join(lines, "\n"), message)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.provider.Chat(ctx, []llm.Message{
		{Role: "system", Content: classifierSystemPrompt},
		{Role: "user", Content: prompt},
	}, llm.WithTemperature(0))
	if err != nil {
		c.log.Warn("classifier", "intent classification failed, treating as unknown", map[string]interface{}{
			"error": err.Error(),
		})
		return Unknown()
	}

	var out classifierOutput
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &out); err != nil {
		c.log.Warn("classifier", "unparseable classifier output, treating as unknown", map[string]interface{}{
			"raw": raw,
		})
		return Unknown()
	}

	if out.Intent != IntentUnknown {
		if _, ok := valid[out.Intent]; !ok {
			c.log.Warn("classifier", "classifier returned id outside closed set", map[string]interface{}{
				"intent": out.Intent,
			})
			return Unknown()
		}
	}

	if out.Confidence < 0 {
		out.Confidence = 0
	} else if out.Confidence > 1 {
		out.Confidence = 1
	}

	return Result{IntentId: out.Intent, Confidence: out.Confidence, Method: MethodAI}
}

// stripCodeFences removes a markdown ```json fence if the model wrapped its
// output in one despite instructions.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
