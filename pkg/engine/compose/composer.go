package compose

import (
	"context"
	"strings"
	"time"

	"student-guide-be/internal/pkg/logger"
	"student-guide-be/pkg/llm"
)

const (
	// HedgeThreshold: replies produced from a classification below this
	// confidence are prefixed with a hedge.
	HedgeThreshold = 0.75

	hedgePrefix = "Based on available information, "

	// AnswerTemperature keeps grounded generation close to deterministic.
	AnswerTemperature = 0.2

	personaSystemPrompt = `
You are the official Student Guide for Pateros Technological College (PTC).

PERSONALITY:
- Friendly and professional
- Clear and calm
- Helpful and reassuring
- Not casual, not playful

RULES:
- Answer ONLY using the provided reference
- Do not guess or invent information
- Keep answers concise and easy to understand
- When appropriate, gently guide the student to related topics
`
)

// Composer builds the final reply for an answerable intent. A single snippet
// is passed through verbatim (no generation call, no cost); several snippets
// are synthesized by the model grounded on a joined reference block.
type Composer struct {
	provider llm.LLMProvider
	timeout  time.Duration
	log      logger.ILogger
}

func NewComposer(provider llm.LLMProvider, timeout time.Duration, log logger.ILogger) *Composer {
	return &Composer{
		provider: provider,
		timeout:  timeout,
		log:      log,
	}
}

// Compose returns the raw reply text before hedging. history must already be
// trimmed and filtered by the caller.
func (c *Composer) Compose(ctx context.Context, history []llm.Message, snippets []string, question string) (string, error) {
	if len(snippets) == 1 {
		return snippets[0], nil
	}

	bullets := make([]string, len(snippets))
	for i, s := range snippets {
		bullets[i] = "• " + s
	}

	messages := make([]llm.Message, 0, len(history)+3)
	messages = append(messages, llm.Message{Role: "system", Content: personaSystemPrompt})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: "system", Content: "REFERENCE:\n" + strings.Join(bullets, "\n")})
	messages = append(messages, llm.Message{Role: "user", Content: question})

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reply, err := c.provider.Chat(ctx, messages, llm.WithTemperature(AnswerTemperature))
	if err != nil {
		c.log.Error("composer", "grounded generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return "", err
	}
	return reply, nil
}

// FormatReply applies the confidence hedge uniformly, whether the reply came
// from a single snippet or from generation.
func FormatReply(reply string, confidence float64) string {
	if confidence < HedgeThreshold {
		return hedgePrefix + reply
	}
	return reply
}
