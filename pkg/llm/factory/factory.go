package factory

import (
	"fmt"
	"time"

	"student-guide-be/pkg/llm"
	"student-guide-be/pkg/llm/ollama"
	"student-guide-be/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, apiKey, baseURL string, timeout time.Duration) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("openai provider requires OPENAI_API_KEY")
		}
		return openai.NewOpenAIProvider(apiKey, modelName, timeout), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
