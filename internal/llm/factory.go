package llm

import (
	"fmt"
	"strings"

	"vikibot/internal/config"
)

// NewFromConfig creates the backend client selected by LLM_PROVIDER.
func NewFromConfig(cfg *config.Config) (Client, error) {
	switch strings.ToLower(string(cfg.LLMProvider)) {
	case string(config.ProviderOpenAI):
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel,
			cfg.MaxTokens, cfg.OpenRouterReferrer, cfg.OpenRouterTitle), nil
	case string(config.ProviderYandex):
		return NewYandex(cfg.YandexOAuthToken, cfg.YandexFolderID)
	case string(config.ProviderOllama):
		return NewOllama(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.MaxTokens), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}
