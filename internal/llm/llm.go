package llm

import (
	"strings"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/legalmindpro/legalmind/internal/common"
	"github.com/legalmindpro/legalmind/internal/config"
	"github.com/legalmindpro/legalmind/internal/llm/providers"
)

type Message = providers.Message

type Provider = providers.Provider

// NewProvider selects the completion backend: the configured
// OpenAI-compatible endpoint when an API key is present, otherwise the
// local fallback.
func NewProvider(cfg config.Config) Provider {
	logger := common.Logger()
	apiKey := strings.TrimSpace(cfg.CompletionAPIKey)
	if apiKey == "" {
		logger.Warn("llm: no completion API key set; falling back to local provider")
		return providers.NewLocalProvider()
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if endpoint := strings.TrimSpace(cfg.CompletionEndpoint); endpoint != "" {
		logger.Info("llm: configuring completion client", "endpoint", endpoint)
		opts = append(opts, option.WithBaseURL(endpoint))
	}
	client := openai.NewClient(opts...)
	return providers.NewOpenAIProvider(client, cfg.ChatModel)
}
