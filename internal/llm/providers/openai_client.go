package providers

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v2"

	"github.com/legalmindpro/legalmind/internal/common"
)

// Sampling defaults for the hosted completion service.
const (
	defaultTemperature = 0.3
	defaultMaxTokens   = 1500
)

// OpenAIProvider talks to an OpenAI-compatible chat-completion endpoint.
type OpenAIProvider struct {
	client    openai.Client
	chatModel string
	maxTokens int64
}

func NewOpenAIProvider(client openai.Client, chatModel string) *OpenAIProvider {
	if chatModel == "" {
		chatModel = "mixtral-8x7b-32768"
	}
	logger := common.Logger()
	logger.Info("llm: completion provider configured", "chat_model", chatModel)
	return &OpenAIProvider{client: client, chatModel: chatModel, maxTokens: defaultMaxTokens}
}

func (o *OpenAIProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages provided")
	}
	logger := common.Logger()
	logger.Debug("llm: sending chat completion request", "model", o.chatModel, "messages", len(messages))
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(o.chatModel),
		Temperature: openai.Float(defaultTemperature),
		MaxTokens:   openai.Int(o.maxTokens),
	}
	for _, msg := range messages {
		switch strings.ToLower(msg.Role) {
		case "system":
			params.Messages = append(params.Messages, openai.SystemMessage(msg.Content))
		case "assistant":
			params.Messages = append(params.Messages, openai.AssistantMessage(msg.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(msg.Content))
		}
	}
	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		logger.Error("llm: chat completion failed", "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	logger.Debug("llm: chat completion succeeded")
	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAIProvider) Name() string {
	return "openai"
}
