// Package llm holds the Azure OpenAI chat completion adapter.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/aidyn-dev/banking-notification-service/configs"
)

// ErrEmptyCompletion is returned when the model replies without any choices.
var ErrEmptyCompletion = errors.New("llm: completion returned no choices")

// AzureClient calls an Azure OpenAI chat deployment. It implements
// port/llm.ChatCompleter.
type AzureClient struct {
	deployment  string
	temperature float32
	client      *openai.Client
}

// NewAzureClient builds a client from the Azure OpenAI settings in cfg.
func NewAzureClient(cfg *configs.Config) *AzureClient {
	azureCfg := openai.DefaultAzureConfig(cfg.AzureOpenAIKey, cfg.AzureOpenAIEndpoint)
	azureCfg.APIVersion = cfg.AzureOpenAIAPIVersion
	azureCfg.AzureModelMapperFunc = func(model string) string {
		// Deployment names mirror model names in our Azure resource.
		return model
	}

	return &AzureClient{
		deployment:  cfg.AzureOpenAIDeployment,
		temperature: float32(cfg.LLMTemperature),
		client:      openai.NewClientWithConfig(azureCfg),
	}
}

// Complete sends one system+user exchange and returns the raw assistant text.
func (c *AzureClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.deployment,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("azure chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
