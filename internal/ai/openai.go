package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/soupmate/soupmate-api/internal/errs"
)

// OpenAICompleter implements Completer on the OpenAI chat completion API.
type OpenAICompleter struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAICompleter creates an OpenAI-backed completer.
func NewOpenAICompleter(apiKey string) *OpenAICompleter {
	return &OpenAICompleter{
		apiKey: apiKey,
		model:  openai.GPT4TurboPreview,
		client: openai.NewClient(apiKey),
	}
}

// Complete sends the prompt as a single user message and returns the reply text.
func (c *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errs.ConfigError{Message: "OpenAI API key not configured"}
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", errs.UpstreamError{Message: fmt.Sprintf("openai chat completion failed: %v", err)}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errs.UpstreamError{Message: "no completion text in openai response"}
	}

	return resp.Choices[0].Message.Content, nil
}
