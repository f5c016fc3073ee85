package ai

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/soupmate/soupmate-api/internal/errs"
)

// AnthropicCompleter implements Completer on the Claude messages API.
type AnthropicCompleter struct {
	apiKey string
	client anthropic.Client
	model  anthropic.Model
}

// NewAnthropicCompleter creates a Claude-backed completer.
func NewAnthropicCompleter(apiKey string) *AnthropicCompleter {
	return &AnthropicCompleter{
		apiKey: apiKey,
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.ModelClaude3_5Sonnet20241022,
	}
}

// Complete sends the prompt as a single user message and returns the
// concatenated text blocks of the reply.
func (c *AnthropicCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errs.ConfigError{Message: "Anthropic API key not configured"}
	}

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 4096,
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock(prompt),
				},
			},
		},
	})
	if err != nil {
		return "", errs.UpstreamError{Message: fmt.Sprintf("claude API error: %v", err)}
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", errs.UpstreamError{Message: "no completion text in claude response"}
	}

	return text, nil
}
