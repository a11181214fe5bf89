package moderation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"promptGallery/internal/config"
)

// systemPrompt asks the model for a one-word verdict on the first line
// and a short justification after it.
const systemPrompt = "You are a content moderator. Evaluate if the given text prompt is safe " +
	"and appropriate for image generation. Consider: violence, explicit content, " +
	"hate speech, harassment, self-harm, or other harmful content. Respond with " +
	"either 'SAFE' or 'UNSAFE' followed by a brief reason."

const safePrefix = "SAFE"

// Result is the moderation verdict for a single prompt.
type Result struct {
	Safe   bool   `json:"safe"`
	Reason string `json:"reason"`
}

// Client checks prompt text against an OpenAI-compatible chat-completion
// endpoint. Safe for concurrent use.
type Client struct {
	client *openai.Client
	model  string
}

func New(cfg *config.Moderation) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

func (c *Client) Check(ctx context.Context, text string) (*Result, error) {
	const op = "moderation.Check"

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var reply string
	if len(resp.Choices) > 0 {
		reply = resp.Choices[0].Message.Content
	}

	result := parseVerdict(reply)

	return &result, nil
}

// parseVerdict classifies a raw moderator reply. The prompt is safe only
// when the reply starts with the exact token "SAFE"; an "UNSAFE" reply
// never matches that prefix. The reason is the second line, if any.
func parseVerdict(reply string) Result {
	lines := strings.Split(reply, "\n")

	reason := ""
	if len(lines) > 1 {
		reason = lines[1]
	}

	return Result{
		Safe:   strings.HasPrefix(reply, safePrefix),
		Reason: reason,
	}
}
