package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type OpenAIClient struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
	logger      *zap.Logger
}

func NewOpenAIClient(apiKey string, model string, maxTokens int, temperature float64, timeout time.Duration, logger *zap.Logger) *OpenAIClient {
	return &OpenAIClient{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: float32(temperature),
		timeout:     timeout,
		logger:      logger,
	}
}

// Complete sends a single-turn chat completion and returns the trimmed
// response text. Every call carries the client's request timeout.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	temperature := c.temperature
	if opts.Temperature > 0 {
		temperature = opts.Temperature
	}
	maxTokens := c.maxTokens
	if opts.MaxTokens > 0 {
		maxTokens = opts.MaxTokens
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   maxTokens,
			Temperature: temperature,
		},
	)
	if err != nil {
		c.logger.Error("Failed to get completion", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrModel, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", ErrModel)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
