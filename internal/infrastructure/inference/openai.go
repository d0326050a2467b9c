package inference

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"adcraft/creative-api/internal/config"
	"adcraft/creative-api/internal/infrastructure/metrics"
)

// OpenAITextGenerator generates ad copy through an OpenAI compatible endpoint.
// Used when TEXT_PROVIDER=openai, which also covers self hosted gateways that
// speak the same protocol.
type OpenAITextGenerator struct {
	client *openai.Client
	model  string
	logger zerolog.Logger
}

// NewOpenAITextGenerator creates the OpenAI backed text generator.
func NewOpenAITextGenerator(cfg *config.Config, logger zerolog.Logger) *OpenAITextGenerator {
	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}
	return &OpenAITextGenerator{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.OpenAITextModel,
		logger: logger.With().Str("component", "openai_text").Logger(),
	}
}

// GenerateText implements TextGenerator.
func (g *OpenAITextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: textTemperature,
		TopP:        textTopP,
		MaxTokens:   int(textMaxOutputTokens),
	})
	metrics.RecordModelCall("text", time.Since(start).Seconds())
	if err != nil {
		g.logger.Error().Err(err).Str("model", g.model).Msg("chat completion call failed")
		return "", fmt.Errorf("generate text with %s: %w", g.model, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("generate text with %s: empty response", g.model)
	}

	g.logger.Debug().
		Str("model", g.model).
		Int("response_len", len(resp.Choices[0].Message.Content)).
		Dur("duration", time.Since(start)).
		Msg("chat completion completed")
	return resp.Choices[0].Message.Content, nil
}
