package inference

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"adcraft/creative-api/internal/config"
	"adcraft/creative-api/internal/infrastructure/metrics"
)

// vertexClients guards a lazily created genai client. Creation is deferred to
// first use so that a missing GCP identity shows up as a collaborator failure
// on the request path instead of blocking startup.
type vertexClients struct {
	cfg *config.Config

	mu     sync.Mutex
	client *genai.Client
}

func (v *vertexClients) get(ctx context.Context) (*genai.Client, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.client != nil {
		return v.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  v.cfg.GCPProjectID,
		Location: v.cfg.GCPRegion,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create vertex genai client: %w", err)
	}
	v.client = client
	return client, nil
}

// VertexTextGenerator generates ad copy through a Gemini model on Vertex AI.
type VertexTextGenerator struct {
	clients *vertexClients
	model   string
	logger  zerolog.Logger
}

// NewVertexTextGenerator creates the Vertex backed text generator.
func NewVertexTextGenerator(cfg *config.Config, logger zerolog.Logger) *VertexTextGenerator {
	return &VertexTextGenerator{
		clients: &vertexClients{cfg: cfg},
		model:   cfg.TextModelName,
		logger:  logger.With().Str("component", "vertex_text").Logger(),
	}
}

// GenerateText implements TextGenerator.
func (g *VertexTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	client, err := g.clients.get(ctx)
	if err != nil {
		return "", err
	}

	start := time.Now()
	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(textTemperature),
		TopP:            genai.Ptr(textTopP),
		MaxOutputTokens: textMaxOutputTokens,
	})
	metrics.RecordModelCall("text", time.Since(start).Seconds())
	if err != nil {
		g.logger.Error().Err(err).Str("model", g.model).Msg("text generation call failed")
		return "", fmt.Errorf("generate text with %s: %w", g.model, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("generate text with %s: empty response", g.model)
	}

	g.logger.Debug().
		Str("model", g.model).
		Int("prompt_len", len(prompt)).
		Int("response_len", len(text)).
		Dur("duration", time.Since(start)).
		Msg("text generation completed")
	return text, nil
}

// VertexImageGenerator renders single images through an Imagen model on Vertex AI.
type VertexImageGenerator struct {
	clients     *vertexClients
	model       string
	aspectRatio string
	logger      zerolog.Logger
}

// NewVertexImageGenerator creates the Vertex backed image generator.
func NewVertexImageGenerator(cfg *config.Config, logger zerolog.Logger) *VertexImageGenerator {
	return &VertexImageGenerator{
		clients:     &vertexClients{cfg: cfg},
		model:       cfg.ImageModelName,
		aspectRatio: cfg.DefaultAspectRatio,
		logger:      logger.With().Str("component", "vertex_image").Logger(),
	}
}

// GenerateImages implements ImageGenerator.
func (g *VertexImageGenerator) GenerateImages(ctx context.Context, prompt, aspectRatio string, count int) ([][]byte, error) {
	client, err := g.clients.get(ctx)
	if err != nil {
		return nil, err
	}
	if count < 1 {
		count = 1
	}
	if aspectRatio == "" {
		aspectRatio = g.aspectRatio
	}

	start := time.Now()
	resp, err := client.Models.GenerateImages(ctx, g.model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: int32(count),
		AspectRatio:    aspectRatio,
	})
	metrics.RecordModelCall("image", time.Since(start).Seconds())
	if err != nil {
		g.logger.Error().Err(err).Str("model", g.model).Msg("image generation call failed")
		return nil, fmt.Errorf("generate images with %s: %w", g.model, err)
	}

	// Empty buffers are dropped here so the caller sees an honest shortfall.
	images := make([][]byte, 0, count)
	for _, gen := range resp.GeneratedImages {
		if gen.Image == nil || len(gen.Image.ImageBytes) == 0 {
			continue
		}
		images = append(images, gen.Image.ImageBytes)
	}

	g.logger.Debug().
		Str("model", g.model).
		Int("requested", count).
		Int("returned", len(images)).
		Dur("duration", time.Since(start)).
		Msg("image generation completed")
	return images, nil
}
