package translator

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	"adcraft/creative-api/internal/config"
	"adcraft/creative-api/internal/utils/httpclients"
)

// Translator converts user supplied text to English before it is embedded in
// model prompts. Implementations must be safe for concurrent use.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// ContainsHangul reports whether the text holds Korean syllable characters.
// Only the precomposed syllable block matters here; isolated jamo never occur
// in real product descriptions.
func ContainsHangul(text string) bool {
	for _, r := range text {
		if r >= 0xAC00 && r <= 0xD7A3 {
			return true
		}
	}
	return false
}

// EnglishFor returns the English rendering of text. Text without Korean
// characters passes through untouched, and translation failures fall back to
// the original text so generation still proceeds.
func EnglishFor(ctx context.Context, t Translator, text string, logger zerolog.Logger) string {
	if !ContainsHangul(text) {
		return text
	}
	translated, err := t.Translate(ctx, text)
	if err != nil {
		logger.Warn().Err(err).Msg("translation failed, using original text")
		return text
	}
	if translated == "" {
		return text
	}
	return translated
}

type translateRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
}

// HTTPTranslator calls an external translation endpoint.
type HTTPTranslator struct {
	client *resty.Client
	url    string
	logger zerolog.Logger
}

// NewHTTPTranslator creates a translator backed by the configured endpoint.
func NewHTTPTranslator(cfg *config.Config, logger zerolog.Logger) *HTTPTranslator {
	client := httpclients.NewClient("translator")
	client.SetTimeout(cfg.TranslatorTimeout)
	return &HTTPTranslator{
		client: client,
		url:    cfg.TranslatorURL,
		logger: logger.With().Str("component", "translator").Logger(),
	}
}

// Translate implements Translator.
func (t *HTTPTranslator) Translate(ctx context.Context, text string) (string, error) {
	var result translateResponse
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(translateRequest{Text: text, Target: "en"}).
		SetResult(&result).
		Post(t.url)
	if err != nil {
		return "", fmt.Errorf("call translator: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("translator returned status %d", resp.StatusCode())
	}
	return result.TranslatedText, nil
}

// Noop passes text through unchanged. Used when no translator is configured.
type Noop struct{}

// Translate implements Translator.
func (Noop) Translate(_ context.Context, text string) (string, error) {
	return text, nil
}
