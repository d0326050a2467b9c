package creative

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"adcraft/creative-api/internal/infrastructure/metrics"
	"adcraft/creative-api/internal/infrastructure/observability"
	"adcraft/creative-api/internal/infrastructure/translator"
	"adcraft/creative-api/internal/utils/platformerrors"
)

// TextGenerator produces free-form text from a hosted generative model.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator produces PNG image bytes from a hosted image model. The
// returned slice may be shorter than count on partial failure.
type ImageGenerator interface {
	GenerateImages(ctx context.Context, prompt, aspectRatio string, count int) ([][]byte, error)
}

// BatchOutcome summarises one generation batch for the audit log.
type BatchOutcome struct {
	RequestID     string
	Product       string
	Persona       string
	Variations    int
	TextFailures  int
	ImageFailures int
	Duration      time.Duration
	Status        string
}

// Recorder persists batch outcomes. Implementations must tolerate being
// called on the request path and swallow their own errors.
type Recorder interface {
	Record(ctx context.Context, outcome BatchOutcome)
}

// Service orchestrates one generation batch: prompt construction, the two
// model calls, parsing, placeholder padding and the final shape check.
type Service struct {
	text       TextGenerator
	image      ImageGenerator
	translator translator.Translator
	recorder   Recorder
	timeout    time.Duration
	logger     zerolog.Logger
}

// NewService creates the generation service. recorder may be nil when audit
// logging is not configured.
func NewService(
	text TextGenerator,
	image ImageGenerator,
	tr translator.Translator,
	recorder Recorder,
	timeout time.Duration,
	logger zerolog.Logger,
) *Service {
	if tr == nil {
		tr = translator.Noop{}
	}
	return &Service{
		text:       text,
		image:      image,
		translator: tr,
		recorder:   recorder,
		timeout:    timeout,
		logger:     logger.With().Str("component", "creative_service").Logger(),
	}
}

// ValidateVariations checks the requested count against the accepted range.
func ValidateVariations(count int) error {
	if count < MinVariations || count > MaxVariations {
		return platformerrors.NewError(context.Background(), platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("number_of_variations must be between %d and %d", MinVariations, MaxVariations),
			nil, "")
	}
	return nil
}

// Generate runs the full pipeline for one request and returns exactly
// req.Variations creatives, or an error. Partial sets are never returned.
func (s *Service) Generate(ctx context.Context, req GenerationRequest) ([]Creative, error) {
	if err := ValidateVariations(req.Variations); err != nil {
		return nil, err
	}

	start := time.Now()
	ctx, span := observability.StartSpan(ctx, "creative-api", "creative.generate")
	defer span.End()
	observability.AddSpanAttributes(ctx,
		attribute.String("product", req.Product),
		attribute.Int("variations", req.Variations),
	)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	// User supplied text may arrive in Korean; prompts are built in English.
	req.Product = translator.EnglishFor(ctx, s.translator, req.Product, s.logger)
	req.Description = translator.EnglishFor(ctx, s.translator, req.Description, s.logger)
	req.Persona = translator.EnglishFor(ctx, s.translator, req.Persona, s.logger)

	textPrompt := BuildTextPrompt(req)
	imagePrompt := BuildImagePrompt(req)
	s.logger.Debug().Str("image_prompt", imagePrompt).Msg("constructed image prompt")

	// The two model calls are independent, run them concurrently. Neither
	// branch returns an error: failures become placeholders so the batch
	// fails uniformly at the shape check below.
	var (
		texts  []string
		images []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		texts = s.generateTexts(gctx, textPrompt, req.Variations)
		return nil
	})
	g.Go(func() error {
		images = s.generateImages(gctx, imagePrompt, req.AspectRatio, req.Variations)
		return nil
	})
	_ = g.Wait()

	textFailures := countPlaceholders(texts)
	imageFailures := countPlaceholders(images)
	requestID, _ := ctx.Value("requestID").(string)
	outcome := BatchOutcome{
		RequestID:     requestID,
		Product:       req.Product,
		Persona:       req.Persona,
		Variations:    req.Variations,
		TextFailures:  textFailures,
		ImageFailures: imageFailures,
		Duration:      time.Since(start),
		Status:        "success",
	}

	if err := checkBatch(ctx, texts, images, req.Variations); err != nil {
		outcome.Status = "failed"
		s.record(ctx, outcome)
		metrics.RecordGeneration("failed")
		observability.RecordError(ctx, err)
		return nil, err
	}

	creatives := make([]Creative, req.Variations)
	for i := 0; i < req.Variations; i++ {
		creatives[i] = Creative{AdText: texts[i], ImageData: images[i]}
	}

	s.record(ctx, outcome)
	metrics.RecordGeneration("success")
	s.logger.Info().
		Int("variations", req.Variations).
		Dur("duration", time.Since(start)).
		Msg("generation batch completed")
	return creatives, nil
}

// generateTexts returns exactly count strings, substituting placeholders for
// anything the model call or the parser could not deliver.
func (s *Service) generateTexts(ctx context.Context, prompt string, count int) []string {
	raw, err := s.text.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Error().Err(err).Msg("text generation failed")
		return placeholderList(textErrorPlaceholder, count)
	}

	var items []string
	if count == 1 {
		items = []string{strings.TrimSpace(raw)}
	} else {
		items = ParseVariations(raw, count)
	}

	texts := make([]string, count)
	for i := 0; i < count; i++ {
		if i < len(items) && strings.TrimSpace(items[i]) != "" {
			texts[i] = items[i]
			metrics.RecordVariation("text", "success")
		} else {
			texts[i] = textMissingPlaceholder
			metrics.RecordVariation("text", "failed")
		}
	}
	return texts
}

// generateImages returns exactly count entries, each either a PNG data URI or
// a placeholder.
func (s *Service) generateImages(ctx context.Context, prompt, aspectRatio string, count int) []string {
	buffers, err := s.image.GenerateImages(ctx, prompt, aspectRatio, count)
	if err != nil {
		s.logger.Error().Err(err).Msg("image generation failed")
		return placeholderList(imageErrorPlaceholder, count)
	}

	images := make([]string, count)
	for i := 0; i < count; i++ {
		if i < len(buffers) && len(buffers[i]) > 0 {
			images[i] = "data:image/png;base64," + base64.StdEncoding.EncodeToString(buffers[i])
			metrics.RecordVariation("image", "success")
		} else {
			images[i] = imageMissingPlaceholder
			metrics.RecordVariation("image", "failed")
		}
	}
	return images
}

// checkBatch enforces the response shape: both lists exactly count long with
// no failure markers. Any violation fails the whole batch.
func checkBatch(ctx context.Context, texts, images []string, count int) error {
	fail := func(msg string) error {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeInternal, msg, nil, "")
	}

	if len(texts) != count {
		return fail(fmt.Sprintf("text generation produced %d of %d variations", len(texts), count))
	}
	if len(images) != count {
		return fail(fmt.Sprintf("image generation produced %d of %d variations", len(images), count))
	}
	for i, t := range texts {
		if IsPlaceholder(t) {
			return fail(fmt.Sprintf("text generation failed for variation %d", i+1))
		}
	}
	for i, img := range images {
		if IsPlaceholder(img) {
			return fail(fmt.Sprintf("image generation failed for variation %d", i+1))
		}
	}
	return nil
}

func (s *Service) record(ctx context.Context, outcome BatchOutcome) {
	if s.recorder == nil {
		return
	}
	s.recorder.Record(ctx, outcome)
}

func placeholderList(placeholder string, count int) []string {
	list := make([]string, count)
	for i := range list {
		list[i] = placeholder
	}
	return list
}

func countPlaceholders(values []string) int {
	n := 0
	for _, v := range values {
		if IsPlaceholder(v) {
			n++
		}
	}
	return n
}
