//go:build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"adcraft/creative-api/internal/config"
	"adcraft/creative-api/internal/domain/creative"
	"adcraft/creative-api/internal/domain/persona"
	"adcraft/creative-api/internal/infrastructure/inference"
	"adcraft/creative-api/internal/infrastructure/logger"
	"adcraft/creative-api/internal/infrastructure/translator"
	"adcraft/creative-api/internal/infrastructure/warehouse"
	"adcraft/creative-api/internal/interfaces/httpserver"
	"adcraft/creative-api/internal/interfaces/httpserver/handlers"
)

var generationSet = wire.NewSet(
	provideTextGenerator,
	inference.NewVertexImageGenerator,
	wire.Bind(new(creative.ImageGenerator), new(*inference.VertexImageGenerator)),
	provideTranslator,
	provideCreativeService,
)

var personaSet = wire.NewSet(
	warehouse.NewBigQueryStore,
	wire.Bind(new(persona.Store), new(*warehouse.BigQueryStore)),
	providePersonaService,
)

// BuildApplication assembles the creative API with Wire.
func BuildApplication() (*Application, error) {
	wire.Build(
		config.Load,
		provideLogger,
		generationSet,
		personaSet,
		provideHandlers,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func provideLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logger.New(cfg.ServiceName, cfg.LogLevel, cfg.LogFormat)
}

func provideTextGenerator(cfg *config.Config, log zerolog.Logger) creative.TextGenerator {
	if cfg.TextProvider == "openai" {
		return inference.NewOpenAITextGenerator(cfg, log)
	}
	return inference.NewVertexTextGenerator(cfg, log)
}

func provideTranslator(cfg *config.Config, log zerolog.Logger) translator.Translator {
	if cfg.TranslatorEnabled() {
		return translator.NewHTTPTranslator(cfg, log)
	}
	return translator.Noop{}
}

func provideCreativeService(
	text creative.TextGenerator,
	image creative.ImageGenerator,
	tr translator.Translator,
	cfg *config.Config,
	log zerolog.Logger,
) *creative.Service {
	return creative.NewService(text, image, tr, nil, cfg.GenerationTimeout, log)
}

func providePersonaService(store persona.Store, cfg *config.Config, log zerolog.Logger) *persona.Service {
	return persona.NewService(store, cfg.PersonaRowLimit, log)
}

func provideHandlers(
	cfg *config.Config,
	creativeService *creative.Service,
	personaService *persona.Service,
	log zerolog.Logger,
) *handlers.Provider {
	return handlers.NewProvider(cfg, creativeService, personaService, nil, log)
}
