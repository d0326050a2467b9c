package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"adcraft/creative-api/internal/config"
	"adcraft/creative-api/internal/domain/creative"
	"adcraft/creative-api/internal/domain/persona"
	"adcraft/creative-api/internal/infrastructure/database"
	"adcraft/creative-api/internal/infrastructure/inference"
	"adcraft/creative-api/internal/infrastructure/logger"
	"adcraft/creative-api/internal/infrastructure/observability"
	"adcraft/creative-api/internal/infrastructure/repository/genlog"
	"adcraft/creative-api/internal/infrastructure/translator"
	"adcraft/creative-api/internal/infrastructure/warehouse"
	"adcraft/creative-api/internal/interfaces/httpserver"
	"adcraft/creative-api/internal/interfaces/httpserver/handlers"
)

// @title Creative API
// @version 1.0
// @description Ad creative generation service
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.ServiceName, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	// The audit log is optional; the service runs without it.
	var genlogRepo *genlog.Repository
	if cfg.AuditLogEnabled() {
		db, err := database.Connect(database.Config{
			DSN:             cfg.DatabaseURL,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			MaxOpenConns:    cfg.DBMaxOpenConns,
			ConnMaxLifetime: cfg.DBConnLifetime,
			LogLevel:        gormlogger.Warn,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("connect database")
		}
		if err := database.AutoMigrate(ctx, db, log); err != nil {
			log.Fatal().Err(err).Msg("migrate database")
		}
		genlogRepo = genlog.NewRepository(db, log)
	}

	var textGen creative.TextGenerator
	if cfg.TextProvider == "openai" {
		textGen = inference.NewOpenAITextGenerator(cfg, log)
	} else {
		textGen = inference.NewVertexTextGenerator(cfg, log)
	}
	imageGen := inference.NewVertexImageGenerator(cfg, log)

	var tr translator.Translator = translator.Noop{}
	if cfg.TranslatorEnabled() {
		tr = translator.NewHTTPTranslator(cfg, log)
	}

	var recorder creative.Recorder
	if genlogRepo != nil {
		recorder = genlogRepo
	}
	creativeService := creative.NewService(textGen, imageGen, tr, recorder, cfg.GenerationTimeout, log)

	personaStore := warehouse.NewBigQueryStore(cfg, log)
	personaService := persona.NewService(personaStore, cfg.PersonaRowLimit, log)

	handlerProvider := handlers.NewProvider(cfg, creativeService, personaService, genlogRepo, log)
	httpServer := httpserver.New(cfg, log, handlerProvider)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
