package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the creative service.
type Config struct {
	// Service Configuration
	ServiceName      string        `env:"SERVICE_NAME" envDefault:"creative-api"`
	ServiceNamespace string        `env:"SERVICE_NAMESPACE" envDefault:"adcraft"`
	Environment      string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort         int           `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"console"`
	OTLPEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Vertex AI generative models. Absence of the project identity is not a
	// startup error; it surfaces on first use as a collaborator failure.
	GCPProjectID    string `env:"GCP_PROJECT_ID"`
	GCPRegion       string `env:"GCP_REGION" envDefault:"us-central1"`
	TextModelName   string `env:"GEMINI_MODEL_NAME" envDefault:"gemini-2.0-flash"`
	ImageModelName  string `env:"IMAGEN_MODEL_NAME" envDefault:"imagen-3.0-generate-002"`
	TextProvider    string `env:"TEXT_PROVIDER" envDefault:"vertex"`
	OpenAIBaseURL   string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	OpenAITextModel string `env:"OPENAI_TEXT_MODEL" envDefault:"gpt-4o-mini"`

	// Generation behaviour
	GenerationTimeout  time.Duration `env:"GENERATION_TIMEOUT" envDefault:"120s"`
	DefaultVariations  int           `env:"DEFAULT_VARIATIONS" envDefault:"3"`
	DefaultAspectRatio string        `env:"DEFAULT_ASPECT_RATIO" envDefault:"1:1"`

	// Persona warehouse
	BigQueryDataset      string `env:"BIGQUERY_DATASET"`
	BigQueryPersonaTable string `env:"BIGQUERY_TABLE_PERSONA"`
	PersonaRowLimit      int    `env:"PERSONA_ROW_LIMIT" envDefault:"30"`

	// Translation collaborator (optional pre-processing step)
	TranslatorURL     string        `env:"TRANSLATOR_URL"`
	TranslatorTimeout time.Duration `env:"TRANSLATOR_TIMEOUT" envDefault:"10s"`

	// Generation audit log (optional, enabled when a DSN is configured)
	DatabaseURL    string        `env:"DATABASE_URL"`
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// Static SPA serving
	StaticDir string `env:"STATIC_DIR" envDefault:"./web/dist"`

	// Features
	EnableSwagger bool `env:"ENABLE_SWAGGER" envDefault:"true"`
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.TextProvider = strings.ToLower(strings.TrimSpace(cfg.TextProvider))
	switch cfg.TextProvider {
	case "", "vertex":
		cfg.TextProvider = "vertex"
	case "openai":
	default:
		return nil, fmt.Errorf("unsupported TEXT_PROVIDER %q (expected vertex or openai)", cfg.TextProvider)
	}

	if cfg.DefaultVariations < 1 || cfg.DefaultVariations > 4 {
		return nil, fmt.Errorf("DEFAULT_VARIATIONS must be between 1 and 4, got %d", cfg.DefaultVariations)
	}
	if cfg.PersonaRowLimit <= 0 {
		cfg.PersonaRowLimit = 30
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// AuditLogEnabled reports whether generation audit logging is configured.
func (c *Config) AuditLogEnabled() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

// TranslatorEnabled reports whether the translation collaborator is configured.
func (c *Config) TranslatorEnabled() bool {
	return strings.TrimSpace(c.TranslatorURL) != ""
}
