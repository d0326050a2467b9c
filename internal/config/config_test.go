package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.HTTPPort != 8080 {
		t.Errorf("HTTPPort = %d, want 8080", cfg.HTTPPort)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.TextProvider != "vertex" {
		t.Errorf("TextProvider = %q, want vertex", cfg.TextProvider)
	}
	if cfg.DefaultVariations != 3 {
		t.Errorf("DefaultVariations = %d, want 3", cfg.DefaultVariations)
	}
	if cfg.PersonaRowLimit != 30 {
		t.Errorf("PersonaRowLimit = %d, want 30", cfg.PersonaRowLimit)
	}
	if cfg.AuditLogEnabled() {
		t.Error("audit log should be disabled without DATABASE_URL")
	}
	if cfg.TranslatorEnabled() {
		t.Error("translator should be disabled without TRANSLATOR_URL")
	}
}

func TestLoadRejectsUnknownTextProvider(t *testing.T) {
	t.Setenv("TEXT_PROVIDER", "anthropic")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown TEXT_PROVIDER")
	}
}

func TestLoadRejectsOutOfRangeDefaultVariations(t *testing.T) {
	t.Setenv("DEFAULT_VARIATIONS", "7")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for DEFAULT_VARIATIONS=7")
	}
}

func TestLoadNormalizesProviderCase(t *testing.T) {
	t.Setenv("TEXT_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "test-key")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TextProvider != "openai" {
		t.Errorf("TextProvider = %q, want openai", cfg.TextProvider)
	}
}
