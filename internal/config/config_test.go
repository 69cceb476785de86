package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearAmbient unsets every variable Load consults so tests control the
// full environment.
func clearAmbient(t *testing.T) {
	t.Helper()
	vars := []string{
		"QUIZARD_DB", "QUIZARD_LLM_PROVIDER", "QUIZARD_LLM_API_KEY",
		"QUIZARD_LLM_MODEL", "QUIZARD_LLM_BASE_URL", "QUIZARD_AI_BATCH_SIZE",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY",
	}
	for _, v := range vars {
		t.Setenv(v, "") // registers restoration
		os.Unsetenv(v)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearAmbient(t)
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBPath == "" {
		t.Error("expected a derived DB path")
	}
	if filepath.Base(cfg.DBPath) != "quizard.db" {
		t.Errorf("DBPath = %q, want quizard.db file", cfg.DBPath)
	}
	if cfg.AIBatchSize != 10 {
		t.Errorf("AIBatchSize = %d, want 10", cfg.AIBatchSize)
	}
	if cfg.AIEnabled() {
		t.Error("no keys set, AI should be disabled")
	}
}

func TestLoadExplicitValues(t *testing.T) {
	clearAmbient(t)
	db := filepath.Join(t.TempDir(), "custom.db")
	t.Setenv("QUIZARD_DB", db)
	t.Setenv("QUIZARD_LLM_PROVIDER", "openai")
	t.Setenv("QUIZARD_LLM_API_KEY", "sk-test")
	t.Setenv("QUIZARD_AI_BATCH_SIZE", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBPath != db {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, db)
	}
	if cfg.AIBatchSize != 25 {
		t.Errorf("AIBatchSize = %d, want 25", cfg.AIBatchSize)
	}

	lcfg := cfg.LLM()
	if lcfg.Provider != "openai" || lcfg.APIKey != "sk-test" {
		t.Errorf("LLM config = %+v", lcfg)
	}
	if err := lcfg.Validate(); err != nil {
		t.Errorf("expected valid LLM config: %v", err)
	}
}

func TestProviderDiscoveryFromAmbientKey(t *testing.T) {
	clearAmbient(t)
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLMProvider != "gemini" {
		t.Errorf("LLMProvider = %q, want gemini", cfg.LLMProvider)
	}
	if cfg.LLMAPIKey != "g-key" {
		t.Errorf("LLMAPIKey = %q, want g-key", cfg.LLMAPIKey)
	}
	if !cfg.AIEnabled() {
		t.Error("expected AI enabled")
	}
}

func TestDiscoveryPrefersAnthropic(t *testing.T) {
	clearAmbient(t)
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLMProvider != "anthropic" {
		t.Errorf("LLMProvider = %q, want anthropic", cfg.LLMProvider)
	}
	if cfg.LLMAPIKey != "a-key" {
		t.Errorf("LLMAPIKey = %q, want a-key", cfg.LLMAPIKey)
	}
}

func TestExplicitProviderKeepsConventionalKey(t *testing.T) {
	clearAmbient(t)
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("QUIZARD_LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("ANTHROPIC_API_KEY", "a-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLMProvider != "openai" {
		t.Errorf("LLMProvider = %q, want openai", cfg.LLMProvider)
	}
	if cfg.LLMAPIKey != "o-key" {
		t.Errorf("LLMAPIKey = %q, want o-key", cfg.LLMAPIKey)
	}
}
