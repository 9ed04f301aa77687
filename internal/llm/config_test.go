package llm

import "testing"

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("PREPMATE_LLM_PROVIDER", "openai")
	t.Setenv("PREPMATE_OPENAI_API_KEY", "sk-test")
	t.Setenv("PREPMATE_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %s, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("APIKey = %s", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("Model = %s", cfg.OpenAI.Model)
	}
	// Untouched sections keep their defaults.
	if cfg.Gemini.Model != "gemini-flash" {
		t.Errorf("Gemini.Model = %s, want default", cfg.Gemini.Model)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"unknown provider", Config{Provider: "oracle"}, true},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g")
	t.Setenv("OPENAI_API_KEY", "o")
	t.Setenv("ANTHROPIC_API_KEY", "a")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %s, want gemini (highest priority)", cfg.Provider)
	}
}
