package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var relayEnv = []string{
	"PORT", "HTTP_SERVER_PORT", "HTTP_SERVER_HOST", "HTTP_SERVER_MODE",
	"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL", "GEMINI_TIMEOUT", "GEMINI_PROXY_URL",
	"GEMINI_REQUIRE_API_KEY", "GEMINI_SAFETY_REASONS",
	"RELAY_DEFAULT_PROMPT", "RELAY_MISSING_PROMPT_POLICY",
	"LOGGER_LEVEL", "LOGGER_MODE", "LOGGER_ENCODING", "LOGGER_COLOR_ENABLED", "ENVIRONMENT_NAME",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range relayEnv {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.HTTPServer.Port)
	assert.Equal(t, "release", cfg.HTTPServer.Mode)
	assert.Equal(t, "", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.Gemini.BaseURL)
	assert.Equal(t, 60, cfg.Gemini.Timeout)
	assert.False(t, cfg.Gemini.RequireAPIKey)
	assert.Equal(t, []string{"SAFETY", "PROHIBITED_CONTENT", "BLOCKLIST", "SPII"}, cfg.Gemini.SafetyReasons)
	assert.Equal(t, "Write a story about a magical bag.", cfg.Relay.DefaultPrompt)
	assert.Equal(t, "default", cfg.Relay.MissingPromptPolicy)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "production", cfg.Environment.Name)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("GEMINI_API_KEY", " abc123 ")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("GEMINI_TIMEOUT", "5")
	t.Setenv("GEMINI_SAFETY_REASONS", "SAFETY, RECITATION")
	t.Setenv("RELAY_MISSING_PROMPT_POLICY", "reject")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.HTTPServer.Port)
	assert.Equal(t, "abc123", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 5, cfg.Gemini.Timeout)
	assert.Equal(t, []string{"SAFETY", "RECITATION"}, cfg.Gemini.SafetyReasons)
	assert.Equal(t, "reject", cfg.Relay.MissingPromptPolicy)
}

func TestLoadPortPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_SERVER_PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.HTTPServer.Port)

	t.Setenv("PORT", "9001")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 9001, cfg.HTTPServer.Port)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "required api key missing", env: map[string]string{"GEMINI_REQUIRE_API_KEY": "true"}},
		{name: "bad port", env: map[string]string{"PORT": "70000"}},
		{name: "bad mode", env: map[string]string{"HTTP_SERVER_MODE": "verbose"}},
		{name: "bad policy", env: map[string]string{"RELAY_MISSING_PROMPT_POLICY": "guess"}},
		{name: "relative base url", env: map[string]string{"GEMINI_BASE_URL": "/v1beta"}},
		{name: "non-positive timeout", env: map[string]string{"GEMINI_TIMEOUT": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, splitList([]string{"A, B", "", " C "}))
	assert.Empty(t, splitList(nil))
}
