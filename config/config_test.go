package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "LOG_LEVEL", "LOG_FORMAT", "CORS_ALLOWED_ORIGINS",
	"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
	"LLM_TIMEOUT", "LLM_TEMPERATURE", "LLM_MAX_TOKENS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := Load("")
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 0.9, cfg.LLM.Temperature)
	assert.Equal(t, int64(300), cfg.LLM.MaxTokens)
	assert.Equal(t, 1.0, cfg.LLM.TopP)
	assert.Equal(t, 0.5, cfg.LLM.FrequencyPenalty)
	assert.Equal(t, 0.5, cfg.LLM.PresencePenalty)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "8081")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("LLM_TIMEOUT", "15s")
	t.Setenv("LLM_MAX_TOKENS", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, 15*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, int64(300), cfg.LLM.MaxTokens)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("PORT", "9000")

	path := filepath.Join(t.TempDir(), "hookgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "4000"
log_format: json
llm:
  api_key: sk-file
  model: gpt-4.1-mini
  timeout: 20s
  temperature: 0.7
  max_tokens: 200
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port, "env wins over file")
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "sk-env", cfg.LLM.APIKey, "credential is never read from the file")
	assert.Equal(t, "gpt-4.1-mini", cfg.LLM.Model)
	assert.Equal(t, 20*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 0.7, cfg.LLM.Temperature)
	assert.Equal(t, int64(200), cfg.LLM.MaxTokens)
	assert.Equal(t, 0.5, cfg.LLM.PresencePenalty)
}

func TestLoadFileErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("llm: [unclosed"), 0o600))
	_, err = Load(bad)
	require.Error(t, err)
}

func TestLoadIgnoresUnparsableEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LLM_TIMEOUT", "soon")
	t.Setenv("LLM_TEMPERATURE", "hot")
	t.Setenv("LLM_MAX_TOKENS", "12.5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 0.9, cfg.LLM.Temperature)
	assert.Equal(t, int64(300), cfg.LLM.MaxTokens)
}
