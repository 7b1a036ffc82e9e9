package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv removes a variable for the test while restoring it afterwards.
// t.Setenv alone leaves an empty value in place, which envconfig treats as
// set.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoad_WithEnvVars(t *testing.T) {
	t.Setenv("ASSISTANT_PORT", "9090")
	t.Setenv("ASSISTANT_DEBUG", "true")
	t.Setenv("ASSISTANT_KNOWLEDGE_PATH", "/data/corpus.md")
	t.Setenv("ASSISTANT_OPENAI_API_KEY", "sk-test")
	t.Setenv("ASSISTANT_GROQ_API_KEY", "gsk-test")
	t.Setenv("ASSISTANT_GROQ_MODEL", "llama-3.1-8b-instant")
	t.Setenv("ASSISTANT_LLM_TIMEOUT", "12s")
	t.Setenv("ASSISTANT_EMBED_WARM_INTERVAL", "5m")
	t.Setenv("ASSISTANT_SENTRY_DSN", "https://abc@sentry.example/1")
	t.Setenv("ASSISTANT_ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/data/corpus.md", cfg.KnowledgePath)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "gsk-test", cfg.GroqAPIKey)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.GroqModel)
	assert.Equal(t, 12*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 5*time.Minute, cfg.EmbedWarmInterval)
	assert.Equal(t, "https://abc@sentry.example/1", cfg.SentryDSN)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "ASSISTANT_PORT")
	unsetenv(t, "PORT")
	unsetenv(t, "ASSISTANT_LLM_TIMEOUT")
	unsetenv(t, "ASSISTANT_ENVIRONMENT")
	unsetenv(t, "ENVIRONMENT")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.KnowledgePath)
	assert.Equal(t, 8*time.Second, cfg.LLMTimeout)
	assert.Zero(t, cfg.EmbedWarmInterval)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_UnprefixedFallback(t *testing.T) {
	// envconfig falls back to the bare variable name when the prefixed one is
	// absent, which keeps plain OPENAI_API_KEY deployments working.
	unsetenv(t, "ASSISTANT_OPENAI_API_KEY")
	t.Setenv("OPENAI_API_KEY", "sk-plain")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-plain", cfg.OpenAIAPIKey)
}

func TestHasChatModel(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.HasChatModel())

	cfg.OpenAIAPIKey = "sk-test"
	assert.True(t, cfg.HasChatModel())
	assert.True(t, cfg.HasOpenAI())
	assert.False(t, cfg.HasGroq())

	cfg = &Config{GroqAPIKey: "gsk-test"}
	assert.True(t, cfg.HasChatModel())
	assert.True(t, cfg.HasGroq())
}
