package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	// KnowledgePath overrides the embedded corpus with an external markdown
	// file. Empty means the embedded corpus.
	KnowledgePath string `envconfig:"KNOWLEDGE_PATH"`

	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`
	GroqAPIKey   string `envconfig:"GROQ_API_KEY"`
	GroqModel    string `envconfig:"GROQ_MODEL"`

	// LLMTimeout bounds each outbound embedding or completion call.
	LLMTimeout time.Duration `envconfig:"LLM_TIMEOUT" default:"8s"`

	// EmbedWarmInterval enables the background cache warmer when positive.
	EmbedWarmInterval time.Duration `envconfig:"EMBED_WARM_INTERVAL"`

	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("ASSISTANT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}

func (c *Config) HasGroq() bool {
	return c.GroqAPIKey != ""
}

// HasChatModel reports whether any chat completion provider is configured.
func (c *Config) HasChatModel() bool {
	return c.HasGroq() || c.HasOpenAI()
}
