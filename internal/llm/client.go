// Package llm wraps the OpenAI-compatible APIs used for embeddings and chat
// completions. Groq exposes the same wire protocol, so a single client type
// serves both providers.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

const (
	// DefaultEmbeddingModel is the OpenAI model used for generating embeddings
	DefaultEmbeddingModel = openai.AdaEmbeddingV2
	// DefaultEmbeddingDimensions is the expected dimension of embeddings from ada-002
	DefaultEmbeddingDimensions = 1536
	// DefaultGroqChatModel is the Groq model used for chat completions
	DefaultGroqChatModel = "llama-3.3-70b-versatile"
	// DefaultOpenAIChatModel is the fallback chat model on the OpenAI API
	DefaultOpenAIChatModel = openai.GPT4oMini

	groqBaseURL = "https://api.groq.com/openai/v1"

	// defaultRequestsPerSecond caps outbound API calls per client.
	defaultRequestsPerSecond = 4
	defaultBurst             = 2
)

var (
	// ErrEmptyText is returned when text is empty
	ErrEmptyText = errors.New("text cannot be empty")
	// ErrWrongDimensions is returned when embedding has wrong dimensions
	ErrWrongDimensions = errors.New("embedding has wrong dimensions, expected 1536")
	// ErrEmptyCompletion is returned when the model returns no choices
	ErrEmptyCompletion = errors.New("chat completion returned no choices")
)

// API defines the provider calls the client depends on.
type API interface {
	CreateEmbeddings(ctx context.Context, text string) ([]float32, error)
	CreateChatCompletion(ctx context.Context, model, system, user string) (string, error)
}

type openAIAdapter struct {
	client         *openai.Client
	embeddingModel openai.EmbeddingModel
}

func newOpenAIAdapter(apiKey, baseURL string, embeddingModel openai.EmbeddingModel) *openAIAdapter {
	if embeddingModel == "" {
		embeddingModel = DefaultEmbeddingModel
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &openAIAdapter{
		client:         openai.NewClientWithConfig(cfg),
		embeddingModel: embeddingModel,
	}
}

// CreateEmbeddings calls the provider API to create embeddings
func (a *openAIAdapter) CreateEmbeddings(ctx context.Context, text string) ([]float32, error) {
	resp, err := a.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: a.embeddingModel,
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Data) == 0 {
		return nil, errors.New("no embedding data returned")
	}

	return resp.Data[0].Embedding, nil
}

// CreateChatCompletion calls the provider API for a single-turn completion
func (a *openAIAdapter) CreateChatCompletion(ctx context.Context, model, system, user string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.3,
		MaxTokens:   512,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// Config holds the client configuration.
type Config struct {
	APIKey  string
	BaseURL string

	ChatModel           string
	EmbeddingModel      openai.EmbeddingModel
	EmbeddingDimensions int

	// RequestsPerSecond caps outbound calls; zero means the default.
	RequestsPerSecond float64
}

// Client wraps one OpenAI-compatible provider behind a local rate limit.
type Client struct {
	api        API
	chatModel  string
	dimensions int
	limiter    *rate.Limiter
}

// NewClient creates a client with explicit configuration.
func NewClient(cfg Config) *Client {
	dimensions := cfg.EmbeddingDimensions
	if dimensions <= 0 {
		dimensions = DefaultEmbeddingDimensions
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	return &Client{
		api:        newOpenAIAdapter(cfg.APIKey, cfg.BaseURL, cfg.EmbeddingModel),
		chatModel:  cfg.ChatModel,
		dimensions: dimensions,
		limiter:    rate.NewLimiter(rate.Limit(rps), defaultBurst),
	}
}

// NewOpenAIClient creates a client against the OpenAI API.
func NewOpenAIClient(apiKey string) *Client {
	return NewClient(Config{APIKey: apiKey, ChatModel: DefaultOpenAIChatModel})
}

// NewGroqClient creates a client against the Groq API, which speaks the
// OpenAI wire protocol under a different base URL.
func NewGroqClient(apiKey, chatModel string) *Client {
	if chatModel == "" {
		chatModel = DefaultGroqChatModel
	}
	return NewClient(Config{APIKey: apiKey, BaseURL: groqBaseURL, ChatModel: chatModel})
}

// GenerateEmbedding generates an embedding for the given text
func (c *Client) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	embedding, err := c.api.CreateEmbeddings(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding: %w", err)
	}

	expected := c.dimensions
	if expected <= 0 {
		expected = DefaultEmbeddingDimensions
	}
	if len(embedding) != expected {
		return nil, ErrWrongDimensions
	}

	return embedding, nil
}

// Complete answers a question against the supplied context block using the
// configured chat model.
func (c *Client) Complete(ctx context.Context, system, contextBlock, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyText
	}
	if err := c.wait(ctx); err != nil {
		return "", err
	}

	user := fmt.Sprintf("Contexte du portfolio:\n%s\n\nQuestion: %s", contextBlock, question)
	reply, err := c.api.CreateChatCompletion(ctx, c.chatModel, system, user)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}
