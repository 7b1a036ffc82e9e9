package llm

import (
	"os"
	"sync"
)

// Source builds provider clients from the environment on each lookup, so
// keys added or rotated at runtime take effect without a restart. Clients
// are memoized per key so limiter state carries across calls.
type Source struct {
	mu          sync.Mutex
	embedder    *Client
	embedderKey string
	chat        *Client
	chatKey     string
}

// NewSource creates an environment-backed client source.
func NewSource() *Source {
	return &Source{}
}

// EmbeddingClient returns the embedding client, or nil when OPENAI_API_KEY
// is not set. Embeddings always go through OpenAI; Groq does not serve them.
func (s *Source) EmbeddingClient() *Client {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.embedder == nil || s.embedderKey != key {
		s.embedder = NewOpenAIClient(key)
		s.embedderKey = key
	}
	return s.embedder
}

// ChatClient returns the chat client, preferring Groq (GROQ_API_KEY, with
// GROQ_MODEL overriding the default model) and falling back to OpenAI.
// Returns nil when neither key is set.
func (s *Source) ChatClient() *Client {
	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		model := os.Getenv("GROQ_MODEL")
		return s.memoChat("groq:"+key+":"+model, func() *Client {
			return NewGroqClient(key, model)
		})
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return s.memoChat("openai:"+key, func() *Client {
			return NewOpenAIClient(key)
		})
	}
	return nil
}

func (s *Source) memoChat(key string, build func() *Client) *Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chat == nil || s.chatKey != key {
		s.chat = build()
		s.chatKey = key
	}
	return s.chat
}
