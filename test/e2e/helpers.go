//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ilomad/portfolio-assistant/internal/api/handlers"
	"github.com/ilomad/portfolio-assistant/internal/knowledge"
	"github.com/ilomad/portfolio-assistant/internal/server"
	"github.com/ilomad/portfolio-assistant/internal/service"
)

// E2ETestEnv holds the in-process server for end-to-end tests. The assistant
// has no external state, so the full stack runs against the embedded corpus
// with no provider credentials configured.
type E2ETestEnv struct {
	T          *testing.T
	Server     *httptest.Server
	HTTPClient *http.Client
}

type noEmbedder struct{}

func (noEmbedder) Embedder() service.EmbeddingClient { return nil }

type noChat struct{}

func (noChat) Chat() service.ChatClient { return nil }

// SetupE2EEnv wires the production components end to end: embedded corpus,
// keyword and semantic searchers, responder, handlers, router.
func SetupE2EEnv(t *testing.T) *E2ETestEnv {
	t.Helper()

	corpus := knowledge.Default()
	if corpus.Len() == 0 {
		t.Fatal("embedded corpus is empty")
	}

	bank, err := service.LoadResponseBank()
	if err != nil {
		t.Fatalf("failed to load response bank: %v", err)
	}

	keyword := service.NewKeywordSearcher(corpus.Chunks())
	semantic := service.NewSemanticSearcher(corpus.Chunks(), noEmbedder{}, keyword)
	responder := service.NewResponder(service.ResponderConfig{
		Semantic: semantic,
		Keyword:  keyword,
		Chat:     noChat{},
		Bank:     bank,
	})

	router := server.NewRouter(server.RouterConfig{
		ChatHandler: handlers.NewChatHandler(responder),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &E2ETestEnv{
		T:          t,
		Server:     srv,
		HTTPClient: srv.Client(),
	}
}

// Chat posts one message and decodes the response body.
func (env *E2ETestEnv) Chat(message, language string) (int, handlers.ChatResponse) {
	env.T.Helper()

	payload, err := json.Marshal(handlers.ChatRequest{Message: message, Language: language})
	if err != nil {
		env.T.Fatalf("failed to marshal request: %v", err)
	}

	resp, err := env.HTTPClient.Post(env.Server.URL+"/chat", "application/json", bytes.NewReader(payload))
	if err != nil {
		env.T.Fatalf("chat request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		env.T.Fatalf("failed to read response: %v", err)
	}

	var chatResp handlers.ChatResponse
	if resp.StatusCode == http.StatusOK {
		if err := json.Unmarshal(body, &chatResp); err != nil {
			env.T.Fatalf("failed to decode response %q: %v", body, err)
		}
	}
	return resp.StatusCode, chatResp
}
