package service

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/ilomad/portfolio-assistant/internal/domain"
	"github.com/ilomad/portfolio-assistant/internal/telemetry"
)

// EmbeddingClient generates an embedding vector for a text.
type EmbeddingClient interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// EmbedderSource resolves the embedding client on every call, so credential
// changes take effect without a process restart. A nil client means the
// capability is not configured.
type EmbedderSource interface {
	Embedder() EmbeddingClient
}

// SemanticSearcher ranks corpus chunks by cosine similarity between the
// query embedding and lazily computed corpus embeddings. Every failure path
// degrades to the keyword searcher; Search never returns an empty context
// for a non-empty corpus.
type SemanticSearcher struct {
	chunks  []domain.Chunk
	source  EmbedderSource
	keyword *KeywordSearcher

	// The corpus embedding cache is populated once per process, guarded by a
	// completion flag rather than a size check so concurrent callers never
	// observe a partially populated cache.
	mu      sync.Mutex
	vectors [][]float32
	ready   bool
}

// NewSemanticSearcher creates a searcher over the given chunks. keyword is
// the degradation target and must not be nil.
func NewSemanticSearcher(chunks []domain.Chunk, source EmbedderSource, keyword *KeywordSearcher) *SemanticSearcher {
	return &SemanticSearcher{chunks: chunks, source: source, keyword: keyword}
}

// Search returns a blank-line-joined context block of the top k chunks for
// the query. Without configured embedding credentials it defers silently to
// keyword search; on any embedding failure it logs and degrades to keyword
// search for the same query and k.
func (s *SemanticSearcher) Search(ctx context.Context, query string, k int) (string, error) {
	client := s.source.Embedder()
	if client == nil {
		// Expected degradation, not an error.
		return s.keyword.Context(query, k), nil
	}

	block, err := s.search(ctx, client, query, k)
	if err != nil {
		log.Printf("semantic search failed, falling back to keyword search: %v", err)
		telemetry.CaptureError(ctx, err)
		return s.keyword.Context(query, k), nil
	}
	return block, nil
}

// Warm populates the corpus embedding cache ahead of the first semantic
// query. It is a no-op when credentials are absent or the cache is ready.
func (s *SemanticSearcher) Warm(ctx context.Context) error {
	client := s.source.Embedder()
	if client == nil {
		return nil
	}
	_, err := s.corpusVectors(ctx, client)
	return err
}

func (s *SemanticSearcher) search(ctx context.Context, client EmbeddingClient, query string, k int) (string, error) {
	vectors, err := s.corpusVectors(ctx, client)
	if err != nil {
		return "", err
	}

	// The query is embedded fresh on every call; only corpus vectors cache.
	queryVector, err := client.GenerateEmbedding(ctx, query)
	if err != nil {
		return "", err
	}

	scored := make([]domain.ScoredChunk, len(s.chunks))
	for i, chunk := range s.chunks {
		// Chunks whose embedding failed score 0 instead of being excluded.
		scored[i] = domain.ScoredChunk{Chunk: chunk, Score: cosineSimilarity(queryVector, vectors[i])}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > k {
		scored = scored[:k]
	}

	texts := make([]string, len(scored))
	for i, sc := range scored {
		texts[i] = sc.Chunk.Text
	}
	return strings.Join(texts, "\n\n"), nil
}

// corpusVectors returns the cached corpus embeddings, computing them on
// first use. Individual chunk failures leave a nil vector (scored 0 later);
// a cancelled context aborts without marking the cache ready.
func (s *SemanticSearcher) corpusVectors(ctx context.Context, client EmbeddingClient) ([][]float32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return s.vectors, nil
	}

	vectors := make([][]float32, len(s.chunks))
	for i, chunk := range s.chunks {
		vector, err := client.GenerateEmbedding(ctx, chunk.Text)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("failed to embed knowledge chunk %d: %v", chunk.Index, err)
			continue
		}
		vectors[i] = vector
	}

	s.vectors = vectors
	s.ready = true
	return s.vectors, nil
}

// cosineSimilarity returns dot(a, b) / (|a| * |b|), or 0 when either vector
// is missing or zero-length in magnitude.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
