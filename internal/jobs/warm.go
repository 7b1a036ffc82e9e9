package jobs

import (
	"context"
	"fmt"
	"log"
)

// EmbeddingWarmer exposes the cache warm operation of the semantic searcher.
type EmbeddingWarmer interface {
	Warm(ctx context.Context) error
}

// CacheWarmer keeps the corpus embedding cache populated so the first visitor
// question does not pay the embedding cost. The warm call is a no-op once the
// cache is ready, so polling it is cheap.
type CacheWarmer struct {
	warmer EmbeddingWarmer
}

// NewCacheWarmer creates a CacheWarmer over the given searcher.
func NewCacheWarmer(warmer EmbeddingWarmer) *CacheWarmer {
	return &CacheWarmer{warmer: warmer}
}

// ProcessJobs warms the embedding cache. Implements JobProcessor.
func (c *CacheWarmer) ProcessJobs(ctx context.Context) error {
	if err := c.warmer.Warm(ctx); err != nil {
		return fmt.Errorf("failed to warm embedding cache: %w", err)
	}
	log.Println("embedding cache warm pass complete")
	return nil
}
