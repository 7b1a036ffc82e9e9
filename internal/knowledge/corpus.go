// Package knowledge holds the static, hand-authored corpus the assistant
// answers from, split into section chunks at load time.
package knowledge

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/ilomad/portfolio-assistant/internal/domain"
)

//go:embed corpus.md
var defaultCorpus string

// Corpus is the read-only set of knowledge chunks. It is built once at
// process start and never mutated afterwards.
type Corpus struct {
	chunks []domain.Chunk
}

// Default returns the corpus compiled into the binary.
func Default() *Corpus {
	return FromText(defaultCorpus)
}

// Load reads a corpus from a markdown file. An empty path falls back to the
// embedded default.
func Load(path string) (*Corpus, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge corpus: %w", err)
	}
	return FromText(string(data)), nil
}

// FromText splits raw corpus text into chunks at "##" section boundaries.
// The marker is restored onto every chunk after the first so section
// headings survive the split.
func FromText(text string) *Corpus {
	parts := strings.Split(text, "\n##")
	chunks := make([]domain.Chunk, 0, len(parts))
	for i, part := range parts {
		if i > 0 {
			part = "##" + part
		}
		if strings.TrimSpace(part) == "" {
			continue
		}
		chunks = append(chunks, domain.Chunk{Index: len(chunks), Text: part})
	}
	return &Corpus{chunks: chunks}
}

// Chunks returns the corpus chunks in original order. Callers must not
// modify the returned slice.
func (c *Corpus) Chunks() []domain.Chunk {
	return c.chunks
}

// Len returns the number of chunks.
func (c *Corpus) Len() int {
	return len(c.chunks)
}
