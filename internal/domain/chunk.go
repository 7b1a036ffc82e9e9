package domain

import "strings"

// Chunk is an immutable block of the static knowledge corpus, split at
// section boundaries. Index is the chunk's position in the original corpus
// and serves as the stable tie-break during ranking.
type Chunk struct {
	Index int
	Text  string
}

// SectionTitle returns the chunk's first "##" heading line without the
// marker, or "" when the chunk has no heading.
func (c Chunk) SectionTitle() string {
	_, after, found := strings.Cut(c.Text, "##")
	if !found {
		return ""
	}
	title, _, _ := strings.Cut(after, "\n")
	return strings.TrimSpace(title)
}

// HasSection reports whether the chunk carries a section heading marker.
func (c Chunk) HasSection() bool {
	return strings.Contains(c.Text, "##")
}

// ScoredChunk pairs a chunk with its ranking score. Keyword scores are
// non-negative integers widened to float64; semantic scores are cosine
// similarities in [-1, 1].
type ScoredChunk struct {
	Chunk Chunk
	Score float64
}
