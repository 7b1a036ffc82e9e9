package service

import (
	"sort"
	"strings"

	"github.com/ilomad/portfolio-assistant/internal/domain"
)

const (
	termMatchPoints    = 3
	termRepeatPoints   = 2
	sectionBonusPoints = 5
)

// Category markers used by the last-resort fallback when nothing scores.
var fallbackMarkers = []string{"competence", "technologie"}

// KeywordSearcher ranks corpus chunks by synonym-expanded term overlap. It
// holds no mutable state and is safe for concurrent use.
type KeywordSearcher struct {
	chunks []domain.Chunk
}

// NewKeywordSearcher creates a searcher over the given corpus chunks.
func NewKeywordSearcher(chunks []domain.Chunk) *KeywordSearcher {
	return &KeywordSearcher{chunks: chunks}
}

// Rank scores every chunk against the expanded term set of the query and
// returns at most k chunks, best first, stable on corpus order for ties.
// For a non-empty corpus the result is never empty: when nothing scores the
// searcher degrades to category-marker matches, then to the first k chunks
// in corpus order. Scores in that branch are zero and callers must not
// assume relevance.
func (s *KeywordSearcher) Rank(query string, k int) []domain.ScoredChunk {
	if k <= 0 || len(s.chunks) == 0 {
		return nil
	}

	terms := ExpandTerms(query)
	// The section bonus keys on raw query tokens, unfiltered: the length
	// cutoff only applies to synonym expansion.
	queryTokens := normalizedTokens(query)

	scored := make([]domain.ScoredChunk, 0, len(s.chunks))
	for _, chunk := range s.chunks {
		normalizedDoc := Normalize(chunk.Text)

		score := 0
		for _, term := range terms {
			occurrences := strings.Count(normalizedDoc, term)
			if occurrences == 0 {
				continue
			}
			score += termMatchPoints + termRepeatPoints*(occurrences-1)
		}

		if chunk.HasSection() && containsAny(normalizedDoc, queryTokens) {
			score += sectionBonusPoints
		}

		if score > 0 {
			scored = append(scored, domain.ScoredChunk{Chunk: chunk, Score: float64(score)})
		}
	}

	if len(scored) == 0 {
		return s.fallback(query, k)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}

// Context renders a ranked result as a blank-line-joined context block.
func (s *KeywordSearcher) Context(query string, k int) string {
	ranked := s.Rank(query, k)
	texts := make([]string, len(ranked))
	for i, sc := range ranked {
		texts[i] = sc.Chunk.Text
	}
	return strings.Join(texts, "\n\n")
}

func (s *KeywordSearcher) fallback(query string, k int) []domain.ScoredChunk {
	if genericSkillVocab.MatchString(Normalize(query)) {
		var out []domain.ScoredChunk
		for _, chunk := range s.chunks {
			if !containsAny(Normalize(chunk.Text), fallbackMarkers) {
				continue
			}
			out = append(out, domain.ScoredChunk{Chunk: chunk})
			if len(out) == k {
				return out
			}
		}
		if len(out) > 0 {
			return out
		}
	}

	// Last resort: first k chunks in corpus order, unranked.
	n := k
	if n > len(s.chunks) {
		n = len(s.chunks)
	}
	out := make([]domain.ScoredChunk, n)
	for i := 0; i < n; i++ {
		out[i] = domain.ScoredChunk{Chunk: s.chunks[i]}
	}
	return out
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
