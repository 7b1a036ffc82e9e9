package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandTerms_PullsInSynonyms(t *testing.T) {
	terms := ExpandTerms("compétences")

	assert.Contains(t, terms, "competences")
	assert.Contains(t, terms, "skill")
	assert.Contains(t, terms, "expert")
	assert.Contains(t, terms, "competence")
}

func TestExpandTerms_KeepsOriginalTokens(t *testing.T) {
	// No table entry matches; the token passes through alone.
	assert.Equal(t, []string{"react"}, ExpandTerms("React"))
}

func TestExpandTerms_DropsShortTokens(t *testing.T) {
	assert.Empty(t, ExpandTerms("et de la"))
}

func TestExpandTerms_ProjectVocabulary(t *testing.T) {
	terms := ExpandTerms("Ses projets récents")

	assert.Contains(t, terms, "projets")
	assert.Contains(t, terms, "realisation")
	assert.Contains(t, terms, "work")
	assert.Contains(t, terms, "recents")
}

func TestExpandTerms_NoDuplicates(t *testing.T) {
	terms := ExpandTerms("expérience expérience années")

	seen := make(map[string]int)
	for _, term := range terms {
		seen[term]++
	}
	for term, count := range seen {
		assert.Equal(t, 1, count, "term %q appears %d times", term, count)
	}
}

func TestExpandTerms_FirstSeenOrderStable(t *testing.T) {
	terms := ExpandTerms("contact email")

	assert.Equal(t, "contact", terms[0])
	assert.Contains(t, terms, "telephone")
}
