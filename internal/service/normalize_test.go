package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LowercasesAndStripsAccents(t *testing.T) {
	assert.Equal(t, "ete", Normalize("Été"))
	assert.Equal(t, "experience professionnelle", Normalize("Expérience Professionnelle"))
	assert.Equal(t, "competences", Normalize("Compétences"))
}

func TestNormalize_ReplacesPunctuationWithSpaces(t *testing.T) {
	assert.Equal(t, "c est l experience ", Normalize("C'est l'expérience!"))
	assert.Equal(t, "   titre", Normalize("## Titre"))
}

func TestNormalize_KeepsDigits(t *testing.T) {
	assert.Equal(t, "4 ans d experience", Normalize("4 ans d'expérience"))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Quelles sont ses compétences ?",
		"Manao ahoana ianao?",
		"## Expérience\n- React, Node.js",
		"",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input %q", input)
	}
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
}

func TestNormalizedTokens(t *testing.T) {
	tokens := normalizedTokens("Quelles sont ses compétences ?")
	assert.Equal(t, []string{"quelles", "sont", "ses", "competences"}, tokens)
}
