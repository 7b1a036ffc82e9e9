package service

import "github.com/ilomad/portfolio-assistant/internal/domain"

// Fixed keyword lexicons, stored pre-normalized (lower-case, no diacritics)
// so they compare directly against Normalize output.
var (
	malagasyLexicon = lexicon(
		"ahoana", "inona", "iza", "aiza", "firy", "manao", "tena", "tsara",
		"mazoto", "afaka", "miarahaba", "miala", "azafady", "misaotra",
		"manambady", "ve", "izy",
	)
	englishLexicon = lexicon(
		"what", "how", "where", "when", "why", "who", "can", "do", "does",
		"is", "are", "hello", "hi", "skill", "skills", "capable", "good",
		"expert",
	)
	frenchLexicon = lexicon(
		"bonjour", "salut", "comment", "quoi", "qui", "ou", "quand",
		"pourquoi", "peux", "peut", "est", "sont", "competence", "capacite",
		"doue", "capable",
	)
)

func lexicon(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// DetectLanguage scores the question's tokens against the three lexicons and
// returns the best-scoring language. Malagasy wins only when it strictly
// beats both others; English must strictly beat French; everything else
// defaults to French. Never fails.
func DetectLanguage(text string) domain.Language {
	var mgScore, enScore, frScore int
	for _, token := range normalizedTokens(text) {
		if _, ok := malagasyLexicon[token]; ok {
			mgScore++
		}
		if _, ok := englishLexicon[token]; ok {
			enScore++
		}
		if _, ok := frenchLexicon[token]; ok {
			frScore++
		}
	}

	if mgScore > enScore && mgScore > frScore {
		return domain.LanguageMalagasy
	}
	if enScore > frScore {
		return domain.LanguageEnglish
	}
	return domain.LanguageFrench
}
