package service

import "strings"

// synonymTable maps a canonical key to its curated synonyms. Entries are
// pre-normalized. The table is read-only after initialization.
var synonymTable = map[string][]string{
	"competence": {
		"competence", "competences", "savoir", "sait", "technologie",
		"technologies", "skill", "skills", "doue", "bon en", "expert",
		"expertise", "capable", "capacite", "capacites",
	},
	"projet": {
		"projet", "projets", "travail", "travaux", "realisation",
		"realisations", "work", "works",
	},
	"contact": {
		"contact", "contacter", "email", "mail", "telephone", "phone",
		"adresse", "address",
	},
	"experience": {
		"experience", "experiences", "annee", "annees", "ans", "carriere",
		"year", "years", "travaille", "travail", "entreprise", "entreprises",
	},
	"diplome": {
		"diplome", "diplomes", "formation", "formations", "education",
		"parcours", "academique",
	},
	"technologie": {
		"technologie", "technologies", "tech", "outil", "outils", "langage",
		"langages", "framework", "frameworks",
	},
}

// minTermLength filters out stop-word-sized tokens before expansion.
const minTermLength = 3

// ExpandTerms tokenizes the query and enlarges the term set through the
// synonym table. Expansion is purely additive: original tokens are always
// kept, and a token that matches a table entry (or contains a canonical key)
// pulls in every synonym plus the key itself. Duplicates are collapsed;
// insertion order is preserved.
func ExpandTerms(query string) []string {
	var terms []string
	seen := make(map[string]struct{})
	add := func(term string) {
		if _, ok := seen[term]; ok {
			return
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}

	for _, token := range normalizedTokens(query) {
		if len(token) < minTermLength {
			continue
		}
		add(token)

		for key, entries := range synonymTable {
			if !matchesSynonymEntry(token, key, entries) {
				continue
			}
			for _, syn := range entries {
				add(syn)
			}
			add(key)
		}
	}

	return terms
}

func matchesSynonymEntry(token, key string, entries []string) bool {
	if strings.Contains(token, key) {
		return true
	}
	for _, syn := range entries {
		if syn == token {
			return true
		}
	}
	return false
}
