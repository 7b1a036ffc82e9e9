package service

import (
	"regexp"
	"strings"

	"github.com/ilomad/portfolio-assistant/internal/domain"
)

var (
	greetingRe = regexp.MustCompile(`\b(bonjour|salut|coucou|bonsoir|hello|hi|hey|good (morning|afternoon|evening)|miarahaba|manao ahoana|manahoana)\b`)

	skillsRe = regexp.MustCompile(`\b(competences?|skills?|savoir faire|technologies?|outils?|maitrise|fahaizana?)\b`)

	techPreferenceRe = regexp.MustCompile(`(langage (de programmation )?(prefere|favori)|meilleur langage|langage .*(fort|maitrise le mieux)|favou?rite (programming )?language|strongest (programming )?language|best language|fiteny fandaharana tiany)`)

	experienceVocabRe = regexp.MustCompile(`(experiences?|annees? d experience|years? of experience|\bannees?\b|\bans\b|\byears?\b|traikefa|combien .*ans|how many years)`)
	intensifierRe     = regexp.MustCompile(`\b(vraiment|exactement|precisement|really|exactly|truly|tena|marina)\b`)

	roleVocabRe       = regexp.MustCompile(`(front ?end|back ?end|full ?stack)`)
	rolePreferenceRe  = regexp.MustCompile(`\b(prefere|plutot|mieux|prefer|rather|better|more|aleony)\b`)
	capabilitiesRe    = regexp.MustCompile(`(\bcapable\b|capabilities|capacites?|savoir faire|good at|doue(s)? (en|pour)|is he good|est il bon|mahay ve|\bafaka\b)`)
	personalTopicsRe  = regexp.MustCompile(`\b(maries?|mariees?|married|marry|spouse|wife|husband|conjointe?|manambady|fils|filles?|enfants?|child|children|son|daughter|zaza|zanaka|age|old|taona|famille|family|parents|meres?|peres?|mother|father|ray|reny|adresse|address|domicile|residence|toerana|salaires?|salary|revenus?|income|karama|hobby|hobbies|loisirs?|passe temps|fialamboly|meteo|weather|actualites?|news|politique|sport|cuisine|recettes?|films?|movie|musique|music|livres?|book)\b`)
	followUpTokens    = map[string]struct{}{"and": {}, "et": {}, "ary": {}}
	genericSkillVocab = regexp.MustCompile(`(competence|skill|technolog|outil|tool|savoir|fahaiza)`)
)

// intentRule pairs a predicate with the intent it recognizes. Rules run in
// declaration order with early exit; the order resolves ambiguity (a
// question matching both experience and personal vocabulary is experience,
// never out-of-scope).
type intentRule struct {
	intent domain.Intent
	match  func(normalized, original string) bool
}

var intentRules = []intentRule{
	{domain.IntentGreeting, func(n, _ string) bool {
		return greetingRe.MatchString(n)
	}},
	{domain.IntentSkills, func(n, _ string) bool {
		return skillsRe.MatchString(n)
	}},
	{domain.IntentTechPreference, func(n, _ string) bool {
		return techPreferenceRe.MatchString(n)
	}},
	{domain.IntentExperience, func(n, _ string) bool {
		return experienceVocabRe.MatchString(n) && intensifierRe.MatchString(n)
	}},
	{domain.IntentRoleFit, func(n, _ string) bool {
		return roleVocabRe.MatchString(n) && rolePreferenceRe.MatchString(n)
	}},
	{domain.IntentCapabilities, func(n, _ string) bool {
		return capabilitiesRe.MatchString(n)
	}},
	{domain.IntentFollowUp, func(n, _ string) bool {
		_, ok := followUpTokens[strings.TrimSpace(n)]
		return ok
	}},
	{domain.IntentOutOfScope, func(n, original string) bool {
		if experienceVocabRe.MatchString(n) {
			return false
		}
		return personalTopicsRe.MatchString(n) || personalTopicsRe.MatchString(strings.ToLower(original))
	}},
}

// ClassifyIntent applies the ordered rule list to the question. The first
// matching rule wins; with no match the original question is passed through
// unchanged for retrieval.
func ClassifyIntent(text string) domain.Classification {
	normalized := Normalize(text)
	for _, rule := range intentRules {
		if rule.match(normalized, text) {
			return domain.Classification{Intent: rule.intent, Query: text}
		}
	}
	return domain.Classification{Intent: domain.IntentNone, Query: text}
}
