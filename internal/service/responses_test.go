package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilomad/portfolio-assistant/internal/domain"
)

func TestLoadResponseBank_Complete(t *testing.T) {
	bank, err := LoadResponseBank()
	require.NoError(t, err)

	intents := []domain.Intent{
		domain.IntentGreeting, domain.IntentSkills, domain.IntentCapabilities,
		domain.IntentTechPreference, domain.IntentRoleFit,
		domain.IntentExperience, domain.IntentOutOfScope, domain.IntentFollowUp,
	}
	languages := []domain.Language{
		domain.LanguageFrench, domain.LanguageEnglish, domain.LanguageMalagasy,
	}
	for _, intent := range intents {
		for _, lang := range languages {
			assert.NotEmpty(t, bank.Canned(intent, lang), "%s/%s", intent, lang)
		}
	}
	for _, lang := range languages {
		assert.NotEmpty(t, bank.Unknown(lang), "unknown/%s", lang)
	}
}

func TestResponseBank_Canned_MatchesLanguage(t *testing.T) {
	bank := MustLoadResponseBank()

	fr := bank.Canned(domain.IntentGreeting, domain.LanguageFrench)
	en := bank.Canned(domain.IntentGreeting, domain.LanguageEnglish)
	mg := bank.Canned(domain.IntentGreeting, domain.LanguageMalagasy)

	assert.Contains(t, fr, "Bonjour")
	assert.Contains(t, en, "Hello")
	assert.Contains(t, mg, "Miarahaba")
	assert.NotEqual(t, fr, en)
}

func TestResponseBank_FrenchFallbackForUnknownLanguage(t *testing.T) {
	bank := MustLoadResponseBank()

	fallback := bank.Canned(domain.IntentSkills, domain.Language("de"))
	assert.Equal(t, bank.Canned(domain.IntentSkills, domain.LanguageFrench), fallback)

	assert.Equal(t, bank.Unknown(domain.LanguageFrench), bank.Unknown(domain.Language("de")))
}

func TestResponseBank_Prefixes(t *testing.T) {
	bank := MustLoadResponseBank()

	for _, category := range []string{CategoryContact, CategoryProjects, CategoryExperience, CategoryDefault} {
		for _, lang := range []domain.Language{domain.LanguageFrench, domain.LanguageEnglish, domain.LanguageMalagasy} {
			assert.NotEmpty(t, bank.Prefix(category, lang), "%s/%s", category, lang)
		}
	}

	assert.Empty(t, bank.Prefix("nonexistent", domain.LanguageFrench))
}

func TestResponseBank_OutOfScopeKeepsHistoricalText(t *testing.T) {
	bank := MustLoadResponseBank()

	fr := bank.Canned(domain.IntentOutOfScope, domain.LanguageFrench)
	assert.Contains(t, fr, "Désolé, je ne peux répondre qu'aux questions concernant le portfolio professionnel de Sarobidy FIFALIANTSOA.")
	assert.Contains(t, fr, "• Ses compétences techniques et savoir-faire")

	en := bank.Canned(domain.IntentOutOfScope, domain.LanguageEnglish)
	assert.Contains(t, en, "Sorry, I can only answer questions about Sarobidy FIFALIANTSOA's professional portfolio.")
}
