package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ilomad/portfolio-assistant/internal/domain"
)

func TestDetectLanguage_French(t *testing.T) {
	assert.Equal(t, domain.LanguageFrench, DetectLanguage("Bonjour, comment allez-vous ?"))
	assert.Equal(t, domain.LanguageFrench, DetectLanguage("Pourquoi est-il doué ?"))
}

func TestDetectLanguage_English(t *testing.T) {
	assert.Equal(t, domain.LanguageEnglish, DetectLanguage("What are his skills?"))
	assert.Equal(t, domain.LanguageEnglish, DetectLanguage("How good is he? Is he an expert?"))
}

func TestDetectLanguage_Malagasy(t *testing.T) {
	assert.Equal(t, domain.LanguageMalagasy, DetectLanguage("Manao ahoana ianao?"))
	assert.Equal(t, domain.LanguageMalagasy, DetectLanguage("Inona no fahaizany? Tena mazoto ve izy?"))
}

func TestDetectLanguage_DefaultsToFrench(t *testing.T) {
	// No lexicon hits at all.
	assert.Equal(t, domain.LanguageFrench, DetectLanguage("React TypeScript NestJS"))
	assert.Equal(t, domain.LanguageFrench, DetectLanguage(""))
}

func TestDetectLanguage_TieGoesToFrench(t *testing.T) {
	// "capable" sits in both the English and French lexicons; an exact tie
	// must resolve to French.
	assert.Equal(t, domain.LanguageFrench, DetectLanguage("capable"))
}

func TestDetectLanguage_MalagasyNeedsStrictWin(t *testing.T) {
	// One Malagasy hit against one English hit is not a strict win.
	assert.NotEqual(t, domain.LanguageMalagasy, DetectLanguage("ve hello"))
}
