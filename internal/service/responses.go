package service

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ilomad/portfolio-assistant/internal/domain"
)

//go:embed responses.yaml
var responsesYAML []byte

// Fallback template categories.
const (
	CategoryContact    = "contact"
	CategoryProjects   = "projects"
	CategoryExperience = "experience"
	CategoryDefault    = "default"
)

// ResponseBank holds the pre-written multilingual answers: one canned string
// per recognized intent and language, category prefixes for the templated
// fallback, and the generic unknown string. Read-only after Load.
type ResponseBank struct {
	canned   map[string]map[string]string
	prefixes map[string]map[string]string
	unknown  map[string]string
}

type responsesFile struct {
	Canned   map[string]map[string]string `yaml:"canned"`
	Unknown  map[string]string            `yaml:"unknown"`
	Prefixes map[string]map[string]string `yaml:"prefixes"`
}

// LoadResponseBank parses the embedded response bank and validates that
// every recognized intent carries all three languages.
func LoadResponseBank() (*ResponseBank, error) {
	var file responsesFile
	if err := yaml.Unmarshal(responsesYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse response bank: %w", err)
	}

	bank := &ResponseBank{
		canned:   file.Canned,
		prefixes: file.Prefixes,
		unknown:  file.Unknown,
	}

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
			if bank.Canned(intent, lang) == "" {
				return nil, fmt.Errorf("response bank is missing %s/%s", intent, lang)
			}
		}
	}
	for _, lang := range languages {
		if bank.Unknown(lang) == "" {
			return nil, fmt.Errorf("response bank is missing unknown/%s", lang)
		}
	}

	return bank, nil
}

// MustLoadResponseBank panics when the embedded bank is invalid; the bank is
// a compile-time asset, so that is a programming error.
func MustLoadResponseBank() *ResponseBank {
	bank, err := LoadResponseBank()
	if err != nil {
		panic(err)
	}
	return bank
}

// Canned returns the pre-written answer for an intent and language, falling
// back to French when the language entry is absent.
func (b *ResponseBank) Canned(intent domain.Intent, lang domain.Language) string {
	return pick(b.canned[string(intent)], lang)
}

// Prefix returns the templated-fallback prefix for a category and language.
func (b *ResponseBank) Prefix(category string, lang domain.Language) string {
	return pick(b.prefixes[category], lang)
}

// Unknown returns the generic "I don't have that information" string.
func (b *ResponseBank) Unknown(lang domain.Language) string {
	if s, ok := b.unknown[string(lang)]; ok {
		return s
	}
	return b.unknown[string(domain.DefaultLanguage)]
}

func pick(entries map[string]string, lang domain.Language) string {
	if entries == nil {
		return ""
	}
	if s, ok := entries[string(lang)]; ok {
		return s
	}
	return entries[string(domain.DefaultLanguage)]
}
