package domain

// Language identifies one of the three supported reply languages.
type Language string

const (
	LanguageFrench   Language = "fr"
	LanguageEnglish  Language = "en"
	LanguageMalagasy Language = "mg"
)

// DefaultLanguage is used when detection finds nothing better.
const DefaultLanguage = LanguageFrench

// ParseLanguage maps a request-supplied language code to a Language.
// The second return is false for unknown codes, including the empty string.
func ParseLanguage(code string) (Language, bool) {
	switch Language(code) {
	case LanguageFrench, LanguageEnglish, LanguageMalagasy:
		return Language(code), true
	}
	// Legacy clients send "mga" for Malagasy.
	if code == "mga" {
		return LanguageMalagasy, true
	}
	return "", false
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	switch l {
	case LanguageFrench, LanguageEnglish, LanguageMalagasy:
		return true
	}
	return false
}
