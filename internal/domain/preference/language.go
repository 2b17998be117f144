package preference

import (
	"strings"
	"unicode/utf8"
)

// Language is a UI language supported by the site.
type Language string

const (
	LanguageKZ Language = "kz"
	LanguageRU Language = "ru"

	DefaultLanguage = LanguageKZ
)

func SupportedLanguages() []Language {
	return []Language{LanguageKZ, LanguageRU}
}

func (l Language) String() string {
	return string(l)
}

func (l Language) Valid() bool {
	switch l {
	case LanguageKZ, LanguageRU:
		return true
	default:
		return false
	}
}

// NormalizeLanguage trims, lowercases and keeps the first two characters of
// raw, returning the language when it is supported.
func NormalizeLanguage(raw string) (Language, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if utf8.RuneCountInString(value) > 2 {
		runes := []rune(value)
		value = string(runes[:2])
	}
	lang := Language(value)
	if !lang.Valid() {
		return "", false
	}
	return lang, true
}

// LanguageOrDefault normalizes raw or falls back to DefaultLanguage.
func LanguageOrDefault(raw string) Language {
	if lang, ok := NormalizeLanguage(raw); ok {
		return lang
	}
	return DefaultLanguage
}
