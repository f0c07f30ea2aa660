// Package i18n holds the static message catalogs. Decision logic works on Keys;
// text is looked up only when a result is rendered, so switching language never
// changes a classification.
package i18n

import (
	"fmt"
	"sort"
	"strings"

	"github.com/senior-care-guide/internal/domain"
)

// Key identifies one translatable message.
type Key string

// Language is a two-letter language code.
type Language string

const (
	English Language = "en"
	Chinese Language = "zh"
)

// DefaultLanguage is used when nothing (or something unusable) is stored.
const DefaultLanguage = English

var catalogs = map[Language]map[Key]string{
	English: english,
	Chinese: chinese,
}

// IsSupported reports whether a catalog exists for the language.
func (l Language) IsSupported() bool {
	_, ok := catalogs[l]
	return ok
}

// String returns the language code.
func (l Language) String() string {
	return string(l)
}

// ParseLanguage normalizes a code ("EN", " zh ") and rejects unsupported ones.
func ParseLanguage(code string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	if !lang.IsSupported() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, code)
	}
	return lang, nil
}

// LanguageOrDefault is ParseLanguage with the default substituted for anything unusable.
func LanguageOrDefault(code string) Language {
	lang, err := ParseLanguage(code)
	if err != nil {
		return DefaultLanguage
	}
	return lang
}

// Supported lists the available languages in a stable order.
func Supported() []Language {
	langs := make([]Language, 0, len(catalogs))
	for l := range catalogs {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

// Translate returns the text for key, falling back to English and then to the key itself.
func Translate(lang Language, key Key) string {
	if text, ok := catalogs[lang][key]; ok {
		return text
	}
	if text, ok := english[key]; ok {
		return text
	}
	return string(key)
}

// TranslateAll maps keys to text, preserving order.
func TranslateAll(lang Language, keys []Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = Translate(lang, k)
	}
	return out
}

// Catalog returns a copy of the full table for lang, keyed by message key,
// for UIs that render their own chrome.
func Catalog(lang Language) (map[string]string, error) {
	table, ok := catalogs[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, lang)
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[string(k)] = v
	}
	return out, nil
}

// CarePathLabel returns the localized name of a care path.
func CarePathLabel(lang Language, path domain.CarePath) string {
	switch path {
	case domain.CarePathLongTermCare:
		return Translate(lang, KeyLongTermCare)
	case domain.CarePathRetirementHome:
		return Translate(lang, KeyRetirementHome)
	default:
		return Translate(lang, KeyHomeCare)
	}
}
