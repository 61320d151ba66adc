package models

import "strings"

// Language is the programming language of a scaffolded project.
type Language string

const (
	LanguageRust       Language = "rust"
	LanguagePython     Language = "python"
	LanguageTypeScript Language = "typescript"
)

// languageAliases maps accepted spellings to canonical values.
var languageAliases = map[string]Language{
	"rust":       LanguageRust,
	"rs":         LanguageRust,
	"python":     LanguagePython,
	"py":         LanguagePython,
	"typescript": LanguageTypeScript,
	"ts":         LanguageTypeScript,
}

// ParseLanguage parses a language name case-insensitively. Short aliases
// (rs, py, ts) are accepted. The second return value reports whether the
// input named a known language.
func ParseLanguage(s string) (Language, bool) {
	l, ok := languageAliases[strings.ToLower(strings.TrimSpace(s))]
	return l, ok
}

// String returns the canonical lowercase form.
func (l Language) String() string { return string(l) }

// Supported reports whether the language is actively supported.
// All recognized languages currently are.
func (l Language) Supported() bool {
	switch l {
	case LanguageRust, LanguagePython, LanguageTypeScript:
		return true
	}
	return false
}

// Languages returns all actively supported languages in display order.
func Languages() []Language {
	return []Language{LanguageRust, LanguagePython, LanguageTypeScript}
}
