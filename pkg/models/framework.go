package models

import "strings"

// Framework is a concrete web or application framework. Every framework
// belongs to exactly one language.
type Framework string

const (
	// Rust
	FrameworkAxum  Framework = "axum"
	FrameworkActix Framework = "actix"

	// Python
	FrameworkFastAPI Framework = "fastapi"
	FrameworkDjango  Framework = "django"
	// FrameworkFlask is retired: it parses for backward compatibility
	// but Supported() reports false.
	FrameworkFlask Framework = "flask"

	// TypeScript
	FrameworkExpress Framework = "express"
	FrameworkNestJS  Framework = "nestjs"
	FrameworkReact   Framework = "react"
	FrameworkVue     Framework = "vue"
	FrameworkNextJS  Framework = "nextjs"
)

var frameworkNames = map[string]Framework{
	"axum":    FrameworkAxum,
	"actix":   FrameworkActix,
	"fastapi": FrameworkFastAPI,
	"django":  FrameworkDjango,
	"flask":   FrameworkFlask,
	"express": FrameworkExpress,
	"nestjs":  FrameworkNestJS,
	"react":   FrameworkReact,
	"vue":     FrameworkVue,
	"nextjs":  FrameworkNextJS,
}

// frameworkLanguage is the owning-language projection.
var frameworkLanguage = map[Framework]Language{
	FrameworkAxum:    LanguageRust,
	FrameworkActix:   LanguageRust,
	FrameworkFastAPI: LanguagePython,
	FrameworkDjango:  LanguagePython,
	FrameworkFlask:   LanguagePython,
	FrameworkExpress: LanguageTypeScript,
	FrameworkNestJS:  LanguageTypeScript,
	FrameworkReact:   LanguageTypeScript,
	FrameworkVue:     LanguageTypeScript,
	FrameworkNextJS:  LanguageTypeScript,
}

// ParseFramework parses a framework name case-insensitively.
func ParseFramework(s string) (Framework, bool) {
	f, ok := frameworkNames[strings.ToLower(strings.TrimSpace(s))]
	return f, ok
}

// String returns the canonical lowercase form.
func (f Framework) String() string { return string(f) }

// Language returns the language this framework belongs to.
func (f Framework) Language() Language { return frameworkLanguage[f] }

// Supported reports whether the framework is actively supported.
// Flask is recognized but retired.
func (f Framework) Supported() bool {
	if f == FrameworkFlask {
		return false
	}
	_, known := frameworkLanguage[f]
	return known
}

// FrameworksFor returns the actively supported frameworks of a language,
// in display order.
func FrameworksFor(lang Language) []Framework {
	switch lang {
	case LanguageRust:
		return []Framework{FrameworkAxum, FrameworkActix}
	case LanguagePython:
		return []Framework{FrameworkFastAPI, FrameworkDjango}
	case LanguageTypeScript:
		return []Framework{FrameworkExpress, FrameworkNestJS, FrameworkReact, FrameworkVue, FrameworkNextJS}
	}
	return nil
}
