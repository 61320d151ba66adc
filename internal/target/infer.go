package target

import "github.com/scarff-dev/scarff/pkg/models"

// Inference is pure and forward-only: each rule may read only fields earlier
// in the resolution order. Every inferred value is re-checked against the
// compatibility tables by the builder, the same as a user-supplied value.

// InferKind returns the default project kind for a language.
func InferKind(lang models.Language) (models.ProjectKind, bool) {
	switch lang {
	case models.LanguageRust:
		return models.KindCLI, true
	case models.LanguagePython:
		return models.KindWebBackend, true
	case models.LanguageTypeScript:
		return models.KindWebFrontend, true
	}
	return "", false
}

// InferFramework returns the default framework for a language and kind.
// Kinds that do not require a framework have no default; the second return
// value is false and the target carries none.
func InferFramework(lang models.Language, kind models.ProjectKind) (models.Framework, bool) {
	switch lang {
	case models.LanguageRust:
		if kind == models.KindWebBackend {
			return models.FrameworkAxum, true
		}
	case models.LanguagePython:
		switch kind {
		case models.KindWebBackend:
			return models.FrameworkFastAPI, true
		case models.KindFullstack:
			return models.FrameworkDjango, true
		}
	case models.LanguageTypeScript:
		switch kind {
		case models.KindWebBackend:
			return models.FrameworkExpress, true
		case models.KindWebFrontend:
			return models.FrameworkReact, true
		case models.KindFullstack:
			return models.FrameworkNextJS, true
		}
	}
	return "", false
}

// InferArchitecture returns the default architecture for a resolved
// language, kind, and framework. There is exactly one default per
// combination, never a ranked list.
func InferArchitecture(lang models.Language, kind models.ProjectKind, fw models.Framework) (models.Architecture, bool) {
	if lang == models.LanguagePython && kind == models.KindFullstack && fw == models.FrameworkDjango {
		return models.ArchMVC, true
	}
	if ArchitectureCompatible(models.ArchLayered, lang, kind, fw) {
		return models.ArchLayered, true
	}
	return "", false
}
