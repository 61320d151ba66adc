package target

import "github.com/scarff-dev/scarff/pkg/models"

// The compatibility tables below are the single source of truth for which
// combinations exist. Absence from a table means incompatible; there is no
// fallback rule.

// languageKinds lists the project kinds each language can scaffold.
var languageKinds = map[models.Language][]models.ProjectKind{
	models.LanguageRust: {
		models.KindCLI,
		models.KindWebBackend,
		models.KindWorker,
	},
	models.LanguagePython: {
		models.KindCLI,
		models.KindWebBackend,
		models.KindFullstack,
		models.KindWorker,
	},
	models.LanguageTypeScript: {
		models.KindWebFrontend,
		models.KindWebBackend,
		models.KindFullstack,
		models.KindWorker,
	},
}

// frameworkRow is one licensed (framework, language, kind) combination.
type frameworkRow struct {
	fw   models.Framework
	lang models.Language
	kind models.ProjectKind
}

var frameworkRows = []frameworkRow{
	{models.FrameworkAxum, models.LanguageRust, models.KindWebBackend},
	{models.FrameworkActix, models.LanguageRust, models.KindWebBackend},
	{models.FrameworkFastAPI, models.LanguagePython, models.KindWebBackend},
	{models.FrameworkDjango, models.LanguagePython, models.KindFullstack},
	{models.FrameworkExpress, models.LanguageTypeScript, models.KindWebBackend},
	{models.FrameworkNestJS, models.LanguageTypeScript, models.KindWebBackend},
	{models.FrameworkReact, models.LanguageTypeScript, models.KindWebFrontend},
	{models.FrameworkVue, models.LanguageTypeScript, models.KindWebFrontend},
	{models.FrameworkNextJS, models.LanguageTypeScript, models.KindFullstack},
}

// archRow is one licensed (architecture, language, kind, framework)
// combination. A zero framework means the combination carries no framework.
type archRow struct {
	arch models.Architecture
	lang models.Language
	kind models.ProjectKind
	fw   models.Framework
}

var archRows = []archRow{
	{models.ArchLayered, models.LanguageRust, models.KindCLI, ""},
	{models.ArchLayered, models.LanguageRust, models.KindWorker, ""},
	{models.ArchLayered, models.LanguageRust, models.KindWebBackend, models.FrameworkAxum},
	{models.ArchLayered, models.LanguageRust, models.KindWebBackend, models.FrameworkActix},
	{models.ArchLayered, models.LanguagePython, models.KindCLI, ""},
	{models.ArchLayered, models.LanguagePython, models.KindWorker, ""},
	{models.ArchLayered, models.LanguagePython, models.KindWebBackend, models.FrameworkFastAPI},
	{models.ArchLayered, models.LanguageTypeScript, models.KindWorker, ""},
	{models.ArchLayered, models.LanguageTypeScript, models.KindWebBackend, models.FrameworkExpress},
	{models.ArchLayered, models.LanguageTypeScript, models.KindWebBackend, models.FrameworkNestJS},
	{models.ArchLayered, models.LanguageTypeScript, models.KindWebFrontend, models.FrameworkReact},
	{models.ArchLayered, models.LanguageTypeScript, models.KindWebFrontend, models.FrameworkVue},
	{models.ArchLayered, models.LanguageTypeScript, models.KindFullstack, models.FrameworkNextJS},

	{models.ArchMVC, models.LanguagePython, models.KindFullstack, models.FrameworkDjango},

	{models.ArchClean, models.LanguageRust, models.KindWebBackend, models.FrameworkAxum},
	{models.ArchClean, models.LanguageRust, models.KindWebBackend, models.FrameworkActix},
	{models.ArchClean, models.LanguagePython, models.KindWebBackend, models.FrameworkFastAPI},
	{models.ArchClean, models.LanguageTypeScript, models.KindWebBackend, models.FrameworkNestJS},
}

// KindSupportsLanguage reports whether the language can scaffold the kind.
func KindSupportsLanguage(kind models.ProjectKind, lang models.Language) bool {
	for _, k := range languageKinds[lang] {
		if k == kind {
			return true
		}
	}
	return false
}

// FrameworkCompatible reports whether the framework serves the given
// language and kind.
func FrameworkCompatible(fw models.Framework, lang models.Language, kind models.ProjectKind) bool {
	for _, row := range frameworkRows {
		if row.fw == fw && row.lang == lang && row.kind == kind {
			return true
		}
	}
	return false
}

// ArchitectureCompatible reports whether the architecture is licensed for
// the combination. fw is zero when the target carries no framework.
func ArchitectureCompatible(arch models.Architecture, lang models.Language, kind models.ProjectKind, fw models.Framework) bool {
	for _, row := range archRows {
		if row.arch == arch && row.lang == lang && row.kind == kind && row.fw == fw {
			return true
		}
	}
	return false
}

// architecturePossible reports whether any table row could still license
// the architecture given a partially known target. A zero kind or fw is a
// field not decided yet and matches any row, unlike ArchitectureCompatible
// where a zero fw means the target carries no framework.
func architecturePossible(arch models.Architecture, lang models.Language, kind models.ProjectKind, fw models.Framework) bool {
	for _, row := range archRows {
		if row.arch != arch || row.lang != lang {
			continue
		}
		if kind != "" && row.kind != kind {
			continue
		}
		if fw != "" && row.fw != fw {
			continue
		}
		return true
	}
	return false
}
