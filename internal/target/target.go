package target

import (
	"fmt"

	"github.com/scarff-dev/scarff/pkg/models"
)

// Target is a fully resolved scaffolding target. Every Target produced by a
// Builder satisfies the compatibility tables; the Framework field is zero
// when the kind does not carry one.
type Target struct {
	Language     models.Language
	Kind         models.ProjectKind
	Framework    models.Framework
	Architecture models.Architecture
}

// HasFramework reports whether the target carries a framework.
func (t Target) HasFramework() bool { return t.Framework != "" }

// String renders the target as language/kind[/framework]/architecture.
func (t Target) String() string {
	if t.HasFramework() {
		return fmt.Sprintf("%s/%s/%s/%s", t.Language, t.Kind, t.Framework, t.Architecture)
	}
	return fmt.Sprintf("%s/%s/%s", t.Language, t.Kind, t.Architecture)
}

// Common targets, equivalent to resolving the language with the named hints.

// RustCLI is the default rust target.
func RustCLI() Target {
	return Target{
		Language:     models.LanguageRust,
		Kind:         models.KindCLI,
		Architecture: models.ArchLayered,
	}
}

// RustBackendAxum is a rust web backend on axum.
func RustBackendAxum() Target {
	return Target{
		Language:     models.LanguageRust,
		Kind:         models.KindWebBackend,
		Framework:    models.FrameworkAxum,
		Architecture: models.ArchLayered,
	}
}

// PythonBackendFastAPI is the default python target.
func PythonBackendFastAPI() Target {
	return Target{
		Language:     models.LanguagePython,
		Kind:         models.KindWebBackend,
		Framework:    models.FrameworkFastAPI,
		Architecture: models.ArchLayered,
	}
}

// TypeScriptFrontendReact is the default typescript target.
func TypeScriptFrontendReact() Target {
	return Target{
		Language:     models.LanguageTypeScript,
		Kind:         models.KindWebFrontend,
		Framework:    models.FrameworkReact,
		Architecture: models.ArchLayered,
	}
}
