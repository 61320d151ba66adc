// Package target resolves a complete, always-valid scaffolding Target from a
// language plus optional hints. Compatibility is defined by enumerated
// tables; inference fills unset fields in fixed order (kind, framework,
// architecture), and inferred values pass through the same compatibility
// checks as user-supplied ones.
package target

import (
	"errors"
	"fmt"
)

// Sentinel errors for target resolution.
var (
	// ErrUnsupportedLanguage indicates a language outside the supported set.
	ErrUnsupportedLanguage = errors.New("target: unsupported language")

	// ErrUnsupportedKind indicates a project kind outside the supported set.
	ErrUnsupportedKind = errors.New("target: unsupported project kind")

	// ErrUnsupportedFramework indicates a framework outside the supported set.
	ErrUnsupportedFramework = errors.New("target: unsupported framework")

	// ErrUnsupportedArchitecture indicates an architecture outside the supported set.
	ErrUnsupportedArchitecture = errors.New("target: unsupported architecture")

	// ErrRetired indicates a value that parses for backward compatibility
	// but is no longer supported for new projects.
	ErrRetired = errors.New("target: value is no longer supported")

	// ErrKindLanguageMismatch indicates the project kind is not available
	// for the chosen language.
	ErrKindLanguageMismatch = errors.New("target: project kind not available for language")

	// ErrFrameworkLanguageMismatch indicates the framework belongs to a
	// different language.
	ErrFrameworkLanguageMismatch = errors.New("target: framework belongs to a different language")

	// ErrFrameworkKindMismatch indicates the framework does not serve the
	// chosen project kind.
	ErrFrameworkKindMismatch = errors.New("target: framework does not serve project kind")

	// ErrArchitectureMismatch indicates the architecture is incompatible
	// with the resolved language, kind, and framework.
	ErrArchitectureMismatch = errors.New("target: architecture incompatible with target")

	// ErrFrameworkRequired indicates the project kind cannot exist without
	// a framework and none was given or inferable.
	ErrFrameworkRequired = errors.New("target: project kind requires a framework")

	// ErrCannotInfer indicates no default exists for an unset field.
	ErrCannotInfer = errors.New("target: cannot infer a default value")
)

// ResolveError carries field context and actionable suggestions for a
// resolution failure.
type ResolveError struct {
	Field       string
	Message     string
	Value       any
	Suggestions []string
	Wrapped     error // underlying sentinel error for errors.Is support
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("resolve error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("resolve error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ResolveError) Unwrap() error {
	return e.Wrapped
}
