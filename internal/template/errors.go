// Package template defines declarative project templates, the catalog that
// stores them, target matching, and rendering into a project structure.
package template

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for catalog and rendering operations.
var (
	// ErrInvalidID indicates a template identifier that does not follow
	// the name@version form.
	ErrInvalidID = errors.New("template: invalid template id, expected name@version")

	// ErrInvalidTemplate indicates a structurally invalid template.
	ErrInvalidTemplate = errors.New("template: invalid template")

	// ErrEmptyTree indicates a template whose tree declares nothing.
	ErrEmptyTree = errors.New("template: tree declares no files or directories")

	// ErrDuplicatePath indicates two tree nodes claiming the same path.
	ErrDuplicatePath = errors.New("template: duplicate path in tree")

	// ErrAbsolutePath indicates an absolute path in a tree node.
	ErrAbsolutePath = errors.New("template: absolute path in tree")

	// ErrTemplateNotFound indicates the requested template id is not in
	// the catalog.
	ErrTemplateNotFound = errors.New("template: template not found")

	// ErrNoMatch indicates no catalog template matches the target.
	ErrNoMatch = errors.New("template: no template matches target")

	// ErrAmbiguousMatch indicates multiple templates tie at the highest
	// specificity for a target.
	ErrAmbiguousMatch = errors.New("template: ambiguous match")

	// ErrExternalContent indicates a file references an external template
	// engine, which no engine is registered to handle.
	ErrExternalContent = errors.New("template: external content requires a registered engine")
)

// AmbiguityError reports a resolution tie. Candidates are sorted by id so
// the message is deterministic.
type AmbiguityError struct {
	Target     string
	Candidates []ID
}

// Error implements the error interface.
func (e *AmbiguityError) Error() string {
	ids := make([]string, len(e.Candidates))
	for i, id := range e.Candidates {
		ids[i] = id.String()
	}
	return fmt.Sprintf("ambiguous match for target %s: %d templates tie at highest specificity: %s",
		e.Target, len(e.Candidates), strings.Join(ids, ", "))
}

// Is supports errors.Is against ErrAmbiguousMatch.
func (e *AmbiguityError) Is(target error) bool {
	return target == ErrAmbiguousMatch
}
