package template

import (
	"strings"

	"github.com/scarff-dev/scarff/internal/target"
	"github.com/scarff-dev/scarff/pkg/models"
)

// Matcher selects the targets a template applies to. A zero field is a
// wildcard and matches anything, including a target that carries no
// framework. A fully zero Matcher matches every target.
type Matcher struct {
	Language     models.Language
	Kind         models.ProjectKind
	Framework    models.Framework
	Architecture models.Architecture
}

// Matches reports whether every constrained field equals the target's.
func (m Matcher) Matches(t target.Target) bool {
	if m.Language != "" && m.Language != t.Language {
		return false
	}
	if m.Kind != "" && m.Kind != t.Kind {
		return false
	}
	if m.Framework != "" && m.Framework != t.Framework {
		return false
	}
	if m.Architecture != "" && m.Architecture != t.Architecture {
		return false
	}
	return true
}

// Specificity counts constrained fields. A template constraining more
// fields wins resolution over one constraining fewer.
func (m Matcher) Specificity() int {
	n := 0
	if m.Language != "" {
		n++
	}
	if m.Kind != "" {
		n++
	}
	if m.Framework != "" {
		n++
	}
	if m.Architecture != "" {
		n++
	}
	return n
}

// String renders the matcher with * for wildcards, for listings.
func (m Matcher) String() string {
	field := func(s string) string {
		if s == "" {
			return "*"
		}
		return s
	}
	return strings.Join([]string{
		field(m.Language.String()),
		field(m.Kind.String()),
		field(m.Framework.String()),
		field(m.Architecture.String()),
	}, "/")
}
