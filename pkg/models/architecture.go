package models

import "strings"

// Architecture is the structural style a template lays the project out in.
type Architecture string

const (
	ArchLayered Architecture = "layered"
	ArchMVC     Architecture = "mvc"
	ArchClean   Architecture = "clean"

	// Retired architectures. They parse so existing template definitions
	// stay readable, but Supported() reports false.
	ArchModular   Architecture = "modular"
	ArchAppRouter Architecture = "app-router"
)

var architectureAliases = map[string]Architecture{
	"layered":    ArchLayered,
	"mvc":        ArchMVC,
	"clean":      ArchClean,
	"modular":    ArchModular,
	"app-router": ArchAppRouter,
	"approuter":  ArchAppRouter,
}

// ParseArchitecture parses an architecture name case-insensitively.
func ParseArchitecture(s string) (Architecture, bool) {
	a, ok := architectureAliases[strings.ToLower(strings.TrimSpace(s))]
	return a, ok
}

// String returns the canonical lowercase form.
func (a Architecture) String() string { return string(a) }

// Supported reports whether the architecture is actively supported.
func (a Architecture) Supported() bool {
	switch a {
	case ArchLayered, ArchMVC, ArchClean:
		return true
	}
	return false
}

// Architectures returns all actively supported architectures in display order.
func Architectures() []Architecture {
	return []Architecture{ArchLayered, ArchMVC, ArchClean}
}
