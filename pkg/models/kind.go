package models

import "strings"

// ProjectKind classifies what sort of program a project is.
type ProjectKind string

const (
	KindCLI         ProjectKind = "cli"
	KindWebBackend  ProjectKind = "web-backend"
	KindWebFrontend ProjectKind = "web-frontend"
	KindFullstack   ProjectKind = "fullstack"
	KindWorker      ProjectKind = "worker"
)

var kindAliases = map[string]ProjectKind{
	"cli":          KindCLI,
	"web-backend":  KindWebBackend,
	"backend":      KindWebBackend,
	"api":          KindWebBackend,
	"web-frontend": KindWebFrontend,
	"frontend":     KindWebFrontend,
	"fullstack":    KindFullstack,
	"worker":       KindWorker,
}

// ParseProjectKind parses a project kind case-insensitively. The aliases
// backend and api resolve to web-backend; frontend resolves to web-frontend.
func ParseProjectKind(s string) (ProjectKind, bool) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	return k, ok
}

// String returns the canonical lowercase form.
func (k ProjectKind) String() string { return string(k) }

// Supported reports whether the kind is actively supported.
func (k ProjectKind) Supported() bool {
	switch k {
	case KindCLI, KindWebBackend, KindWebFrontend, KindFullstack, KindWorker:
		return true
	}
	return false
}

// RequiresFramework reports whether projects of this kind cannot exist
// without a framework. CLI tools and workers build fine on the standard
// library; web projects do not.
func (k ProjectKind) RequiresFramework() bool {
	switch k {
	case KindWebBackend, KindWebFrontend, KindFullstack:
		return true
	}
	return false
}

// ProjectKinds returns all actively supported kinds in display order.
func ProjectKinds() []ProjectKind {
	return []ProjectKind{KindCLI, KindWebBackend, KindWebFrontend, KindFullstack, KindWorker}
}
