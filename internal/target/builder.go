package target

import "github.com/scarff-dev/scarff/pkg/models"

// Builder accumulates hints toward a Target. A Builder always has a
// language; the only constructor takes one, so a language-less builder
// cannot exist. Setters reject incompatible values immediately with as much
// validation as the fields set so far allow; Build re-validates everything
// once the remaining fields are resolved.
type Builder struct {
	lang models.Language

	kind    models.ProjectKind
	kindSet bool

	fw    models.Framework
	fwSet bool

	arch    models.Architecture
	archSet bool
}

// NewBuilder creates a Builder for the given language.
func NewBuilder(lang models.Language) (*Builder, error) {
	if !lang.Supported() {
		return nil, &ResolveError{
			Field:       "language",
			Message:     "language is not supported",
			Value:       lang.String(),
			Suggestions: LanguageSuggestions(),
			Wrapped:     ErrUnsupportedLanguage,
		}
	}
	return &Builder{lang: lang}, nil
}

// Language returns the builder's language.
func (b *Builder) Language() models.Language { return b.lang }

// Kind sets the project kind hint. The kind must be available for the
// builder's language.
func (b *Builder) Kind(kind models.ProjectKind) error {
	if !kind.Supported() {
		return &ResolveError{
			Field:       "kind",
			Message:     "project kind is not supported",
			Value:       kind.String(),
			Suggestions: KindSuggestions(b.lang),
			Wrapped:     ErrUnsupportedKind,
		}
	}
	if !KindSupportsLanguage(kind, b.lang) {
		return &ResolveError{
			Field:       "kind",
			Message:     "project kind is not available for " + b.lang.String(),
			Value:       kind.String(),
			Suggestions: KindSuggestions(b.lang),
			Wrapped:     ErrKindLanguageMismatch,
		}
	}
	b.kind = kind
	b.kindSet = true
	return nil
}

// Framework sets the framework hint. The framework must belong to the
// builder's language, and serve the kind when one is already set.
func (b *Builder) Framework(fw models.Framework) error {
	if _, known := models.ParseFramework(fw.String()); !known {
		return &ResolveError{
			Field:       "framework",
			Message:     "unknown framework",
			Value:       fw.String(),
			Suggestions: FrameworkSuggestions(b.lang),
			Wrapped:     ErrUnsupportedFramework,
		}
	}
	if !fw.Supported() {
		return &ResolveError{
			Field:       "framework",
			Message:     "framework is no longer supported",
			Value:       fw.String(),
			Suggestions: FrameworkSuggestions(b.lang),
			Wrapped:     ErrRetired,
		}
	}
	if fw.Language() != b.lang {
		return &ResolveError{
			Field:       "framework",
			Message:     "framework belongs to " + fw.Language().String() + ", not " + b.lang.String(),
			Value:       fw.String(),
			Suggestions: FrameworkSuggestions(b.lang),
			Wrapped:     ErrFrameworkLanguageMismatch,
		}
	}
	if b.kindSet && !FrameworkCompatible(fw, b.lang, b.kind) {
		return &ResolveError{
			Field:       "framework",
			Message:     "framework does not serve " + b.kind.String() + " projects",
			Value:       fw.String(),
			Suggestions: FrameworkSuggestions(b.lang),
			Wrapped:     ErrFrameworkKindMismatch,
		}
	}
	b.fw = fw
	b.fwSet = true
	return nil
}

// Architecture sets the architecture hint. The table check runs here
// against whatever of kind and framework is already set, treating the
// unset fields as open; Build repeats it against the fully resolved
// target.
func (b *Builder) Architecture(arch models.Architecture) error {
	if _, known := models.ParseArchitecture(arch.String()); !known {
		return &ResolveError{
			Field:       "architecture",
			Message:     "unknown architecture",
			Value:       arch.String(),
			Suggestions: ArchitectureSuggestions(),
			Wrapped:     ErrUnsupportedArchitecture,
		}
	}
	if !arch.Supported() {
		return &ResolveError{
			Field:       "architecture",
			Message:     "architecture is no longer supported",
			Value:       arch.String(),
			Suggestions: ArchitectureSuggestions(),
			Wrapped:     ErrRetired,
		}
	}
	if b.kindSet || b.fwSet {
		var kind models.ProjectKind
		if b.kindSet {
			kind = b.kind
		}
		var fw models.Framework
		if b.fwSet {
			fw = b.fw
		}
		if !architecturePossible(arch, b.lang, kind, fw) {
			return &ResolveError{
				Field:       "architecture",
				Message:     "architecture is incompatible with the chosen target",
				Value:       arch.String(),
				Suggestions: ArchitectureSuggestions(),
				Wrapped:     ErrArchitectureMismatch,
			}
		}
	}
	b.arch = arch
	b.archSet = true
	return nil
}

// Build resolves the remaining fields in fixed order and returns the
// completed Target. Supplied values are re-validated against the fields
// resolved before them; inferred values go through the same checks.
func (b *Builder) Build() (Target, error) {
	kind := b.kind
	if !b.kindSet {
		inferred, ok := InferKind(b.lang)
		if !ok {
			return Target{}, &ResolveError{
				Field:   "kind",
				Message: "no default project kind for " + b.lang.String(),
				Wrapped: ErrCannotInfer,
			}
		}
		kind = inferred
	}
	if !KindSupportsLanguage(kind, b.lang) {
		return Target{}, &ResolveError{
			Field:       "kind",
			Message:     "project kind is not available for " + b.lang.String(),
			Value:       kind.String(),
			Suggestions: KindSuggestions(b.lang),
			Wrapped:     ErrKindLanguageMismatch,
		}
	}

	fw := b.fw
	hasFW := b.fwSet
	if !hasFW {
		if inferred, ok := InferFramework(b.lang, kind); ok {
			fw = inferred
			hasFW = true
		}
	}
	if hasFW && !FrameworkCompatible(fw, b.lang, kind) {
		return Target{}, &ResolveError{
			Field:       "framework",
			Message:     "framework does not serve " + kind.String() + " projects",
			Value:       fw.String(),
			Suggestions: FrameworkSuggestions(b.lang),
			Wrapped:     ErrFrameworkKindMismatch,
		}
	}
	if !hasFW && kind.RequiresFramework() {
		return Target{}, &ResolveError{
			Field:       "framework",
			Message:     kind.String() + " projects require a framework and none could be inferred",
			Suggestions: FrameworkSuggestions(b.lang),
			Wrapped:     ErrFrameworkRequired,
		}
	}

	arch := b.arch
	if !b.archSet {
		inferred, ok := InferArchitecture(b.lang, kind, fw)
		if !ok {
			return Target{}, &ResolveError{
				Field:   "architecture",
				Message: "no default architecture for this combination",
				Wrapped: ErrCannotInfer,
			}
		}
		arch = inferred
	}
	if !ArchitectureCompatible(arch, b.lang, kind, fw) {
		return Target{}, &ResolveError{
			Field:       "architecture",
			Message:     "architecture is incompatible with the resolved target",
			Value:       arch.String(),
			Suggestions: ArchitectureSuggestions(),
			Wrapped:     ErrArchitectureMismatch,
		}
	}

	return Target{
		Language:     b.lang,
		Kind:         kind,
		Framework:    fw,
		Architecture: arch,
	}, nil
}

// LanguageSuggestions lists the supported language names for error
// messages.
func LanguageSuggestions() []string {
	out := make([]string, 0, len(models.Languages()))
	for _, l := range models.Languages() {
		out = append(out, l.String())
	}
	return out
}

// KindSuggestions lists the project kinds available for a language.
func KindSuggestions(lang models.Language) []string {
	kinds := languageKinds[lang]
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, k.String())
	}
	return out
}

// FrameworkSuggestions lists the frameworks available for a language.
func FrameworkSuggestions(lang models.Language) []string {
	fws := models.FrameworksFor(lang)
	out := make([]string, 0, len(fws))
	for _, fw := range fws {
		out = append(out, fw.String())
	}
	return out
}

// ArchitectureSuggestions lists every supported architecture.
func ArchitectureSuggestions() []string {
	out := make([]string, 0, len(models.Architectures()))
	for _, a := range models.Architectures() {
		out = append(out, a.String())
	}
	return out
}
