package template

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"

	"github.com/scarff-dev/scarff/internal/project"
)

// placeholderPattern is the exact placeholder form: two braces, an
// identifier, two braces, no interior whitespace. Anything else, including
// {{ NAME }} or {{1X}}, is ordinary text.
var placeholderPattern = regexp.MustCompile(`\{\{[A-Za-z_][A-Za-z0-9_]*\}\}`)

// Renderer turns a template tree into a project structure by resolving each
// file's content against a RenderContext.
type Renderer struct {
	logger *slog.Logger
}

// NewRenderer creates a Renderer. A nil logger discards log output.
func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Renderer{logger: logger}
}

// Render walks the tree in order and emits a validated structure rooted at
// root. Literal content is copied byte for byte; parameterized content and
// all node paths have known placeholders substituted and unknown ones
// passed through verbatim. Unknown placeholders that survive substitution
// are logged per file.
func (r *Renderer) Render(tpl Template, ctx *RenderContext, root string) (project.Structure, error) {
	if err := tpl.Validate(); err != nil {
		return project.Structure{}, err
	}

	s := project.Structure{
		Root:    root,
		Entries: make([]project.Entry, 0, len(tpl.Tree.Nodes)),
	}
	for _, node := range tpl.Tree.Nodes {
		switch n := node.(type) {
		case DirSpec:
			s.Entries = append(s.Entries, project.DirEntry{Path: Substitute(n.Path, ctx), Mode: n.Mode()})
		case FileSpec:
			content, err := r.resolveContent(tpl.ID, n, ctx)
			if err != nil {
				return project.Structure{}, err
			}
			s.Entries = append(s.Entries, project.FileEntry{
				Path:    Substitute(n.Path, ctx),
				Content: content,
				Mode:    n.Permissions.Mode(),
			})
		default:
			return project.Structure{}, fmt.Errorf("%w: %s: unknown node type %T", ErrInvalidTemplate, tpl.ID, node)
		}
	}

	if err := s.Validate(); err != nil {
		return project.Structure{}, err
	}
	return s, nil
}

func (r *Renderer) resolveContent(id ID, f FileSpec, ctx *RenderContext) ([]byte, error) {
	switch f.Content.Kind {
	case ContentLiteral:
		return []byte(f.Content.Value), nil
	case ContentParameterized:
		rendered := Substitute(f.Content.Value, ctx)
		if leftovers := placeholderPattern.FindAllString(rendered, -1); len(leftovers) > 0 {
			r.logger.Warn("unresolved placeholders in rendered file",
				"template", id.String(),
				"path", f.Path,
				"placeholders", leftovers)
		}
		return []byte(rendered), nil
	case ContentExternal:
		return nil, fmt.Errorf("%w: %s: %s", ErrExternalContent, id, f.Path)
	default:
		return nil, fmt.Errorf("%w: %s: file %q has unknown content kind %q", ErrInvalidTemplate, id, f.Path, f.Content.Kind)
	}
}

// Substitute replaces every known placeholder in s with its context value.
// Unknown placeholders are left untouched.
func Substitute(s string, ctx *RenderContext) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := match[2 : len(match)-2]
		if v, ok := ctx.Get(name); ok {
			return v
		}
		return match
	})
}
