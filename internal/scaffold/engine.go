// Package scaffold orchestrates the pipeline from user hints to files on
// disk: resolve a target, pick a template, render it, write the result.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/scarff-dev/scarff/internal/project"
	"github.com/scarff-dev/scarff/internal/target"
	"github.com/scarff-dev/scarff/internal/template"
	"github.com/scarff-dev/scarff/pkg/models"
)

// ErrInvalidName indicates an unusable project name.
var ErrInvalidName = errors.New("scaffold: invalid project name")

// Options are the user-supplied inputs for one scaffolding run. Language is
// required; the other target fields are hints and may be empty.
type Options struct {
	Name         string
	OutputDir    string
	Language     string
	Kind         string
	Framework    string
	Architecture string
	Vars         map[string]string
	Force        bool
	DryRun       bool
}

// Result reports what a run produced.
type Result struct {
	Target       target.Target
	TemplateID   template.ID
	Root         string
	FilesWritten int
	DirsCreated  int
	DryRun       bool
}

// Engine wires the catalog, renderer, and writer together.
type Engine struct {
	catalog  *template.Catalog
	renderer *template.Renderer
	writer   project.Writer
	logger   *slog.Logger
}

// New creates an Engine. A nil logger discards log output.
func New(catalog *template.Catalog, writer project.Writer, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		catalog:  catalog,
		renderer: template.NewRenderer(logger),
		writer:   writer,
		logger:   logger,
	}
}

// Scaffold runs the full pipeline. The context is checked between stages so
// a cancelled run stops before its next side effect.
func (e *Engine) Scaffold(ctx context.Context, opts Options) (*Result, error) {
	if err := validateName(opts.Name); err != nil {
		return nil, err
	}

	tgt, err := e.buildTarget(opts)
	if err != nil {
		return nil, err
	}
	e.logger.Info("target resolved", "target", tgt.String())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tpl, err := e.catalog.Resolve(tgt)
	if err != nil {
		return nil, err
	}
	e.logger.Info("template selected", "template", tpl.ID.String(), "matcher", tpl.Matcher.String())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := opts.OutputDir
	if root == "" {
		root = opts.Name
	}
	rc := template.NewRenderContext(opts.Name)
	for k, v := range opts.Vars {
		rc.Set(k, v)
	}

	structure, err := e.renderer.Render(tpl, rc, root)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Target:       tgt,
		TemplateID:   tpl.ID,
		Root:         structure.Root,
		FilesWritten: len(structure.Files()),
		DirsCreated:  len(structure.Dirs()),
		DryRun:       opts.DryRun,
	}

	if opts.DryRun {
		e.logger.Info("dry run, skipping write", "root", structure.Root)
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := e.writer.Write(structure); err != nil {
		return nil, err
	}
	e.logger.Info("project written",
		"root", structure.Root,
		"files", result.FilesWritten,
		"dirs", result.DirsCreated)
	return result, nil
}

// buildTarget parses the string hints and resolves them through a builder.
func (e *Engine) buildTarget(opts Options) (target.Target, error) {
	lang, ok := models.ParseLanguage(opts.Language)
	if !ok {
		return target.Target{}, &target.ResolveError{
			Field:       "language",
			Message:     "unknown language",
			Value:       opts.Language,
			Suggestions: target.LanguageSuggestions(),
			Wrapped:     target.ErrUnsupportedLanguage,
		}
	}
	b, err := target.NewBuilder(lang)
	if err != nil {
		return target.Target{}, err
	}

	if opts.Kind != "" {
		kind, ok := models.ParseProjectKind(opts.Kind)
		if !ok {
			return target.Target{}, &target.ResolveError{
				Field:       "kind",
				Message:     "unknown project kind",
				Value:       opts.Kind,
				Suggestions: target.KindSuggestions(lang),
				Wrapped:     target.ErrUnsupportedKind,
			}
		}
		if err := b.Kind(kind); err != nil {
			return target.Target{}, err
		}
	}
	if opts.Framework != "" {
		fw, ok := models.ParseFramework(opts.Framework)
		if !ok {
			return target.Target{}, &target.ResolveError{
				Field:       "framework",
				Message:     "unknown framework",
				Value:       opts.Framework,
				Suggestions: target.FrameworkSuggestions(lang),
				Wrapped:     target.ErrUnsupportedFramework,
			}
		}
		if err := b.Framework(fw); err != nil {
			return target.Target{}, err
		}
	}
	if opts.Architecture != "" {
		arch, ok := models.ParseArchitecture(opts.Architecture)
		if !ok {
			return target.Target{}, &target.ResolveError{
				Field:       "architecture",
				Message:     "unknown architecture",
				Value:       opts.Architecture,
				Suggestions: target.ArchitectureSuggestions(),
				Wrapped:     target.ErrUnsupportedArchitecture,
			}
		}
		if err := b.Architecture(arch); err != nil {
			return target.Target{}, err
		}
	}
	return b.Build()
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if strings.ContainsAny(name, string(filepath.Separator)+"/") {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
