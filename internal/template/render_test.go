package template

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/scarff-dev/scarff/internal/project"
)

func TestSubstitute(t *testing.T) {
	ctx := NewRenderContext("my-app")
	ctx.Set("AUTHOR", "ada")
	ctx.Set("author_email", "ada@example.com")

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"known placeholder", "name = {{PROJECT_NAME}}", "name = my-app"},
		{"multiple", "{{PROJECT_NAME}}/{{AUTHOR}}", "my-app/ada"},
		{"unknown passes through", "{{NOT_A_VAR}}", "{{NOT_A_VAR}}"},
		{"whitespace is not a placeholder", "{{ PROJECT_NAME }}", "{{ PROJECT_NAME }}"},
		{"lowercase key", "{{author_email}}", "ada@example.com"},
		{"unknown lowercase passes through", "{{not_a_var}}", "{{not_a_var}}"},
		{"digit start is not a placeholder", "{{1ST}}", "{{1ST}}"},
		{"single braces untouched", "{PROJECT_NAME}", "{PROJECT_NAME}"},
		{"adjacent", "{{PROJECT_NAME}}{{PROJECT_NAME}}", "my-appmy-app"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Substitute(tc.in, ctx); got != tc.want {
				t.Errorf("Substitute(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRenderEmitsOrderedStructure(t *testing.T) {
	tpl := Template{
		ID: ID{Name: "demo", Version: "1.0.0"},
		Tree: Tree{Nodes: []Node{
			DirSpec{Path: "src"},
			FileSpec{Path: "src/main.rs", Content: Parameterized("// {{PROJECT_NAME}}\n"), Permissions: DefaultPermissions()},
			FileSpec{Path: "run.sh", Content: Literal("#!/bin/sh\n"), Permissions: Permissions{Readable: true, Writable: true, Executable: true}},
		}},
	}

	s, err := NewRenderer(nil).Render(tpl, NewRenderContext("demo"), "/tmp/demo")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if s.Root != "/tmp/demo" {
		t.Errorf("Root = %q", s.Root)
	}
	if len(s.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(s.Entries))
	}
	if _, ok := s.Entries[0].(project.DirEntry); !ok {
		t.Errorf("entry 0 = %T, want DirEntry", s.Entries[0])
	}
	main, ok := s.Entries[1].(project.FileEntry)
	if !ok {
		t.Fatalf("entry 1 = %T, want FileEntry", s.Entries[1])
	}
	if string(main.Content) != "// demo\n" {
		t.Errorf("rendered content = %q", main.Content)
	}
	run := s.Entries[2].(project.FileEntry)
	if run.Mode&0o111 == 0 {
		t.Errorf("run.sh mode = %v, want executable bit", run.Mode)
	}
}

func TestRenderDirPermissions(t *testing.T) {
	tpl := Template{
		ID: ID{Name: "demo", Version: "1.0.0"},
		Tree: Tree{Nodes: []Node{
			DirSpec{Path: "src"},
			DirSpec{Path: "vendor", Permissions: Permissions{Readable: true, Executable: true}},
		}},
	}
	s, err := NewRenderer(nil).Render(tpl, NewRenderContext("demo"), "out")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := s.Entries[0].(project.DirEntry).Mode; got != 0o755 {
		t.Errorf("default dir mode = %o, want 755", got)
	}
	if got := s.Entries[1].(project.DirEntry).Mode; got != 0o555 {
		t.Errorf("declared dir mode = %o, want 555", got)
	}
}

func TestRenderSubstitutesPaths(t *testing.T) {
	tpl := Template{
		ID: ID{Name: "demo", Version: "1.0.0"},
		Tree: Tree{Nodes: []Node{
			DirSpec{Path: "{{PROJECT_NAME_SNAKE}}"},
			FileSpec{Path: "{{PROJECT_NAME_SNAKE}}/__init__.py", Content: Literal(""), Permissions: DefaultPermissions()},
		}},
	}
	s, err := NewRenderer(nil).Render(tpl, NewRenderContext("My App"), "out")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := s.Entries[0].EntryPath(); got != "my_app" {
		t.Errorf("dir path = %q, want my_app", got)
	}
	if got := s.Entries[1].EntryPath(); got != "my_app/__init__.py" {
		t.Errorf("file path = %q", got)
	}
}

func TestRenderLiteralContentIsVerbatim(t *testing.T) {
	raw := "keep {{PROJECT_NAME}} and {{WHATEVER}} untouched\n"
	tpl := Template{
		ID: ID{Name: "demo", Version: "1.0.0"},
		Tree: Tree{Nodes: []Node{
			FileSpec{Path: "a.txt", Content: Literal(raw), Permissions: DefaultPermissions()},
		}},
	}
	s, err := NewRenderer(nil).Render(tpl, NewRenderContext("x"), "out")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := string(s.Entries[0].(project.FileEntry).Content); got != raw {
		t.Errorf("literal content changed: %q", got)
	}
}

func TestRenderWarnsOnLeftoverPlaceholders(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	tpl := Template{
		ID: ID{Name: "demo", Version: "1.0.0"},
		Tree: Tree{Nodes: []Node{
			FileSpec{Path: "a.txt", Content: Parameterized("{{MISSING_VAR}}"), Permissions: DefaultPermissions()},
		}},
	}

	s, err := NewRenderer(logger).Render(tpl, NewRenderContext("x"), "out")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := string(s.Entries[0].(project.FileEntry).Content); got != "{{MISSING_VAR}}" {
		t.Errorf("unknown placeholder must pass through, got %q", got)
	}
	if !strings.Contains(buf.String(), "MISSING_VAR") {
		t.Errorf("expected a warning naming the placeholder, log: %s", buf.String())
	}
}

func TestRenderExternalContentFails(t *testing.T) {
	tpl := Template{
		ID: ID{Name: "demo", Version: "1.0.0"},
		Tree: Tree{Nodes: []Node{
			FileSpec{Path: "a.txt", Content: Content{Kind: ContentExternal, Value: "engine://x"}, Permissions: DefaultPermissions()},
		}},
	}
	if _, err := NewRenderer(nil).Render(tpl, NewRenderContext("x"), "out"); !errors.Is(err, ErrExternalContent) {
		t.Errorf("Render error = %v, want ErrExternalContent", err)
	}
}

func TestRenderValidatesResult(t *testing.T) {
	// Path substitution can introduce a collision the raw tree did not have.
	tpl := Template{
		ID: ID{Name: "demo", Version: "1.0.0"},
		Tree: Tree{Nodes: []Node{
			FileSpec{Path: "{{PROJECT_NAME_SNAKE}}.txt", Content: Literal(""), Permissions: DefaultPermissions()},
			FileSpec{Path: "{{PROJECT_NAME_KEBAB}}.txt", Content: Literal(""), Permissions: DefaultPermissions()},
		}},
	}
	if _, err := NewRenderer(nil).Render(tpl, NewRenderContext("app"), "out"); !errors.Is(err, project.ErrDuplicatePath) {
		t.Errorf("Render error = %v, want project.ErrDuplicatePath", err)
	}
}

func TestBuiltinTemplatesRenderCleanly(t *testing.T) {
	r := NewRenderer(nil)
	for _, tpl := range Builtin() {
		t.Run(tpl.ID.String(), func(t *testing.T) {
			s, err := r.Render(tpl, NewRenderContext("sample-app"), "out")
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			for _, f := range s.Files() {
				if placeholderPattern.Match(f.Content) {
					t.Errorf("%s still contains placeholders after rendering", f.Path)
				}
			}
		})
	}
}
