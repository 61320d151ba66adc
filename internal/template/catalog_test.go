package template

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/scarff-dev/scarff/internal/target"
	"github.com/scarff-dev/scarff/pkg/models"
)

func minimalTemplate(name, version string, m Matcher) Template {
	return Template{
		ID:      ID{Name: name, Version: version},
		Matcher: m,
		Meta:    Metadata{Name: name},
		Tree: Tree{Nodes: []Node{
			FileSpec{Path: "README.md", Content: Literal("x"), Permissions: DefaultPermissions()},
		}},
	}
}

func TestCatalogInsertGetRemove(t *testing.T) {
	c := NewCatalog(nil)
	tpl := minimalTemplate("demo", "1.0.0", Matcher{})

	sid, err := c.Insert(tpl)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if sid == uuid.Nil {
		t.Error("Insert returned the nil storage id")
	}
	if c.Len() != 1 || !c.Contains(tpl.ID) {
		t.Errorf("catalog state after insert: len=%d contains=%v", c.Len(), c.Contains(tpl.ID))
	}

	got, err := c.Get(tpl.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != tpl.ID {
		t.Errorf("Get returned %v", got.ID)
	}

	if !c.Remove(tpl.ID) {
		t.Error("Remove should report a removed template")
	}
	if _, err := c.Get(tpl.ID); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("Get after remove = %v, want ErrTemplateNotFound", err)
	}
	if c.Remove(tpl.ID) {
		t.Error("second Remove should report nothing removed")
	}
}

func TestCatalogInsertReplacesSameID(t *testing.T) {
	c := NewCatalog(nil)
	first := minimalTemplate("demo", "1.0.0", Matcher{})
	second := minimalTemplate("demo", "1.0.0", Matcher{Language: models.LanguageRust})

	if _, err := c.Insert(first); err != nil {
		t.Fatalf("Insert first: %v", err)
	}
	if _, err := c.Insert(second); err != nil {
		t.Fatalf("Insert second: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after replacement", c.Len())
	}
	got, err := c.Get(first.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Matcher.Language != models.LanguageRust {
		t.Error("replacement did not take effect")
	}
}

func TestCatalogInsertValidates(t *testing.T) {
	c := NewCatalog(nil)
	cases := []struct {
		name string
		tpl  Template
		want error
	}{
		{"empty tree", Template{ID: ID{Name: "x", Version: "1"}}, ErrEmptyTree},
		{"missing id", minimalTemplate("", "", Matcher{}), ErrInvalidTemplate},
		{
			"absolute path",
			Template{
				ID: ID{Name: "x", Version: "1"},
				Tree: Tree{Nodes: []Node{
					FileSpec{Path: "/etc/passwd", Content: Literal(""), Permissions: DefaultPermissions()},
				}},
			},
			ErrAbsolutePath,
		},
		{
			"duplicate path",
			Template{
				ID: ID{Name: "x", Version: "1"},
				Tree: Tree{Nodes: []Node{
					DirSpec{Path: "src"},
					FileSpec{Path: "src", Content: Literal(""), Permissions: DefaultPermissions()},
				}},
			},
			ErrDuplicatePath,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := c.Insert(tc.tpl); !errors.Is(err, tc.want) {
				t.Errorf("Insert error = %v, want %v", err, tc.want)
			}
		})
	}
	if c.Len() != 0 {
		t.Errorf("invalid templates must not be stored, Len() = %d", c.Len())
	}
}

func TestResolvePrefersSpecificity(t *testing.T) {
	c := NewCatalog(nil)
	wildcard := minimalTemplate("fallback", "1.0.0", Matcher{})
	specific := minimalTemplate("rust-cli", "1.0.0", Matcher{
		Language: models.LanguageRust,
		Kind:     models.KindCLI,
	})
	for _, tpl := range []Template{wildcard, specific} {
		if _, err := c.Insert(tpl); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	got, err := c.Resolve(target.RustCLI())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.ID.Name != "rust-cli" {
		t.Errorf("Resolve picked %s, want rust-cli", got.ID)
	}

	got, err = c.Resolve(target.PythonBackendFastAPI())
	if err != nil {
		t.Fatalf("Resolve fallback: %v", err)
	}
	if got.ID.Name != "fallback" {
		t.Errorf("Resolve picked %s, want fallback", got.ID)
	}
}

func TestResolveNoMatch(t *testing.T) {
	c := NewCatalog(nil)
	tpl := minimalTemplate("rust-only", "1.0.0", Matcher{Language: models.LanguageRust})
	if _, err := c.Insert(tpl); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := c.Resolve(target.PythonBackendFastAPI()); !errors.Is(err, ErrNoMatch) {
		t.Errorf("Resolve error = %v, want ErrNoMatch", err)
	}
}

func TestResolveAmbiguity(t *testing.T) {
	c := NewCatalog(nil)
	a := minimalTemplate("alpha", "1.0.0", Matcher{Language: models.LanguageRust, Kind: models.KindCLI})
	b := minimalTemplate("beta", "1.0.0", Matcher{Language: models.LanguageRust, Architecture: models.ArchLayered})
	for _, tpl := range []Template{a, b} {
		if _, err := c.Insert(tpl); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	_, err := c.Resolve(target.RustCLI())
	if !errors.Is(err, ErrAmbiguousMatch) {
		t.Fatalf("Resolve error = %v, want ErrAmbiguousMatch", err)
	}
	var amb *AmbiguityError
	if !errors.As(err, &amb) {
		t.Fatalf("error %T is not *AmbiguityError", err)
	}
	if len(amb.Candidates) != 2 {
		t.Fatalf("candidates = %v, want both templates", amb.Candidates)
	}
	if amb.Candidates[0].Name != "alpha" || amb.Candidates[1].Name != "beta" {
		t.Errorf("candidates not sorted: %v", amb.Candidates)
	}
}

func TestBuiltinCatalogResolvesEveryDefaultTarget(t *testing.T) {
	c := MustBuiltinCatalog()
	cases := []struct {
		tgt  target.Target
		want string
	}{
		{target.RustCLI(), "rust-cli"},
		{target.RustBackendAxum(), "rust-backend-axum"},
		{target.PythonBackendFastAPI(), "python-backend-fastapi"},
		{target.TypeScriptFrontendReact(), "typescript-frontend-react"},
	}
	for _, tc := range cases {
		t.Run(tc.tgt.String(), func(t *testing.T) {
			got, err := c.Resolve(tc.tgt)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got.ID.Name != tc.want {
				t.Errorf("Resolve picked %s, want %s", got.ID, tc.want)
			}
		})
	}
}

func TestBuiltinCatalogNeverAmbiguous(t *testing.T) {
	c := MustBuiltinCatalog()
	// Every target a builder can produce must resolve unambiguously;
	// starter-minimal backstops combinations without a dedicated template.
	for _, lang := range models.Languages() {
		for _, kind := range models.ProjectKinds() {
			b, err := target.NewBuilder(lang)
			if err != nil {
				t.Fatalf("NewBuilder: %v", err)
			}
			if err := b.Kind(kind); err != nil {
				continue
			}
			tgt, err := b.Build()
			if err != nil {
				continue
			}
			if _, err := c.Resolve(tgt); err != nil {
				t.Errorf("Resolve(%v): %v", tgt, err)
			}
		}
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("rust-cli@1.0.0")
	if err != nil {
		t.Fatalf("ParseID: %v", err)
	}
	if id.Name != "rust-cli" || id.Version != "1.0.0" {
		t.Errorf("ParseID = %+v", id)
	}
	if id.String() != "rust-cli@1.0.0" {
		t.Errorf("String() = %q", id.String())
	}
	for _, bad := range []string{"", "rust-cli", "@1.0.0", "rust-cli@"} {
		if _, err := ParseID(bad); !errors.Is(err, ErrInvalidID) {
			t.Errorf("ParseID(%q) error = %v, want ErrInvalidID", bad, err)
		}
	}
}
