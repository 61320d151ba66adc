package template

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scarff-dev/scarff/pkg/models"
)

// templateDoc is the YAML form of a template definition.
type templateDoc struct {
	ID      string     `yaml:"id"`
	Matcher matcherDoc `yaml:"matcher"`
	Meta    Metadata   `yaml:"metadata"`
	Tree    []nodeDoc  `yaml:"tree"`
}

type matcherDoc struct {
	Language     string `yaml:"language"`
	Kind         string `yaml:"kind"`
	Framework    string `yaml:"framework"`
	Architecture string `yaml:"architecture"`
}

// nodeDoc is one tree entry. Exactly one of dir or file must be set. A file
// node carries content inline; parameterized opts it into placeholder
// substitution, and external names a source for an external engine instead.
// The permissions block overrides the node's default triple; executable is
// a shorthand that only flips the executable bit.
type nodeDoc struct {
	Dir           string       `yaml:"dir"`
	File          string       `yaml:"file"`
	Content       string       `yaml:"content"`
	Parameterized bool         `yaml:"parameterized"`
	External      string       `yaml:"external"`
	Executable    bool         `yaml:"executable"`
	Permissions   *Permissions `yaml:"permissions"`
}

// Load parses a single YAML template definition.
func Load(data []byte) (Template, error) {
	var doc templateDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Template{}, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return doc.toTemplate()
}

// LoadDir reads every *.yaml and *.yml file of fsys as a template
// definition. Files are visited in lexical order.
func LoadDir(fsys fs.FS) ([]Template, error) {
	var out []Template
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read template %q: %w", p, err)
		}
		tpl, err := Load(data)
		if err != nil {
			return fmt.Errorf("template %q: %w", p, err)
		}
		out = append(out, tpl)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (d templateDoc) toTemplate() (Template, error) {
	id, err := ParseID(d.ID)
	if err != nil {
		return Template{}, err
	}

	matcher, err := d.Matcher.toMatcher()
	if err != nil {
		return Template{}, fmt.Errorf("%w: %s: %v", ErrInvalidTemplate, id, err)
	}

	tree := Tree{Nodes: make([]Node, 0, len(d.Tree))}
	for i, n := range d.Tree {
		node, err := n.toNode()
		if err != nil {
			return Template{}, fmt.Errorf("%w: %s: tree node %d: %v", ErrInvalidTemplate, id, i, err)
		}
		tree.Nodes = append(tree.Nodes, node)
	}

	tpl := Template{ID: id, Matcher: matcher, Meta: d.Meta, Tree: tree}
	if err := tpl.Validate(); err != nil {
		return Template{}, err
	}
	return tpl, nil
}

func (d matcherDoc) toMatcher() (Matcher, error) {
	var m Matcher
	if s := strings.TrimSpace(d.Language); s != "" && s != "*" {
		lang, ok := models.ParseLanguage(s)
		if !ok {
			return Matcher{}, fmt.Errorf("unknown language %q", s)
		}
		m.Language = lang
	}
	if s := strings.TrimSpace(d.Kind); s != "" && s != "*" {
		kind, ok := models.ParseProjectKind(s)
		if !ok {
			return Matcher{}, fmt.Errorf("unknown project kind %q", s)
		}
		m.Kind = kind
	}
	if s := strings.TrimSpace(d.Framework); s != "" && s != "*" {
		fw, ok := models.ParseFramework(s)
		if !ok {
			return Matcher{}, fmt.Errorf("unknown framework %q", s)
		}
		m.Framework = fw
	}
	if s := strings.TrimSpace(d.Architecture); s != "" && s != "*" {
		arch, ok := models.ParseArchitecture(s)
		if !ok {
			return Matcher{}, fmt.Errorf("unknown architecture %q", s)
		}
		m.Architecture = arch
	}
	return m, nil
}

func (n nodeDoc) toNode() (Node, error) {
	switch {
	case n.Dir != "" && n.File != "":
		return nil, fmt.Errorf("node declares both dir %q and file %q", n.Dir, n.File)
	case n.Dir != "":
		perms := DefaultDirPermissions()
		if n.Permissions != nil {
			perms = *n.Permissions
		}
		return DirSpec{Path: n.Dir, Permissions: perms}, nil
	case n.File != "":
		content := Content{Kind: ContentLiteral, Value: n.Content}
		if n.External != "" {
			content = Content{Kind: ContentExternal, Value: n.External}
		} else if n.Parameterized {
			content.Kind = ContentParameterized
		}
		perms := DefaultPermissions()
		if n.Permissions != nil {
			perms = *n.Permissions
		}
		if n.Executable {
			perms.Executable = true
		}
		return FileSpec{Path: n.File, Content: content, Permissions: perms}, nil
	default:
		return nil, fmt.Errorf("node declares neither dir nor file")
	}
}
