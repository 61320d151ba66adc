package template

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// ID identifies a template by name and version. The wire form is
// name@version.
type ID struct {
	Name    string
	Version string
}

// ParseID parses the name@version form.
func ParseID(s string) (ID, error) {
	name, version, found := strings.Cut(s, "@")
	if !found || name == "" || version == "" {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID{Name: name, Version: version}, nil
}

// String returns the name@version form.
func (id ID) String() string { return id.Name + "@" + id.Version }

// Metadata describes a template for listings.
type Metadata struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags"`
}

// ContentKind discriminates how a file's content is produced.
type ContentKind string

const (
	// ContentLiteral is emitted byte for byte.
	ContentLiteral ContentKind = "literal"
	// ContentParameterized goes through placeholder substitution.
	ContentParameterized ContentKind = "parameterized"
	// ContentExternal names a source for an external template engine.
	ContentExternal ContentKind = "external"
)

// Content is the body of a templated file.
type Content struct {
	Kind  ContentKind
	Value string
}

// Literal returns literal content.
func Literal(s string) Content { return Content{Kind: ContentLiteral, Value: s} }

// Parameterized returns placeholder-substituted content.
func Parameterized(s string) Content { return Content{Kind: ContentParameterized, Value: s} }

// Permissions describe the mode bits a scaffolded file should carry.
type Permissions struct {
	Readable   bool `yaml:"readable"`
	Writable   bool `yaml:"writable"`
	Executable bool `yaml:"executable"`
}

// DefaultPermissions is read-write, non-executable.
func DefaultPermissions() Permissions {
	return Permissions{Readable: true, Writable: true}
}

// DefaultDirPermissions is read-write and traversable.
func DefaultDirPermissions() Permissions {
	return Permissions{Readable: true, Writable: true, Executable: true}
}

// Mode converts the permission flags to a file mode.
func (p Permissions) Mode() fs.FileMode {
	var mode fs.FileMode
	if p.Readable {
		mode |= 0o444
	}
	if p.Writable {
		mode |= 0o200
	}
	if p.Executable {
		mode |= 0o111
	}
	return mode
}

// Node is one entry of a template tree, either a FileSpec or a DirSpec.
type Node interface {
	// NodePath returns the path the node claims, relative to the project
	// root.
	NodePath() string
}

// FileSpec declares one file of the scaffolded project.
type FileSpec struct {
	Path        string
	Content     Content
	Permissions Permissions
}

// NodePath implements Node.
func (f FileSpec) NodePath() string { return f.Path }

// DirSpec declares one directory of the scaffolded project.
type DirSpec struct {
	Path        string
	Permissions Permissions
}

// NodePath implements Node.
func (d DirSpec) NodePath() string { return d.Path }

// Mode converts the directory's permission flags to a file mode. A DirSpec
// declared without permissions gets the default directory triple.
func (d DirSpec) Mode() fs.FileMode {
	if d.Permissions == (Permissions{}) {
		return DefaultDirPermissions().Mode()
	}
	return d.Permissions.Mode()
}

// Tree is the ordered list of nodes a template scaffolds. Order is the
// template author's: parents are expected before children.
type Tree struct {
	Nodes []Node
}

// Template couples an identifier, a target matcher, display metadata, and
// the tree to scaffold.
type Template struct {
	ID      ID
	Matcher Matcher
	Meta    Metadata
	Tree    Tree
}

// Validate checks structural soundness: a usable id, a non-empty tree, and
// relative, non-duplicate paths.
func (t Template) Validate() error {
	if t.ID.Name == "" || t.ID.Version == "" {
		return fmt.Errorf("%w: template has no id", ErrInvalidTemplate)
	}
	if len(t.Tree.Nodes) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyTree, t.ID)
	}
	seen := make(map[string]struct{}, len(t.Tree.Nodes))
	for _, n := range t.Tree.Nodes {
		p := n.NodePath()
		if p == "" {
			return fmt.Errorf("%w: %s: node with empty path", ErrInvalidTemplate, t.ID)
		}
		if path.IsAbs(p) {
			return fmt.Errorf("%w: %s: %q", ErrAbsolutePath, t.ID, p)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: %s: %q", ErrDuplicatePath, t.ID, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}
