package template

import (
	"maps"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RenderContext holds the placeholder variables available during rendering.
// Seeding a context from a project name derives the standard name variants
// and the current year; callers may add or override variables afterwards.
type RenderContext struct {
	vars map[string]string
}

// Standard variable names every context is seeded with.
const (
	VarProjectName       = "PROJECT_NAME"
	VarProjectNameSnake  = "PROJECT_NAME_SNAKE"
	VarProjectNameKebab  = "PROJECT_NAME_KEBAB"
	VarProjectNamePascal = "PROJECT_NAME_PASCAL"
	VarYear              = "YEAR"
)

// NewRenderContext seeds a context for the given project name.
func NewRenderContext(projectName string) *RenderContext {
	words := splitWords(projectName)
	return &RenderContext{vars: map[string]string{
		VarProjectName:       projectName,
		VarProjectNameSnake:  strings.Join(words, "_"),
		VarProjectNameKebab:  strings.Join(words, "-"),
		VarProjectNamePascal: toPascal(words),
		VarYear:              strconv.Itoa(time.Now().Year()),
	}}
}

// Set adds or overrides a variable.
func (c *RenderContext) Set(name, value string) {
	c.vars[name] = value
}

// Get returns a variable value. The second return value reports whether the
// variable exists.
func (c *RenderContext) Get(name string) (string, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// Vars returns a copy of all variables.
func (c *RenderContext) Vars() map[string]string {
	out := make(map[string]string, len(c.vars))
	maps.Copy(out, c.vars)
	return out
}

// splitWords breaks a name into lowercase words. Separators (-, _, space,
// dot) delimit words, as do camelCase boundaries. Acronym runs keep
// together: HTTPServer splits into http, server.
func splitWords(name string) []string {
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = nil
		}
	}

	runes := []rune(name)
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r):
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			prevUpper := i > 0 && unicode.IsUpper(runes[i-1])
			if prevLower || (prevUpper && nextLower) {
				flush()
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

var titleCaser = cases.Title(language.Und)

func toPascal(words []string) string {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(titleCaser.String(w))
	}
	return b.String()
}
