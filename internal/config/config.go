// Package config loads the user's global scarff configuration from
// ~/.scarff/config.yaml, applies defaults, and validates the result.
package config

import (
	"github.com/scarff-dev/scarff/pkg/models"
)

// Config is the global user configuration. Every field has a sensible
// default; a missing config file means all defaults.
type Config struct {
	Author   AuthorConfig   `yaml:"author"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Template TemplateConfig `yaml:"templates"`
	Log      LogConfig      `yaml:"log"`
}

// AuthorConfig identifies the user in rendered files.
type AuthorConfig struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	License string `yaml:"license"`
}

// DefaultsConfig pre-seeds target hints so the user can omit flags.
type DefaultsConfig struct {
	Language     string `yaml:"language"`
	Kind         string `yaml:"kind"`
	Framework    string `yaml:"framework"`
	Architecture string `yaml:"architecture"`
}

// TemplateConfig points at extra template definition directories loaded into
// the catalog alongside the built-ins.
type TemplateConfig struct {
	Dirs []string          `yaml:"dirs"`
	Vars map[string]string `yaml:"vars"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ParsedLanguage resolves the configured default language, if any.
func (d DefaultsConfig) ParsedLanguage() (models.Language, bool) {
	if d.Language == "" {
		return "", false
	}
	return models.ParseLanguage(d.Language)
}
