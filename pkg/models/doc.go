// Package models defines the scaffolding vocabulary: languages, project
// kinds, frameworks, and architectures. Each value is a string-typed enum
// with a canonical lowercase form, a case-insensitive alias-tolerant parser,
// and an actively-supported flag. Retired values (the flask framework, the
// modular and app-router architectures) still parse so that old template
// definitions remain readable, but report Supported() == false.
package models
