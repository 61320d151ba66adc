package target

import "github.com/scarff-dev/scarff/pkg/models"

// List helpers for prompts and suggestion output. Each returns values in
// table order; an empty slice means the combination is a dead end and the
// tables need fixing.

// KindsFor returns the project kinds a language can scaffold.
func KindsFor(lang models.Language) []models.ProjectKind {
	kinds := languageKinds[lang]
	out := make([]models.ProjectKind, len(kinds))
	copy(out, kinds)
	return out
}

// FrameworksFor returns the frameworks licensed for a language and kind.
func FrameworksFor(lang models.Language, kind models.ProjectKind) []models.Framework {
	var out []models.Framework
	for _, row := range frameworkRows {
		if row.lang == lang && row.kind == kind {
			out = append(out, row.fw)
		}
	}
	return out
}

// ArchitecturesFor returns the architectures licensed for a combination.
// fw is zero when the target carries no framework.
func ArchitecturesFor(lang models.Language, kind models.ProjectKind, fw models.Framework) []models.Architecture {
	var out []models.Architecture
	seen := make(map[models.Architecture]struct{})
	for _, row := range archRows {
		if row.lang == lang && row.kind == kind && row.fw == fw {
			if _, dup := seen[row.arch]; !dup {
				out = append(out, row.arch)
				seen[row.arch] = struct{}{}
			}
		}
	}
	return out
}
