package target

import (
	"testing"

	"github.com/scarff-dev/scarff/pkg/models"
)

func TestEveryKindReachableForItsLanguages(t *testing.T) {
	// Every (language, kind) row must resolve to a complete target, so no
	// table entry is a dead end.
	for lang, kinds := range languageKinds {
		for _, kind := range kinds {
			t.Run(lang.String()+"/"+kind.String(), func(t *testing.T) {
				b, err := NewBuilder(lang)
				if err != nil {
					t.Fatalf("NewBuilder: %v", err)
				}
				if err := b.Kind(kind); err != nil {
					t.Fatalf("Kind: %v", err)
				}
				if _, err := b.Build(); err != nil {
					t.Errorf("no complete target for (%s, %s): %v", lang, kind, err)
				}
			})
		}
	}
}

func TestFrameworkRowsAgreeWithLanguageProjection(t *testing.T) {
	for _, row := range frameworkRows {
		if row.fw.Language() != row.lang {
			t.Errorf("row (%s, %s, %s) disagrees with %s.Language() = %s",
				row.fw, row.lang, row.kind, row.fw, row.fw.Language())
		}
		if !KindSupportsLanguage(row.kind, row.lang) {
			t.Errorf("row (%s, %s, %s) references unsupported (language, kind) pair",
				row.fw, row.lang, row.kind)
		}
	}
}

func TestArchRowsReferenceValidCombinations(t *testing.T) {
	for _, row := range archRows {
		if !KindSupportsLanguage(row.kind, row.lang) {
			t.Errorf("arch row %+v references unsupported (language, kind) pair", row)
		}
		if row.fw != "" && !FrameworkCompatible(row.fw, row.lang, row.kind) {
			t.Errorf("arch row %+v references incompatible framework", row)
		}
		if row.fw == "" && row.kind.RequiresFramework() {
			t.Errorf("arch row %+v omits framework for a framework-requiring kind", row)
		}
	}
}

func TestNoRetiredValuesInTables(t *testing.T) {
	for _, row := range frameworkRows {
		if !row.fw.Supported() {
			t.Errorf("retired framework %q in compatibility table", row.fw)
		}
	}
	for _, row := range archRows {
		if !row.arch.Supported() {
			t.Errorf("retired architecture %q in compatibility table", row.arch)
		}
	}
}

func TestAbsenceMeansIncompatible(t *testing.T) {
	if FrameworkCompatible(models.FrameworkAxum, models.LanguageRust, models.KindCLI) {
		t.Error("axum must not serve cli projects")
	}
	if FrameworkCompatible(models.FrameworkDjango, models.LanguagePython, models.KindWebBackend) {
		t.Error("django is a fullstack framework, not a bare backend one")
	}
	if ArchitectureCompatible(models.ArchMVC, models.LanguageRust, models.KindCLI, "") {
		t.Error("mvc is licensed only for django fullstack projects")
	}
	if ArchitectureCompatible(models.ArchLayered, models.LanguageRust, models.KindWebBackend, "") {
		t.Error("rust web-backend without a framework has no architecture")
	}
}
