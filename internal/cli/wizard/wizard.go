// Package wizard prompts for the target hints the user did not pass as
// flags. It only offers combinations the compatibility tables license, so a
// completed wizard always resolves.
package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/scarff-dev/scarff/internal/target"
	"github.com/scarff-dev/scarff/pkg/models"
)

// ErrCancelled indicates the user aborted the wizard.
var ErrCancelled = errors.New("wizard: cancelled by user")

// InferValue is the option value meaning "let resolution pick the default".
const InferValue = ""

// Answers are the hints collected by the wizard. Empty strings mean the
// user chose to infer.
type Answers struct {
	Kind         string
	Framework    string
	Architecture string
}

// Run asks for each hint still empty in seed. Each question runs as its own
// form so later option lists can depend on earlier answers.
func Run(lang models.Language, seed Answers) (*Answers, error) {
	answers := seed

	if answers.Kind == "" {
		kind, err := askKind(lang)
		if err != nil {
			return nil, err
		}
		answers.Kind = kind
	}

	kind := resolveKind(lang, answers.Kind)

	if answers.Framework == "" && kind.RequiresFramework() {
		fw, err := askFramework(lang, kind)
		if err != nil {
			return nil, err
		}
		answers.Framework = fw
	}

	if answers.Architecture == "" {
		fw := resolveFramework(lang, kind, answers.Framework)
		arch, err := askArchitecture(lang, kind, fw)
		if err != nil {
			return nil, err
		}
		answers.Architecture = arch
	}

	return &answers, nil
}

func askKind(lang models.Language) (string, error) {
	opts := []huh.Option[string]{
		huh.NewOption("infer from language", InferValue),
	}
	for _, k := range target.KindsFor(lang) {
		opts = append(opts, huh.NewOption(k.String(), k.String()))
	}
	return ask("What kind of project?", opts)
}

func askFramework(lang models.Language, kind models.ProjectKind) (string, error) {
	opts := []huh.Option[string]{
		huh.NewOption("infer from kind", InferValue),
	}
	for _, fw := range target.FrameworksFor(lang, kind) {
		opts = append(opts, huh.NewOption(fw.String(), fw.String()))
	}
	return ask("Which framework?", opts)
}

func askArchitecture(lang models.Language, kind models.ProjectKind, fw models.Framework) (string, error) {
	arches := target.ArchitecturesFor(lang, kind, fw)
	if len(arches) < 2 {
		// Only one possibility; inference will pick it.
		return InferValue, nil
	}
	opts := []huh.Option[string]{
		huh.NewOption("infer default", InferValue),
	}
	for _, a := range arches {
		opts = append(opts, huh.NewOption(a.String(), a.String()))
	}
	return ask("Which architecture?", opts)
}

// ask runs a single select question as an independent form.
func ask(title string, opts []huh.Option[string]) (string, error) {
	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(opts...).
			Value(&value),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("wizard error: %w", err)
	}
	return value, nil
}

// resolveKind mirrors what resolution will do with the answer, so later
// questions offer the right options.
func resolveKind(lang models.Language, answer string) models.ProjectKind {
	if answer != "" {
		if k, ok := models.ParseProjectKind(answer); ok {
			return k
		}
	}
	k, _ := target.InferKind(lang)
	return k
}

func resolveFramework(lang models.Language, kind models.ProjectKind, answer string) models.Framework {
	if answer != "" {
		if fw, ok := models.ParseFramework(answer); ok {
			return fw
		}
	}
	fw, _ := target.InferFramework(lang, kind)
	return fw
}
