package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scarff-dev/scarff/internal/cli/wizard"
	"github.com/scarff-dev/scarff/internal/config"
	"github.com/scarff-dev/scarff/internal/project"
	"github.com/scarff-dev/scarff/internal/scaffold"
	"github.com/scarff-dev/scarff/internal/target"
	"github.com/scarff-dev/scarff/internal/template"
	"github.com/scarff-dev/scarff/internal/ui"
	"github.com/scarff-dev/scarff/pkg/models"
)

var newFlags struct {
	language     string
	kind         string
	framework    string
	architecture string
	output       string
	vars         []string
	dryRun       bool
	force        bool
	noInput      bool
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new project",
	Long: `Resolve a target from the language and optional hints, pick the most
specific matching template, and write the project to disk. Hints left out
are inferred; with a terminal attached, missing hints are asked for
interactively.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	f := newCmd.Flags()
	f.StringVarP(&newFlags.language, "language", "l", "", "project language (rust, python, typescript)")
	f.StringVarP(&newFlags.kind, "kind", "k", "", "project kind (cli, web-backend, web-frontend, fullstack, worker)")
	f.StringVarP(&newFlags.framework, "framework", "f", "", "framework hint")
	f.StringVarP(&newFlags.architecture, "arch", "a", "", "architecture hint (layered, mvc, clean)")
	f.StringVarP(&newFlags.output, "output", "o", "", "output directory (default: the project name)")
	f.StringArrayVar(&newFlags.vars, "var", nil, "extra template variable, KEY=VALUE (repeatable)")
	f.BoolVar(&newFlags.dryRun, "dry-run", false, "resolve and render without writing files")
	f.BoolVar(&newFlags.force, "force", false, "write into a non-empty output directory")
	f.BoolVar(&newFlags.noInput, "no-input", false, "never prompt, fail instead")
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log)

	opts := scaffold.Options{
		Name:         name,
		OutputDir:    newFlags.output,
		Language:     newFlags.language,
		Kind:         newFlags.kind,
		Framework:    newFlags.framework,
		Architecture: newFlags.architecture,
		Force:        newFlags.force,
		DryRun:       newFlags.dryRun,
	}
	applyConfigDefaults(&opts, cfg)

	if opts.Language == "" {
		return fmt.Errorf("no language given: pass --language or set defaults.language in %s/%s",
			config.ConfigDirName, config.ConfigFileName)
	}

	headless := ui.NewHeadlessManager()
	if newFlags.noInput {
		headless.ForceHeadless(true)
	}
	if !headless.IsHeadless() {
		if err := promptMissingHints(&opts); err != nil {
			return err
		}
	}

	vars, err := collectVars(cfg, newFlags.vars)
	if err != nil {
		return err
	}
	opts.Vars = vars

	catalog, err := buildCatalog(cfg, logger)
	if err != nil {
		return err
	}

	writer := project.NewFSWriter(
		project.WithForce(opts.Force),
		project.WithLogger(logger),
	)
	engine := scaffold.New(catalog, writer, logger)

	res, err := engine.Scaffold(cmd.Context(), opts)
	if err != nil {
		printScaffoldError(err)
		return err
	}

	printResult(res)
	return nil
}

// applyConfigDefaults backfills hints from the config's defaults section.
func applyConfigDefaults(opts *scaffold.Options, cfg *config.Config) {
	if opts.Language == "" {
		opts.Language = cfg.Defaults.Language
	}
	if opts.Kind == "" {
		opts.Kind = cfg.Defaults.Kind
	}
	if opts.Framework == "" {
		opts.Framework = cfg.Defaults.Framework
	}
	if opts.Architecture == "" {
		opts.Architecture = cfg.Defaults.Architecture
	}
}

// promptMissingHints runs the wizard for hints still unset.
func promptMissingHints(opts *scaffold.Options) error {
	lang, ok := models.ParseLanguage(opts.Language)
	if !ok {
		// Let resolution produce the proper error and suggestions.
		return nil
	}
	answers, err := wizard.Run(lang, wizard.Answers{
		Kind:         opts.Kind,
		Framework:    opts.Framework,
		Architecture: opts.Architecture,
	})
	if err != nil {
		return err
	}
	opts.Kind = answers.Kind
	opts.Framework = answers.Framework
	opts.Architecture = answers.Architecture
	return nil
}

// collectVars merges config template vars with --var flags; flags win.
func collectVars(cfg *config.Config, flagVars []string) (map[string]string, error) {
	vars := make(map[string]string)
	for k, v := range cfg.Template.Vars {
		vars[k] = v
	}
	if cfg.Author.Name != "" {
		vars["AUTHOR"] = cfg.Author.Name
	}
	if cfg.Author.Email != "" {
		vars["AUTHOR_EMAIL"] = cfg.Author.Email
	}
	if cfg.Author.License != "" {
		vars["LICENSE"] = cfg.Author.License
	}
	for _, kv := range flagVars {
		k, v, found := strings.Cut(kv, "=")
		if !found || k == "" {
			return nil, fmt.Errorf("invalid --var %q, expected KEY=VALUE", kv)
		}
		vars[k] = v
	}
	return vars, nil
}

// buildCatalog loads the built-ins plus any template directories from the
// config.
func buildCatalog(cfg *config.Config, logger *slog.Logger) (*template.Catalog, error) {
	catalog := template.MustBuiltinCatalog()
	for _, dir := range cfg.Template.Dirs {
		tpls, err := template.LoadDir(os.DirFS(dir))
		if err != nil {
			logger.Warn("skipping template directory", "dir", dir, "error", err)
			continue
		}
		for _, tpl := range tpls {
			if _, err := catalog.Insert(tpl); err != nil {
				return nil, fmt.Errorf("template directory %q: %w", dir, err)
			}
		}
	}
	return catalog, nil
}

// printScaffoldError adds actionable context beneath the error cobra will
// print.
func printScaffoldError(err error) {
	var re *target.ResolveError
	if errors.As(err, &re) && len(re.Suggestions) > 0 {
		fmt.Fprintln(os.Stderr, ui.HintStyle.Render(
			fmt.Sprintf("valid values for %s: %s", re.Field, strings.Join(re.Suggestions, ", "))))
		return
	}
	if errors.Is(err, template.ErrNoMatch) {
		fmt.Fprintln(os.Stderr, ui.HintStyle.Render("run `scarff templates` to see what is available"))
	}
}

func printResult(res *scaffold.Result) {
	fmt.Println(ui.SuccessStyle.Render("✓ " + res.Root))
	fmt.Printf("%s %s\n", ui.LabelStyle.Render("target:"), res.Target)
	fmt.Printf("%s %s\n", ui.LabelStyle.Render("template:"), res.TemplateID)
	action := "written"
	if res.DryRun {
		action = "planned"
	}
	fmt.Printf("%s %d files, %d directories %s\n",
		ui.LabelStyle.Render("output:"), res.FilesWritten, res.DirsCreated, action)
}
