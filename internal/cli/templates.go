package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/scarff-dev/scarff/internal/ui"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available templates",
	Long: `List every template scarff can scaffold from: the built-ins plus any
directories configured under templates.dirs. Matcher columns show * for
wildcard fields; more constrained matchers win resolution.`,
	Args: cobra.NoArgs,
	RunE: runTemplates,
}

func runTemplates(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log)

	catalog, err := buildCatalog(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Println(ui.TitleStyle.Render(fmt.Sprintf("%d templates", catalog.Len())))
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMATCHER\tDESCRIPTION")
	for _, rec := range catalog.List() {
		tpl := rec.Template
		fmt.Fprintf(w, "%s\t%s\t%s\n", tpl.ID, tpl.Matcher, tpl.Meta.Description)
	}
	return w.Flush()
}
