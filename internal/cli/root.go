// Package cli wires the cobra command tree for the scarff binary.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/scarff-dev/scarff/internal/config"
	"github.com/scarff-dev/scarff/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "scarff",
	Short: "scarff: scaffold projects from declarative templates",
	Long: `scarff resolves a complete project target from a language plus optional
hints (kind, framework, architecture), picks the most specific matching
template, and renders it into a ready-to-build project directory.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("scarff %s\n", version.GetVersion()))
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(templatesCmd)
}

// loadConfig reads the user's global config, falling back to defaults when
// no file exists.
func loadConfig() (*config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return config.NewDefaultConfig(), nil
	}
	return config.Load(path)
}

// newLogger builds the process logger from the config's log section.
func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
