// Package cli provides the Cobra command tree for the nebula CLI and the
// composition root that wires configuration, logging, terminal detection
// and the scaffold engine together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mawsis/nebula-cli/internal/config"
	"github.com/mawsis/nebula-cli/internal/ui"
)

// Dependencies holds the services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated.
type Dependencies struct {
	Config   *config.Config
	Logger   *slog.Logger
	Headless *ui.HeadlessManager
	Theme    *ui.Theme
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies loads configuration, applies persistent flag overrides
// and builds the logger and theme. Dependencies already installed with
// SetDeps are kept.
func InitDependencies(cmd *cobra.Command) error {
	if deps != nil {
		return nil
	}

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.NewLoader().Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
	if v, _ := cmd.Flags().GetBool("no-color"); v {
		cfg.NoColor = true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.NoColor = true
	}

	hm := ui.NewHeadlessManager()
	deps = &Dependencies{
		Config:   cfg,
		Logger:   newLogger(cmd.ErrOrStderr(), cfg.Verbose),
		Headless: hm,
		Theme:    ui.NewTheme(ui.ThemeConfig{NoColor: cfg.NoColor || !hm.CanAnimate(), Mode: "dark"}),
	}
	return nil
}

// GetDeps returns the current Dependencies instance, or nil before
// InitDependencies.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// newLogger returns a slog logger backed by charmbracelet/log. Only warnings
// and errors are shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := charmlog.WarnLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		ReportTimestamp: verbose,
		Prefix:          "nebula",
	})
	return slog.New(handler)
}
