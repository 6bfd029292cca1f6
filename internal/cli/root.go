package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mawsis/nebula-cli/pkg/version"
)

// NewRootCommand builds the nebula command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "nebula",
		Short: "Nebula PHP framework command line",
		Long: `nebula scaffolds new applications for the Nebula PHP framework.

Run "nebula new <name>" to create a project directory with configuration,
routes, a user model, an initial migration and a composer manifest, then
install its dependencies.`,
		Version: version.GetVersion(),
		// Wire dependencies once flags are parsed, before any subcommand runs.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return InitDependencies(cmd)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("nebula %s\n", version.GetFullVersion()))

	root.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/nebula/config.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().Bool("no-color", false, "Disable colored output")

	root.AddCommand(newNewCommand())
	return root
}

// Execute runs the CLI with ctx and returns the first error encountered.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
