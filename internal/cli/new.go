package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mawsis/nebula-cli/internal/cli/wizard"
	"github.com/mawsis/nebula-cli/internal/core/project"
	"github.com/mawsis/nebula-cli/internal/installer"
	"github.com/mawsis/nebula-cli/pkg/models"
)

func newNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a new Nebula application",
		Long: `Create a new Nebula application in ./<name>.

The target directory must not exist. You are asked for the application
shape and database unless both --type and --database are given or stdin
is not a terminal, in which case unset choices default to a full app
with MySQL. After the files are written, "composer install" runs in the
new directory; if it fails the project is kept and you can run it later.

Examples:
  nebula new                      Creates ./nebula-app (or the configured default name)
  nebula new shop                 Creates ./shop and asks for shape and database
  nebula new api --type api --database pgsql --skip-install
  nebula new shop --dry-run       Prints the directories and files without writing`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: validateNewFlags,
		RunE:    runNew,
	}

	cmd.Flags().StringP("type", "t", "", "Application shape: full or api")
	cmd.Flags().StringP("database", "d", "", "Database: mysql, pgsql, sqlite or none")
	cmd.Flags().Bool("dry-run", false, "Print the layout plan as YAML and exit")
	cmd.Flags().Bool("skip-install", false, "Do not run the dependency installer")
	return cmd
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// validateNewFlags validates flag values before execution.
func validateNewFlags(cmd *cobra.Command, _ []string) error {
	if v := getStringFlag(cmd, "type"); v != "" {
		if _, err := models.ParseShape(v); err != nil {
			return fmt.Errorf("invalid --type value %q: must be one of: full, api", v)
		}
	}
	if v := getStringFlag(cmd, "database"); v != "" {
		if _, err := models.ParseDatabase(v); err != nil {
			return fmt.Errorf("invalid --database value %q: must be one of: mysql, pgsql, sqlite, none", v)
		}
	}
	return nil
}

// runWizard asks the given questions; tests replace it.
var runWizard = wizard.RunQuestions

// choices are the answers the engine needs from the user.
type choices struct {
	Name     string
	Dir      string // as typed, for messages relative to the working directory
	Root     string
	Shape    models.AppShape
	Database models.Database
}

// resolveChoices combines the positional name, flags, config defaults and,
// when a terminal is attached, the wizard.
func resolveChoices(cmd *cobra.Command, args []string, d *Dependencies) (*choices, error) {
	name := d.Config.DefaultName
	if len(args) > 0 {
		name = args[0]
	}
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." {
		return nil, fmt.Errorf("invalid project name %q", name)
	}
	root, err := filepath.Abs(name)
	if err != nil {
		return nil, fmt.Errorf("resolve project path %q: %w", name, err)
	}

	c := &choices{
		Name:     filepath.Base(root),
		Dir:      filepath.Clean(name),
		Root:     root,
		Shape:    models.DefaultShape,
		Database: models.DefaultDatabase,
	}

	var askShape, askDatabase = true, true
	if v := getStringFlag(cmd, "type"); v != "" {
		c.Shape, _ = models.ParseShape(v)
		askShape = false
	}
	if v := getStringFlag(cmd, "database"); v != "" {
		c.Database, _ = models.ParseDatabase(v)
		askDatabase = false
	}

	if (!askShape && !askDatabase) || d.Headless.IsHeadless() {
		return c, nil
	}

	defaults := wizard.Defaults{Shape: c.Shape, Database: c.Database}
	var questions []wizard.Question
	for _, q := range wizard.DefaultQuestions(defaults) {
		if (q.ID == wizard.QuestionShape && askShape) || (q.ID == wizard.QuestionDatabase && askDatabase) {
			questions = append(questions, q)
		}
	}
	res, err := runWizard(defaults, questions)
	if err != nil {
		return nil, err
	}
	// Flag values win over whatever the wizard reports for unasked fields.
	if askShape {
		c.Shape = res.Shape
	}
	if askDatabase {
		c.Database = res.Database
	}
	return c, nil
}

// planDocument is the --dry-run output.
type planDocument struct {
	Name string       `yaml:"name"`
	Root string       `yaml:"root"`
	Plan project.Plan `yaml:"plan"`
}

func writePlan(w io.Writer, c *choices) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(planDocument{Name: c.Name, Root: c.Root, Plan: project.NewPlan(c.Shape, c.Database)}); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	return enc.Close()
}

// runNew executes the project creation workflow.
func runNew(cmd *cobra.Command, args []string) error {
	d := GetDeps()
	if d == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	out := cmd.OutOrStdout()

	c, err := resolveChoices(cmd, args, d)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Project creation cancelled.")
			return nil
		}
		return err
	}

	if getBoolFlag(cmd, "dry-run") {
		return writePlan(out, c)
	}

	// Errors past this point are runtime failures, not usage mistakes.
	cmd.SilenceUsage = true

	cfg := d.Config
	skipInstall := cfg.Installer.Skip || getBoolFlag(cmd, "skip-install")
	animated := !d.Headless.IsHeadless() && d.Headless.CanAnimate() && !d.Theme.NoColor

	composer := installer.NewComposer(installer.Config{
		Command: cfg.Installer.Command,
		Timeout: cfg.Installer.Timeout,
		Output:  installerOutput(out, animated),
	})
	reporter := newConsoleReporter(out, d.Theme, d.Headless, composer.Command())

	_, _ = fmt.Fprintf(out, "%s %s (%s, %s)\n\n",
		d.Theme.Title("Creating"), c.Name, c.Shape.Label(), c.Database.Label())

	gen := project.NewGenerator(
		project.WithInstaller(composer),
		project.WithReporter(reporter),
		project.WithLogger(d.Logger),
	)
	result, err := gen.Generate(cmd.Context(), project.GenerateOptions{
		Root:             c.Root,
		Name:             c.Name,
		Shape:            c.Shape,
		Database:         c.Database,
		FrameworkPackage: cfg.Framework.Package,
		FrameworkVersion: cfg.Framework.Version,
		SkipInstall:      skipInstall,
	})
	if err != nil {
		reporter.stopSpinner()
		return describeGenerateError(err, c)
	}

	details := []string{
		renderKeyValueLines(d.Theme, []kvPair{
			{"Location", result.Root},
			{"Shape", c.Shape.Label()},
			{"Database", c.Database.Label()},
			{"Directories", fmt.Sprintf("%d created", len(result.CreatedDirs))},
			{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
		}),
	}
	installFailed := result.Status() == project.StatusSuccessWithWarning
	if installFailed {
		details = append(details, "", d.Theme.Warning("Warning: "+result.InstallErr.Error()))
		var exitErr *installer.ExitError
		if errors.As(result.InstallErr, &exitErr) && exitErr.Tail != "" && animated {
			details = append(details, d.Theme.Muted(exitErr.Tail))
		}
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard(d.Theme, "Project "+c.Name+" created", details...))
	_, _ = fmt.Fprintln(out, renderMarkdown(d.Theme, nextSteps(c.Dir, installFailed, composer.Command())))
	return nil
}

// installerOutput streams installer output when nothing animates, and
// discards it behind the spinner otherwise; the tail is kept on failure.
func installerOutput(out io.Writer, animated bool) io.Writer {
	if animated {
		return nil
	}
	return out
}

// describeGenerateError adds a user-facing hint to engine failures.
func describeGenerateError(err error, c *choices) error {
	switch project.KindOf(err) {
	case project.KindTargetExists:
		return fmt.Errorf("directory %q already exists; choose another name or remove it: %w", c.Dir, err)
	case project.KindDirectoryCreationFailed, project.KindFileWriteFailed, project.KindDependencyInstallFailed:
		return fmt.Errorf("project %q is incomplete and was not cleaned up: %w", c.Root, err)
	}
	return err
}
