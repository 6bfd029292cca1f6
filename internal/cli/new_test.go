package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mawsis/nebula-cli/internal/cli/wizard"
	"github.com/mawsis/nebula-cli/internal/config"
	"github.com/mawsis/nebula-cli/internal/core/project"
	"github.com/mawsis/nebula-cli/internal/defs"
	"github.com/mawsis/nebula-cli/internal/ui"
	"github.com/mawsis/nebula-cli/pkg/models"
)

// testDeps installs headless, colourless dependencies for one test.
func testDeps(t *testing.T, mutate func(*config.Config)) {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.Installer.Skip = true
	if mutate != nil {
		mutate(cfg)
	}
	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)

	SetDeps(&Dependencies{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Headless: hm,
		Theme:    ui.NewTheme(ui.ThemeConfig{NoColor: true}),
	})
	t.Cleanup(func() { SetDeps(nil) })
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestNew_CreatesProject(t *testing.T) {
	testDeps(t, nil)
	root := filepath.Join(t.TempDir(), "shop")

	out, err := runCLI(t, "new", root, "--type", "api", "--database", "sqlite")
	require.NoError(t, err, out)

	assert.FileExists(t, filepath.Join(root, defs.ComposerJSON))
	assert.FileExists(t, filepath.Join(root, defs.APIRoutes))
	assert.DirExists(t, filepath.Join(root, defs.ResourcesDir))

	assert.Contains(t, out, "📂 Created: config/")
	assert.Contains(t, out, "📝 Created: composer.json")
	assert.Contains(t, out, "Dependency installation skipped")
	assert.Contains(t, out, "Project shop created")
	assert.Contains(t, out, "cd "+root+" && php -S localhost:8000 -t public")

	cfg, err := os.ReadFile(filepath.Join(root, defs.DatabaseConfig))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "sqlite")
}

func TestNew_HeadlessUsesDefaults(t *testing.T) {
	testDeps(t, nil)
	root := filepath.Join(t.TempDir(), "site")

	_, err := runCLI(t, "new", root)
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(root, defs.ViewsDir))
	assert.FileExists(t, filepath.Join(root, defs.WebRoutes))
	cfg, err := os.ReadFile(filepath.Join(root, defs.DatabaseConfig))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "mysql")
}

func TestNew_DefaultNameFromConfig(t *testing.T) {
	testDeps(t, func(c *config.Config) { c.DefaultName = "from-config" })
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := runCLI(t, "new")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "from-config", defs.ComposerJSON))
}

func TestNew_NextStepsUseTypedPath(t *testing.T) {
	testDeps(t, nil)
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.Mkdir("apps", 0o755))

	out, err := runCLI(t, "new", filepath.Join("apps", "shop"))
	require.NoError(t, err, out)
	assert.Contains(t, out, "Project shop created")
	assert.Contains(t, out, "cd "+filepath.Join("apps", "shop")+" && php -S localhost:8000 -t public")
}

func TestNew_WizardKeepsFlagChoice(t *testing.T) {
	testDeps(t, nil)
	GetDeps().Headless.ForceHeadless(false)

	var asked []string
	orig := runWizard
	runWizard = func(d wizard.Defaults, qs []wizard.Question) (*wizard.Result, error) {
		for _, q := range qs {
			asked = append(asked, q.ID)
		}
		// Report the package default for the unasked shape.
		return &wizard.Result{Shape: models.ShapeFullApp, Database: models.DatabaseSQLite}, nil
	}
	t.Cleanup(func() { runWizard = orig })

	root := filepath.Join(t.TempDir(), "shop")
	out, err := runCLI(t, "new", root, "--type", "api")
	require.NoError(t, err, out)

	assert.Equal(t, []string{wizard.QuestionDatabase}, asked)
	assert.FileExists(t, filepath.Join(root, defs.APIRoutes))
	assert.NoDirExists(t, filepath.Join(root, defs.ViewsDir))
	cfg, err := os.ReadFile(filepath.Join(root, defs.DatabaseConfig))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "sqlite")
}

func TestNew_WizardCancelled(t *testing.T) {
	testDeps(t, nil)
	GetDeps().Headless.ForceHeadless(false)

	orig := runWizard
	runWizard = func(wizard.Defaults, []wizard.Question) (*wizard.Result, error) {
		return nil, wizard.ErrCancelled
	}
	t.Cleanup(func() { runWizard = orig })

	root := filepath.Join(t.TempDir(), "shop")
	out, err := runCLI(t, "new", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Project creation cancelled.")
	assert.NoDirExists(t, root)
}

func TestNew_TargetExists(t *testing.T) {
	testDeps(t, nil)
	root := filepath.Join(t.TempDir(), "shop")
	require.NoError(t, os.Mkdir(root, 0o755))

	out, err := runCLI(t, "new", root)
	require.Error(t, err)
	assert.ErrorIs(t, err, project.ErrTargetExists)
	assert.Contains(t, err.Error(), "already exists")
	assert.NotContains(t, out, "Created:")

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNew_DryRun(t *testing.T) {
	testDeps(t, nil)
	root := filepath.Join(t.TempDir(), "shop")

	out, err := runCLI(t, "new", root, "--dry-run", "--type", "full", "--database", "postgres")
	require.NoError(t, err)
	assert.NoDirExists(t, root)

	var doc struct {
		Name string `yaml:"name"`
		Root string `yaml:"root"`
		Plan struct {
			Shape       string   `yaml:"shape"`
			Database    string   `yaml:"database"`
			Directories []string `yaml:"directories"`
			Files       []struct {
				Path     string `yaml:"path"`
				Template string `yaml:"template"`
			} `yaml:"files"`
		} `yaml:"plan"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc), out)
	assert.Equal(t, "shop", doc.Name)
	assert.Equal(t, root, doc.Root)
	assert.Equal(t, "full", doc.Plan.Shape)
	assert.Equal(t, "pgsql", doc.Plan.Database)
	assert.Len(t, doc.Plan.Directories, 11)
	assert.Contains(t, doc.Plan.Directories, "Form/Data")
	assert.NotEmpty(t, doc.Plan.Files)
}

func TestNew_InvalidFlags(t *testing.T) {
	testDeps(t, nil)
	root := filepath.Join(t.TempDir(), "shop")

	_, err := runCLI(t, "new", root, "--type", "desktop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--type")

	_, err = runCLI(t, "new", root, "--database", "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--database")

	_, err = runCLI(t, "new", "a", "b")
	assert.Error(t, err)
	assert.NoDirExists(t, root)
}

func TestNew_InstallerFailureIsWarning(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	script := filepath.Join(t.TempDir(), "fake-composer")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho 'Problem 1: nebula-php not found'\nexit 1\n"), 0o755))

	testDeps(t, func(c *config.Config) {
		c.Installer.Skip = false
		c.Installer.Command = script + " install"
	})
	root := filepath.Join(t.TempDir(), "shop")

	out, err := runCLI(t, "new", root)
	require.NoError(t, err, out)

	assert.FileExists(t, filepath.Join(root, defs.ComposerJSON))
	assert.Contains(t, out, "Problem 1: nebula-php not found") // streamed when headless
	assert.Contains(t, out, "Dependency installation failed")
	assert.Contains(t, out, "Warning: dependency installation failed")
	assert.Contains(t, out, "cd "+root+" && "+script+" install")
}

func TestNew_SkipInstallFlag(t *testing.T) {
	testDeps(t, func(c *config.Config) {
		c.Installer.Skip = false
		c.Installer.Command = "nebula-missing-installer"
	})
	root := filepath.Join(t.TempDir(), "shop")

	out, err := runCLI(t, "new", root, "--skip-install")
	require.NoError(t, err)
	assert.Contains(t, out, "Dependency installation skipped")
	assert.NotContains(t, out, "failed")
}

func TestDescribeGenerateError_InterruptedInstall(t *testing.T) {
	c := &choices{Name: "shop", Dir: "shop", Root: "/work/shop"}
	err := describeGenerateError(&project.GenerateError{
		Kind: project.KindDependencyInstallFailed,
		Path: c.Root,
		Err:  context.Canceled,
	}, c)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), `project "/work/shop" is incomplete`)
}
