package project

import (
	"fmt"
	"path"
	"strings"

	"github.com/mawsis/nebula-cli/internal/defs"
	"github.com/mawsis/nebula-cli/internal/template"
	"github.com/mawsis/nebula-cli/pkg/models"
)

// FileSpec places one catalog file at a path relative to the project root.
type FileSpec struct {
	Path string          `yaml:"path"`
	File template.FileID `yaml:"template"`
}

// Plan is the ordered set of directories and files for one run.
// Directories are always created before any file is written.
type Plan struct {
	Shape       models.AppShape `yaml:"shape"`
	Database    models.Database `yaml:"database"`
	Directories []string        `yaml:"directories"`
	Files       []FileSpec      `yaml:"files"`
}

// baseDirs lists the directories every project gets, in creation order.
var baseDirs = []string{
	defs.ConfigDir,
	defs.ControllersDir,
	defs.LogsDir,
	defs.MigrationsDir,
	defs.ModelsDir,
	defs.ProvidersDir,
	defs.PublicDir,
	defs.RoutesDir,
}

var fullAppDirs = []string{
	defs.FormDir,
	defs.FormDataDir,
	defs.ViewsDir,
}

var apiOnlyDirs = []string{
	defs.ResourcesDir,
}

// configFiles are planned for every shape and database.
var configFiles = []FileSpec{
	{Path: defs.AuthConfig, File: template.FileAuthConfig},
	{Path: defs.CorsConfig, File: template.FileCorsConfig},
	{Path: defs.DatabaseConfig, File: template.FileDatabaseConfig},
	{Path: defs.MiddlewaresConfig, File: template.FileMiddlewaresConfig},
	{Path: defs.ProvidersConfig, File: template.FileProvidersConfig},
	{Path: defs.ValidationsConfig, File: template.FileValidationsConfig},
}

var coreFiles = []FileSpec{
	{Path: defs.BaseController, File: template.FileBaseController},
	{Path: defs.InitialMigration, File: template.FileInitialMigration},
	{Path: defs.UserModel, File: template.FileUserModel},
	{Path: defs.AppServiceProvider, File: template.FileAppServiceProvider},
}

var rootFiles = []FileSpec{
	{Path: defs.PublicIndex, File: template.FilePublicIndex},
	{Path: defs.ComposerJSON, File: template.FileComposerManifest},
	{Path: defs.EnvFile, File: template.FileEnv},
	{Path: defs.EnvExampleFile, File: template.FileEnv},
	{Path: defs.MigrationsRunnerPHP, File: template.FileMigrationsRunner},
}

// NewPlan maps the user's choices to a layout. It is pure and deterministic.
// Invalid choices fall back to the defaults (full app, MySQL).
//
// The database choice is recorded on the plan but does not change the
// directory or file set; it only reaches the rendered database config.
func NewPlan(shape models.AppShape, db models.Database) Plan {
	if !shape.IsValid() {
		shape = models.DefaultShape
	}
	if !db.IsValid() {
		db = models.DefaultDatabase
	}

	p := Plan{Shape: shape, Database: db}

	p.Directories = append(p.Directories, baseDirs...)
	if shape == models.ShapeAPIOnly {
		p.Directories = append(p.Directories, apiOnlyDirs...)
	} else {
		p.Directories = append(p.Directories, fullAppDirs...)
	}

	p.Files = append(p.Files, configFiles...)
	p.Files = append(p.Files, coreFiles...)
	if shape == models.ShapeAPIOnly {
		p.Files = append(p.Files,
			FileSpec{Path: defs.UserResource, File: template.FileUserResource},
			FileSpec{Path: defs.APIRoutes, File: template.FileAPIRoutes},
		)
	} else {
		p.Files = append(p.Files, FileSpec{Path: defs.WebRoutes, File: template.FileWebRoutes})
	}
	p.Files = append(p.Files, rootFiles...)

	return p
}

// HasDirectory reports whether dir is planned.
func (p Plan) HasDirectory(dir string) bool {
	for _, d := range p.Directories {
		if d == dir {
			return true
		}
	}
	return false
}

// HasFile reports whether a file is planned at rel.
func (p Plan) HasFile(rel string) bool {
	for _, f := range p.Files {
		if f.Path == rel {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants of the plan: paths are relative
// and stay inside the project, every directory's parent is planned before it,
// every file's directory is planned, and every file has a catalog entry.
func (p Plan) Validate() error {
	seen := make(map[string]bool, len(p.Directories))
	for _, dir := range p.Directories {
		if err := checkRelative(dir); err != nil {
			return err
		}
		if seen[dir] {
			return fmt.Errorf("%w: directory %q planned twice", ErrInvalidPlan, dir)
		}
		if parent := path.Dir(dir); parent != "." && !seen[parent] {
			return fmt.Errorf("%w: directory %q planned before its parent %q", ErrInvalidPlan, dir, parent)
		}
		seen[dir] = true
	}

	files := make(map[string]bool, len(p.Files))
	for _, f := range p.Files {
		if err := checkRelative(f.Path); err != nil {
			return err
		}
		if files[f.Path] {
			return fmt.Errorf("%w: file %q planned twice", ErrInvalidPlan, f.Path)
		}
		files[f.Path] = true
		if dir := path.Dir(f.Path); dir != "." && !seen[dir] {
			return fmt.Errorf("%w: file %q has no planned directory %q", ErrInvalidPlan, f.Path, dir)
		}
		if !template.Known(f.File) {
			return fmt.Errorf("%w: file %q uses unknown template %q", ErrInvalidPlan, f.Path, f.File)
		}
	}
	return nil
}

func checkRelative(p string) error {
	if p == "" || path.IsAbs(p) || strings.HasPrefix(p, "\\") || path.Clean(p) != p {
		return fmt.Errorf("%w: path %q must be clean and relative", ErrInvalidPlan, p)
	}
	if p == ".." || strings.HasPrefix(p, "../") {
		return fmt.Errorf("%w: path %q escapes the project root", ErrInvalidPlan, p)
	}
	return nil
}
