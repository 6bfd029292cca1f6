package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/uuid"

	"github.com/mawsis/nebula-cli/internal/defs"
	"github.com/mawsis/nebula-cli/internal/template"
	"github.com/mawsis/nebula-cli/pkg/models"
	"github.com/mawsis/nebula-cli/pkg/version"
)

// Installer resolves the generated project's dependencies inside dir.
type Installer interface {
	Install(ctx context.Context, dir string) error
}

// FilesystemFactory returns the filesystem all plan writes go through,
// rooted at the freshly created project directory.
type FilesystemFactory func(root string) billy.Filesystem

// GenerateOptions configures one scaffolding run.
type GenerateOptions struct {
	Root             string          // Project directory to create. Must not exist.
	Name             string          // Project name, used for display and composer metadata.
	Shape            models.AppShape // Full app or API only.
	Database         models.Database // Backend written to config/database.php.
	FrameworkPackage string          // Composer package of the framework, or "" for the default.
	FrameworkVersion string          // Version constraint of the framework, or "" for the default.
	SkipInstall      bool            // If true, the installer is not run.
}

// Status summarizes a completed run.
type Status int

const (
	StatusSuccess Status = iota
	StatusSuccessWithWarning
)

// String returns the status name.
func (s Status) String() string {
	if s == StatusSuccessWithWarning {
		return "success_with_warning"
	}
	return "success"
}

// Result summarizes a completed run. Hard failures are returned as errors
// instead; a Result is only produced once every planned file is on disk.
type Result struct {
	RunID          string
	Root           string // Absolute project path.
	Plan           Plan
	CreatedDirs    []string // Relative to Root, in creation order.
	CreatedFiles   []string // Relative to Root, in write order.
	InstallSkipped bool
	InstallErr     error    // *GenerateError of KindDependencyInstallFailed, if the installer failed.
	Warnings       []string // Non-fatal problems.
}

// Status reports StatusSuccessWithWarning when the installer failed.
func (r *Result) Status() Status {
	if r.InstallErr != nil {
		return StatusSuccessWithWarning
	}
	return StatusSuccess
}

// Generator materializes layout plans on disk.
type Generator struct {
	catalog   *template.Catalog
	installer Installer
	reporter  Reporter
	logger    *slog.Logger
	newFS     FilesystemFactory
}

// Option configures a Generator.
type Option func(*Generator)

// WithInstaller sets the installer run after all files are written.
// Without one, the install step is skipped.
func WithInstaller(i Installer) Option {
	return func(g *Generator) { g.installer = i }
}

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(g *Generator) {
		if r != nil {
			g.reporter = r
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithCatalog overrides the template catalog.
func WithCatalog(c *template.Catalog) Option {
	return func(g *Generator) {
		if c != nil {
			g.catalog = c
		}
	}
}

// WithFilesystem overrides how the project filesystem is opened.
func WithFilesystem(f FilesystemFactory) Option {
	return func(g *Generator) {
		if f != nil {
			g.newFS = f
		}
	}
}

// NewGenerator creates a Generator. By default it renders the embedded
// catalog, writes through an OS filesystem bound to the project root,
// reports nothing, and logs nowhere.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		catalog:  template.Default(),
		reporter: NopReporter(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		newFS:    boundOSFilesystem,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func boundOSFilesystem(root string) billy.Filesystem {
	return osfs.New(root, osfs.WithBoundOS())
}

// Generate creates the project directory, every planned directory and file,
// then runs the installer.
//
// The pipeline stops at the first hard failure and does not roll back:
// directories and files written before the failure stay on disk. Only a
// pre-existing target guarantees that nothing was written.
func (g *Generator) Generate(ctx context.Context, opts GenerateOptions) (*Result, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(filepath.Clean(opts.Root))
	if err != nil {
		return nil, fmt.Errorf("%w: resolve root %q: %v", ErrInvalidOptions, opts.Root, err)
	}

	runID := uuid.NewString()
	logger := g.logger.With("run", runID)
	logger.Info("generating project",
		"root", root,
		"name", opts.Name,
		"shape", opts.Shape,
		"database", opts.Database,
	)

	if err := createRoot(root); err != nil {
		logger.Warn("project directory unavailable", "root", root, "error", err)
		return nil, err
	}
	g.reporter.Report(Event{Kind: EventProjectCreated, Path: root})

	plan := NewPlan(opts.Shape, opts.Database)
	result := &Result{RunID: runID, Root: root, Plan: plan}
	pfs := g.newFS(root)

	for _, dir := range plan.Directories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := pfs.MkdirAll(dir, defs.DirPerm); err != nil {
			logger.Error("directory creation failed", "dir", dir, "error", err)
			return nil, &GenerateError{Kind: KindDirectoryCreationFailed, Path: dir, Err: err}
		}
		result.CreatedDirs = append(result.CreatedDirs, dir)
		g.reporter.Report(Event{Kind: EventDirectoryCreated, Path: dir})
	}

	tmplCtx := template.NewContext(
		template.WithProject(opts.Name),
		template.WithShape(plan.Shape),
		template.WithDatabase(plan.Database),
		template.WithFramework(opts.FrameworkPackage, opts.FrameworkVersion),
		template.WithVersion(version.GetVersion()),
	)
	for _, f := range plan.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content := g.catalog.MustRender(f.File, tmplCtx)
		if err := writeNewFile(pfs, f.Path, content); err != nil {
			logger.Error("file write failed", "file", f.Path, "error", err)
			return nil, &GenerateError{Kind: KindFileWriteFailed, Path: f.Path, Err: err}
		}
		result.CreatedFiles = append(result.CreatedFiles, f.Path)
		g.reporter.Report(Event{Kind: EventFileWritten, Path: f.Path})
	}

	// Installer failure is a warning; the project is already complete.
	// Cancellation of ctx while it runs is not.
	if opts.SkipInstall || g.installer == nil {
		result.InstallSkipped = true
		g.reporter.Report(Event{Kind: EventInstallSkipped})
	} else {
		g.reporter.Report(Event{Kind: EventInstallStarted})
		if err := g.installer.Install(ctx, root); err != nil {
			installErr := &GenerateError{Kind: KindDependencyInstallFailed, Path: root, Err: err}
			if cerr := ctx.Err(); cerr != nil {
				installErr.Err = cerr
				logger.Warn("dependency installation interrupted", "error", err)
				g.reporter.Report(Event{Kind: EventInstallFailed, Err: installErr})
				return nil, installErr
			}
			result.InstallErr = installErr
			result.Warnings = append(result.Warnings, installErr.Error())
			logger.Warn("dependency installation failed", "error", err)
			g.reporter.Report(Event{Kind: EventInstallFailed, Err: installErr})
		} else {
			g.reporter.Report(Event{Kind: EventInstallFinished})
		}
	}

	logger.Info("project generated",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
		"status", result.Status(),
	)
	return result, nil
}

func validateOptions(opts GenerateOptions) error {
	var problems []string
	if strings.TrimSpace(opts.Root) == "" {
		problems = append(problems, "root is empty")
	}
	if strings.TrimSpace(opts.Name) == "" {
		problems = append(problems, "name is empty")
	}
	if !opts.Shape.IsValid() {
		problems = append(problems, fmt.Sprintf("shape %q", opts.Shape))
	}
	if !opts.Database.IsValid() {
		problems = append(problems, fmt.Sprintf("database %q", opts.Database))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidOptions, strings.Join(problems, ", "))
	}
	return nil
}

// createRoot creates root, failing with KindTargetExists if anything already
// occupies the path. The final os.Mkdir refuses existing targets, so a
// concurrent creator between the check and the create is still detected.
func createRoot(root string) error {
	if _, err := os.Lstat(root); err == nil {
		return &GenerateError{Kind: KindTargetExists, Path: root}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return &GenerateError{Kind: KindDirectoryCreationFailed, Path: root, Err: err}
	}

	if parent := filepath.Dir(root); parent != root {
		if err := os.MkdirAll(parent, defs.DirPerm); err != nil {
			return &GenerateError{Kind: KindDirectoryCreationFailed, Path: parent, Err: err}
		}
	}
	if err := os.Mkdir(root, defs.DirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &GenerateError{Kind: KindTargetExists, Path: root}
		}
		return &GenerateError{Kind: KindDirectoryCreationFailed, Path: root, Err: err}
	}
	return nil
}

// writeNewFile writes data to name, refusing to replace an existing file.
func writeNewFile(fsys billy.Filesystem, name string, data []byte) error {
	f, err := fsys.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, defs.FilePerm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
