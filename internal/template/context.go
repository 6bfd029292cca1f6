package template

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mawsis/nebula-cli/internal/defs"
	"github.com/mawsis/nebula-cli/pkg/models"
)

// Framework defaults written into composer.json.
const (
	DefaultFrameworkPackage = "mawsis/nebula-php"
	DefaultFrameworkVersion = "dev-main"
	fallbackPackageSlug     = "nebula-project"
)

// Context provides data for rendering catalog files.
// All fields are exported for use with Go's text/template package.
type Context struct {
	// Project
	ProjectName string
	PackageName string // composer package name, e.g. "app/my-shop"

	// Choices
	Shape         string
	Database      string
	DatabaseLabel string
	DBDriver      string
	DBPort        string
	RoutesFile    string // routes file included by public/index.php

	// composer.json requirements
	FrameworkPackage string
	FrameworkVersion string

	// Registries declared in config/ and Providers/
	Middlewares     []Binding
	ValidationRules []Binding
	Providers       []string
	Services        []Service

	// Version of the scaffolder that produced the project
	Version string
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// NewContext creates a Context for the default choices (full app, MySQL),
// then applies any provided options.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{
		FrameworkPackage: DefaultFrameworkPackage,
		FrameworkVersion: DefaultFrameworkVersion,
		Middlewares:      DefaultMiddlewares,
		ValidationRules:  DefaultValidationRules,
		Providers:        DefaultProviders,
		Services:         CoreServices,
	}
	WithShape(models.DefaultShape)(c)
	WithDatabase(models.DefaultDatabase)(c)
	WithProject("")(c)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithProject sets the project name and the composer package name derived from it.
func WithProject(name string) ContextOption {
	return func(c *Context) {
		c.ProjectName = name
		c.PackageName = ComposerPackageName(name)
	}
}

// WithShape sets the application shape and the routes file the entry point includes.
func WithShape(shape models.AppShape) ContextOption {
	return func(c *Context) {
		if !shape.IsValid() {
			return
		}
		c.Shape = string(shape)
		if shape == models.ShapeAPIOnly {
			c.RoutesFile = defs.APIRoutes
		} else {
			c.RoutesFile = defs.WebRoutes
		}
	}
}

// WithDatabase sets the database choice encoded in config/database.php.
func WithDatabase(db models.Database) ContextOption {
	return func(c *Context) {
		if !db.IsValid() {
			return
		}
		c.Database = string(db)
		c.DatabaseLabel = db.Label()
		c.DBDriver = db.Driver()
		c.DBPort = db.DefaultPort()
	}
}

// WithFramework overrides the framework package and version constraint.
// Empty values keep the defaults.
func WithFramework(pkg, version string) ContextOption {
	return func(c *Context) {
		if pkg != "" {
			c.FrameworkPackage = pkg
		}
		if version != "" {
			c.FrameworkVersion = version
		}
	}
}

// WithVersion records the scaffolder version.
func WithVersion(version string) ContextOption {
	return func(c *Context) {
		c.Version = version
	}
}

// ComposerPackageName derives a valid composer package name ("vendor/name")
// from a free-form project name. Accents are folded, everything outside
// [a-z0-9] collapses to single hyphens.
func ComposerPackageName(projectName string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, projectName)
	if err != nil {
		folded = projectName
	}
	folded = cases.Lower(language.Und).String(folded)

	var b strings.Builder
	pendingDash := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}

	slug := b.String()
	if slug == "" {
		slug = fallbackPackageSlug
	}
	return "app/" + slug
}
