package template

import (
	"fmt"
	"slices"
	"sync"
)

// FileID identifies a file in the catalog, independent of where the
// planner places it.
type FileID string

const (
	FileAuthConfig         FileID = "auth-config"
	FileCorsConfig         FileID = "cors-config"
	FileDatabaseConfig     FileID = "database-config"
	FileMiddlewaresConfig  FileID = "middlewares-config"
	FileProvidersConfig    FileID = "providers-config"
	FileValidationsConfig  FileID = "validations-config"
	FileBaseController     FileID = "base-controller"
	FileInitialMigration   FileID = "initial-migration"
	FileUserModel          FileID = "user-model"
	FileAppServiceProvider FileID = "app-service-provider"
	FileUserResource       FileID = "user-resource"
	FileWebRoutes          FileID = "web-routes"
	FileAPIRoutes          FileID = "api-routes"
	FilePublicIndex        FileID = "public-index"
	FileComposerManifest   FileID = "composer-manifest"
	FileEnv                FileID = "env"
	FileMigrationsRunner   FileID = "migrations-runner"
)

// entry describes how a catalog file is produced: either from an embedded
// template or from a builder function.
type entry struct {
	template string
	build    func(*Context) ([]byte, error)
}

var catalogEntries = map[FileID]entry{
	FileAuthConfig:         {template: "config/auth.php.tmpl"},
	FileCorsConfig:         {template: "config/cors.php.tmpl"},
	FileDatabaseConfig:     {template: "config/database.php.tmpl"},
	FileMiddlewaresConfig:  {template: "config/middlewares.php.tmpl"},
	FileProvidersConfig:    {template: "config/providers.php.tmpl"},
	FileValidationsConfig:  {template: "config/validations.php.tmpl"},
	FileBaseController:     {template: "Controllers/Controller.php.tmpl"},
	FileInitialMigration:   {template: "migrations/m0001_initial.php.tmpl"},
	FileUserModel:          {template: "Models/User.php.tmpl"},
	FileAppServiceProvider: {template: "Providers/AppServiceProvider.php.tmpl"},
	FileUserResource:       {template: "Resources/UserResource.php.tmpl"},
	FileWebRoutes:          {template: "routes/web.php.tmpl"},
	FileAPIRoutes:          {template: "routes/api.php.tmpl"},
	FilePublicIndex:        {template: "public/index.php.tmpl"},
	FileComposerManifest:   {template: "root/composer.json.tmpl"},
	FileEnv:                {build: renderEnv},
	FileMigrationsRunner:   {template: "root/migrations.php.tmpl"},
}

// Files returns every catalog identifier, sorted.
func Files() []FileID {
	ids := make([]FileID, 0, len(catalogEntries))
	for id := range catalogEntries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Known reports whether id is in the catalog.
func Known(id FileID) bool {
	_, ok := catalogEntries[id]
	return ok
}

// Catalog renders catalog files through a Renderer.
type Catalog struct {
	renderer Renderer
}

// NewCatalog creates a Catalog that reads templates through r.
func NewCatalog(r Renderer) *Catalog {
	return &Catalog{renderer: r}
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		panic(fmt.Sprintf("template: embedded templates unavailable: %v", err))
	}
	return NewCatalog(NewRenderer(fsys))
})

// Default returns the catalog backed by the embedded templates.
func Default() *Catalog {
	return defaultCatalog()
}

// Render produces the content of the file identified by id.
func (c *Catalog) Render(id FileID, ctx *Context) ([]byte, error) {
	e, ok := catalogEntries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFile, id)
	}
	if ctx == nil {
		ctx = NewContext()
	}
	if e.build != nil {
		return e.build(ctx)
	}
	out, err := c.renderer.Render(e.template, ctx)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", id, err)
	}
	return out, nil
}

// MustRender is like Render but panics on error. Catalog files are built in
// and covered by tests, so a failure here is a programming error.
func (c *Catalog) MustRender(id FileID, ctx *Context) []byte {
	out, err := c.Render(id, ctx)
	if err != nil {
		panic(fmt.Sprintf("template: %v", err))
	}
	return out
}

// Render renders id from the default catalog, panicking on unknown identifiers.
func Render(id FileID, ctx *Context) []byte {
	return Default().MustRender(id, ctx)
}
