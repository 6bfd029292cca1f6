// Package defs holds the names of generated files and directories and the
// permissions they are created with.
package defs

import "io/fs"

// Permissions for generated output.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)

// Directories created in every project.
const (
	ConfigDir      = "config"
	ControllersDir = "Controllers"
	LogsDir        = "logs"
	MigrationsDir  = "migrations"
	ModelsDir      = "Models"
	ProvidersDir   = "Providers"
	PublicDir      = "public"
	RoutesDir      = "routes"
)

// Shape-specific directories.
const (
	FormDir      = "Form"
	FormDataDir  = "Form/Data"
	ViewsDir     = "Views"
	ResourcesDir = "Resources"
)

// Generated file names, relative to the project root.
const (
	AuthConfig        = "config/auth.php"
	CorsConfig        = "config/cors.php"
	DatabaseConfig    = "config/database.php"
	MiddlewaresConfig = "config/middlewares.php"
	ProvidersConfig   = "config/providers.php"
	ValidationsConfig = "config/validations.php"

	BaseController      = "Controllers/Controller.php"
	InitialMigration    = "migrations/m0001_initial.php"
	UserModel           = "Models/User.php"
	AppServiceProvider  = "Providers/AppServiceProvider.php"
	UserResource        = "Resources/UserResource.php"
	WebRoutes           = "routes/web.php"
	APIRoutes           = "routes/api.php"
	PublicIndex         = "public/index.php"
	ComposerJSON        = "composer.json"
	EnvFile             = ".env"
	EnvExampleFile      = ".env.example"
	MigrationsRunnerPHP = "migrations.php"
)
