package template

// Binding maps a registry key to a fully qualified PHP class. The generated
// project resolves keys to handlers at runtime; the scaffolder only declares them.
type Binding struct {
	Key   string
	Class string
}

// Service declares a container registration in the generated AppServiceProvider.
// Shared services are registered as singletons, the rest as factories.
type Service struct {
	Key         string
	Constructor string
	Shared      bool
}

// DefaultMiddlewares is written to config/middlewares.php.
var DefaultMiddlewares = []Binding{
	{Key: "json", Class: `Nebula\Core\Middlewares\JsonMiddleware`},
	{Key: "auth", Class: `Nebula\Core\Middlewares\AuthMiddleware`},
	{Key: "csrf", Class: `Nebula\Core\Middlewares\CsrfMiddleware`},
	{Key: "jwt", Class: `Nebula\Core\Middlewares\JwtMiddleware`},
	{Key: "cors", Class: `Nebula\Core\Middlewares\CorsMiddleware`},
}

// DefaultValidationRules is written to config/validations.php.
var DefaultValidationRules = []Binding{
	{Key: "required", Class: `Nebula\Core\Validation\RequiredValidation`},
	{Key: "min", Class: `Nebula\Core\Validation\MinValidation`},
	{Key: "max", Class: `Nebula\Core\Validation\MaxValidation`},
	{Key: "email", Class: `Nebula\Core\Validation\EmailValidation`},
	{Key: "unique", Class: `Nebula\Core\Validation\UniqueValidation`},
	{Key: "exists", Class: `Nebula\Core\Validation\ExistsValidation`},
}

// DefaultProviders is written to config/providers.php.
var DefaultProviders = []string{
	`App\Providers\AppServiceProvider`,
}

// CoreServices are the framework singletons registered by AppServiceProvider.
var CoreServices = []Service{
	{Key: "db", Constructor: "new Database()", Shared: true},
	{Key: "auth", Constructor: "new Auth()", Shared: false},
	{Key: "logger", Constructor: "Logger::getLogger()", Shared: true},
	{Key: "session", Constructor: "new Session()", Shared: true},
	{Key: "handler", Constructor: "new Handler()", Shared: true},
	{Key: "route", Constructor: "new Router()", Shared: true},
}
