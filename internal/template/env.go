package template

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/mawsis/nebula-cli/pkg/models"
)

// envDefaults returns the variables written to .env and .env.example. Both
// files start out identical; secrets are left empty for the developer to fill.
// For SQLite DB_NAME is left empty so config/database.php falls back to
// database.sqlite in the project root.
func envDefaults(ctx *Context) map[string]string {
	dbName := "nebula"
	if ctx.Database == string(models.DatabaseSQLite) {
		dbName = ""
	}
	return map[string]string{
		"APP_NAME":          ctx.ProjectName,
		"APP_ENV":           "local",
		"APP_DEBUG":         "true",
		"APP_KEY":           "base64:random_generated_key_here",
		"DB_CONNECTION":     "",
		"DB_HOST":           "127.0.0.1",
		"DB_PORT":           "",
		"DB_NAME":           dbName,
		"DB_USER":           "root",
		"DB_PASSWORD":       "",
		"JWT_SECRET":        "",
		"CORS_ALLOW_ORIGIN": "*",
	}
}

// renderEnv serializes the environment defaults in dotenv format, sorted by key.
func renderEnv(ctx *Context) ([]byte, error) {
	out, err := godotenv.Marshal(envDefaults(ctx))
	if err != nil {
		return nil, fmt.Errorf("marshal env: %w", err)
	}
	return []byte(out + "\n"), nil
}
