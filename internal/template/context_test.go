package template

import (
	"testing"

	"github.com/mawsis/nebula-cli/internal/defs"
	"github.com/mawsis/nebula-cli/pkg/models"
)

func TestNewContext_Defaults(t *testing.T) {
	ctx := NewContext()

	if ctx.Shape != string(models.ShapeFullApp) {
		t.Errorf("Shape = %q, want %q", ctx.Shape, models.ShapeFullApp)
	}
	if ctx.Database != string(models.DatabaseMySQL) {
		t.Errorf("Database = %q, want %q", ctx.Database, models.DatabaseMySQL)
	}
	if ctx.RoutesFile != defs.WebRoutes {
		t.Errorf("RoutesFile = %q, want %q", ctx.RoutesFile, defs.WebRoutes)
	}
	if ctx.FrameworkPackage != DefaultFrameworkPackage || ctx.FrameworkVersion != DefaultFrameworkVersion {
		t.Errorf("framework = %s:%s", ctx.FrameworkPackage, ctx.FrameworkVersion)
	}
	if ctx.PackageName != "app/"+fallbackPackageSlug {
		t.Errorf("PackageName = %q", ctx.PackageName)
	}
}

func TestContextOptions_IgnoreInvalidChoices(t *testing.T) {
	ctx := NewContext(WithShape("desktop"), WithDatabase("oracle"))

	if ctx.Shape != string(models.DefaultShape) {
		t.Errorf("invalid shape should be ignored, got %q", ctx.Shape)
	}
	if ctx.Database != string(models.DefaultDatabase) {
		t.Errorf("invalid database should be ignored, got %q", ctx.Database)
	}
}

func TestWithFramework_EmptyKeepsDefaults(t *testing.T) {
	ctx := NewContext(WithFramework("", "^2.0"))

	if ctx.FrameworkPackage != DefaultFrameworkPackage {
		t.Errorf("FrameworkPackage = %q", ctx.FrameworkPackage)
	}
	if ctx.FrameworkVersion != "^2.0" {
		t.Errorf("FrameworkVersion = %q", ctx.FrameworkVersion)
	}
}

func TestComposerPackageName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"nebula-app", "app/nebula-app"},
		{"My Shop", "app/my-shop"},
		{"Café Crème", "app/cafe-creme"},
		{"  --weird__name!! ", "app/weird-name"},
		{"v2 API", "app/v2-api"},
		{"", "app/nebula-project"},
		{"日本", "app/nebula-project"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ComposerPackageName(tt.in); got != tt.want {
				t.Errorf("ComposerPackageName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
