package template

import (
	"embed"
	"io/fs"
)

//go:embed templates
var embeddedTemplates embed.FS

// EmbeddedTemplates returns the built-in templates rooted at the templates directory.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embeddedTemplates, "templates")
}
