// Package wizard asks the user for the application shape and database of a
// new project through huh select forms.
package wizard

import (
	"errors"

	"github.com/mawsis/nebula-cli/pkg/models"
)

// Question IDs.
const (
	QuestionShape    = "shape"
	QuestionDatabase = "database"
)

// Result holds the user's selections.
type Result struct {
	Shape    models.AppShape
	Database models.Database
}

// Defaults preselects answers. Zero values fall back to the package
// defaults (full app, MySQL).
type Defaults struct {
	Shape    models.AppShape
	Database models.Database
}

func (d Defaults) resolve() *Result {
	r := &Result{Shape: d.Shape, Database: d.Database}
	if !r.Shape.IsValid() {
		r.Shape = models.DefaultShape
	}
	if !r.Database.IsValid() {
		r.Database = models.DefaultDatabase
	}
	return r
}

// Question defines a single select question.
type Question struct {
	ID          string   // Unique identifier
	Title       string   // Question title
	Description string   // Additional description
	Options     []Option // Choices, default first
	Default     string   // Value of the preselected option
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrInvalidAnswer is returned when an answer is not one of the options.
	ErrInvalidAnswer = errors.New("invalid answer")
)
