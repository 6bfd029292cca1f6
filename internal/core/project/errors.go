// Package project implements the scaffold-generation engine behind
// "nebula new": the layout planner that maps the user's choices to a set of
// directories and files, and the generator that materializes that plan on
// disk and runs the dependency installer.
package project

import (
	"errors"
	"fmt"
)

// Sentinel errors for the project package.
var (
	// ErrTargetExists indicates the project directory is already present.
	ErrTargetExists = errors.New("target directory already exists")

	// ErrDirectoryCreation indicates a planned directory could not be created.
	ErrDirectoryCreation = errors.New("directory creation failed")

	// ErrFileWrite indicates a planned file could not be written.
	ErrFileWrite = errors.New("file write failed")

	// ErrDependencyInstall indicates the installer exited unsuccessfully.
	ErrDependencyInstall = errors.New("dependency installation failed")

	// ErrInvalidOptions indicates GenerateOptions failed validation.
	ErrInvalidOptions = errors.New("invalid generate options")

	// ErrInvalidPlan indicates a layout plan violates its structural invariants.
	ErrInvalidPlan = errors.New("invalid layout plan")
)

// Kind classifies a generation failure.
type Kind int

const (
	KindTargetExists Kind = iota + 1
	KindDirectoryCreationFailed
	KindFileWriteFailed
	KindDependencyInstallFailed
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindTargetExists:
		return "TargetExists"
	case KindDirectoryCreationFailed:
		return "DirectoryCreationFailed"
	case KindFileWriteFailed:
		return "FileWriteFailed"
	case KindDependencyInstallFailed:
		return "DependencyInstallFailed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) sentinel() error {
	switch k {
	case KindTargetExists:
		return ErrTargetExists
	case KindDirectoryCreationFailed:
		return ErrDirectoryCreation
	case KindFileWriteFailed:
		return ErrFileWrite
	case KindDependencyInstallFailed:
		return ErrDependencyInstall
	}
	return nil
}

// GenerateError reports which step failed and on which path.
// errors.Is matches both the kind's sentinel and the underlying cause.
type GenerateError struct {
	Kind Kind
	Path string
	Err  error
}

// Error implements the error interface.
func (e *GenerateError) Error() string {
	msg := e.Kind.String()
	if s := e.Kind.sentinel(); s != nil {
		msg = s.Error()
	}
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *GenerateError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *GenerateError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the Kind of err, or 0 if err is not a *GenerateError.
func KindOf(err error) Kind {
	var ge *GenerateError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return 0
}
