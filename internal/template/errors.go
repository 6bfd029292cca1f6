// Package template holds the catalog of files emitted into a new Nebula
// project. Templates are embedded in the binary and rendered in strict mode:
// a missing key or a leftover template token is an error, never silent output.
package template

import "errors"

var (
	// ErrTemplateNotFound indicates the named template is not in the filesystem.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateKey indicates the template referenced a key absent from the data.
	ErrMissingTemplateKey = errors.New("missing template key")

	// ErrUnexpandedToken indicates rendered output still contains template tokens.
	ErrUnexpandedToken = errors.New("unexpanded template token")

	// ErrUnknownFile indicates a FileID outside the catalog.
	ErrUnknownFile = errors.New("unknown catalog file")
)
