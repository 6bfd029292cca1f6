package models

import "errors"

var (
	// ErrInvalidShape indicates an unrecognized application shape.
	ErrInvalidShape = errors.New("invalid application shape")

	// ErrInvalidDatabase indicates an unrecognized database choice.
	ErrInvalidDatabase = errors.New("invalid database choice")
)
