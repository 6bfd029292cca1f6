// Package models defines the user-facing choices that drive project scaffolding:
// the application shape (full MVC app or API only) and the database backend.
package models
