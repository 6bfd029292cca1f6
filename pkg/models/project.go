package models

import (
	"fmt"
	"strings"
)

// AppShape selects which directories and route style are scaffolded.
type AppShape string

const (
	// ShapeFullApp scaffolds an MVC application with forms and views.
	ShapeFullApp AppShape = "full"

	// ShapeAPIOnly scaffolds a JSON API with resource transformers.
	ShapeAPIOnly AppShape = "api"
)

// DefaultShape is used when no shape is chosen.
const DefaultShape = ShapeFullApp

// ValidShapes returns all valid application shapes in display order.
func ValidShapes() []AppShape {
	return []AppShape{ShapeFullApp, ShapeAPIOnly}
}

// IsValid checks if the shape is a known value.
func (s AppShape) IsValid() bool {
	switch s {
	case ShapeFullApp, ShapeAPIOnly:
		return true
	}
	return false
}

// Label returns the human-readable label shown in prompts.
func (s AppShape) Label() string {
	switch s {
	case ShapeFullApp:
		return "Full App (MVC)"
	case ShapeAPIOnly:
		return "API Only"
	}
	return string(s)
}

// ParseShape accepts a shape value ("full", "api") or its label, case-insensitively.
func ParseShape(v string) (AppShape, error) {
	v = strings.TrimSpace(v)
	for _, s := range ValidShapes() {
		if strings.EqualFold(v, string(s)) || strings.EqualFold(v, s.Label()) {
			return s, nil
		}
	}
	switch strings.ToLower(v) {
	case "mvc", "web":
		return ShapeFullApp, nil
	}
	return "", fmt.Errorf("%w: %q (want full or api)", ErrInvalidShape, v)
}

// Database selects the backend encoded in the generated database configuration.
type Database string

const (
	DatabaseMySQL      Database = "mysql"
	DatabasePostgreSQL Database = "pgsql"
	DatabaseSQLite     Database = "sqlite"
	DatabaseNone       Database = "none"
)

// DefaultDatabase is used when no database is chosen.
const DefaultDatabase = DatabaseMySQL

// ValidDatabases returns all valid database choices in display order.
func ValidDatabases() []Database {
	return []Database{DatabaseMySQL, DatabasePostgreSQL, DatabaseSQLite, DatabaseNone}
}

// IsValid checks if the database is a known value.
func (d Database) IsValid() bool {
	switch d {
	case DatabaseMySQL, DatabasePostgreSQL, DatabaseSQLite, DatabaseNone:
		return true
	}
	return false
}

// Label returns the human-readable label shown in prompts.
func (d Database) Label() string {
	switch d {
	case DatabaseMySQL:
		return "MySQL"
	case DatabasePostgreSQL:
		return "PostgreSQL"
	case DatabaseSQLite:
		return "SQLite"
	case DatabaseNone:
		return "None"
	}
	return string(d)
}

// Driver returns the PDO driver token for the database. DatabaseNone has no
// driver and returns "none".
func (d Database) Driver() string {
	return string(d)
}

// DefaultPort returns the conventional TCP port, or "" for file-based or absent databases.
func (d Database) DefaultPort() string {
	switch d {
	case DatabaseMySQL:
		return "3306"
	case DatabasePostgreSQL:
		return "5432"
	}
	return ""
}

// ParseDatabase accepts a driver token, a label, or a common alias, case-insensitively.
func ParseDatabase(v string) (Database, error) {
	v = strings.TrimSpace(v)
	for _, d := range ValidDatabases() {
		if strings.EqualFold(v, string(d)) || strings.EqualFold(v, d.Label()) {
			return d, nil
		}
	}
	switch strings.ToLower(v) {
	case "postgres", "postgresql", "pg":
		return DatabasePostgreSQL, nil
	case "sqlite3":
		return DatabaseSQLite, nil
	case "":
		return "", fmt.Errorf("%w: empty value", ErrInvalidDatabase)
	}
	return "", fmt.Errorf("%w: %q (want mysql, pgsql, sqlite or none)", ErrInvalidDatabase, v)
}
