package models

import (
	"errors"
	"testing"
)

func TestParseShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want AppShape
	}{
		{"full", ShapeFullApp},
		{"FULL", ShapeFullApp},
		{"Full App (MVC)", ShapeFullApp},
		{"mvc", ShapeFullApp},
		{"api", ShapeAPIOnly},
		{" API Only ", ShapeAPIOnly},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseShape(tt.in)
			if err != nil {
				t.Fatalf("ParseShape(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseShape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseShape("desktop"); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("ParseShape(desktop) error = %v, want ErrInvalidShape", err)
	}
}

func TestParseDatabase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Database
	}{
		{"mysql", DatabaseMySQL},
		{"MySQL", DatabaseMySQL},
		{"pgsql", DatabasePostgreSQL},
		{"PostgreSQL", DatabasePostgreSQL},
		{"postgres", DatabasePostgreSQL},
		{"sqlite3", DatabaseSQLite},
		{"None", DatabaseNone},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDatabase(tt.in)
			if err != nil {
				t.Fatalf("ParseDatabase(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDatabase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "oracle"} {
		if _, err := ParseDatabase(bad); !errors.Is(err, ErrInvalidDatabase) {
			t.Errorf("ParseDatabase(%q) error = %v, want ErrInvalidDatabase", bad, err)
		}
	}
}

func TestDefaultsAreValid(t *testing.T) {
	t.Parallel()

	if !DefaultShape.IsValid() {
		t.Errorf("DefaultShape %q is not valid", DefaultShape)
	}
	if !DefaultDatabase.IsValid() {
		t.Errorf("DefaultDatabase %q is not valid", DefaultDatabase)
	}
	if DefaultShape.Label() != "Full App (MVC)" {
		t.Errorf("DefaultShape label = %q", DefaultShape.Label())
	}
	if DefaultDatabase.Label() != "MySQL" {
		t.Errorf("DefaultDatabase label = %q", DefaultDatabase.Label())
	}
}

func TestDatabaseDefaultPort(t *testing.T) {
	t.Parallel()

	for _, d := range ValidDatabases() {
		port := d.DefaultPort()
		switch d {
		case DatabaseMySQL, DatabasePostgreSQL:
			if port == "" {
				t.Errorf("%s: expected a default port", d)
			}
		default:
			if port != "" {
				t.Errorf("%s: expected no default port, got %q", d, port)
			}
		}
	}
}
