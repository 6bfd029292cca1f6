package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	l := NewLoader()
	cfg, err := l.Load("")
	require.NoError(t, err)

	assert.Equal(t, NewDefaultConfig(), cfg)
	assert.Empty(t, l.ConfigFileUsed())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
default_name: shop
framework:
  package: acme/nebula
  version: ^2.0
installer:
  command: composer install --no-interaction
  timeout: 90s
  skip: true
no_color: true
`)

	l := NewLoader()
	cfg, err := l.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "shop", cfg.DefaultName)
	assert.Equal(t, "acme/nebula", cfg.Framework.Package)
	assert.Equal(t, "^2.0", cfg.Framework.Version)
	assert.Equal(t, "composer install --no-interaction", cfg.Installer.Command)
	assert.Equal(t, 90*time.Second, cfg.Installer.Timeout)
	assert.True(t, cfg.Installer.Skip)
	assert.True(t, cfg.NoColor)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, path, l.ConfigFileUsed())
}

func TestLoad_XDGLocation(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "nebula"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "nebula", "config.yaml"), []byte("default_name: from-xdg\n"), 0o644))

	cfg, err := NewLoader().Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-xdg", cfg.DefaultName)
	assert.Equal(t, DefaultFrameworkPackage, cfg.Framework.Package)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "installer:\n  command: composer update\n")
	t.Setenv("NEBULA_INSTALLER_COMMAND", "composer install --prefer-dist")
	t.Setenv("NEBULA_VERBOSE", "true")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "composer install --prefer-dist", cfg.Installer.Command)
	assert.True(t, cfg.Verbose)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "framework: [unclosed\n")
	_, err := NewLoader().Load(path)
	assert.Error(t, err)
}

func TestLoad_ValidationFailure(t *testing.T) {
	path := writeConfig(t, "installer:\n  timeout: -1s\n")
	_, err := NewLoader().Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, ErrNegativeTimeout)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/nebula.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "nebula.yaml"), got)

	got, err = ExpandPath("/etc/nebula.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/nebula.yaml", got)
}
