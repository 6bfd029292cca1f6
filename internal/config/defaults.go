package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/mawsis/nebula-cli/internal/installer"
	"github.com/mawsis/nebula-cli/internal/template"
)

// Default value constants.
const (
	DefaultName             = "nebula-app"
	DefaultFrameworkPackage = template.DefaultFrameworkPackage
	DefaultFrameworkVersion = template.DefaultFrameworkVersion
	DefaultInstallCommand   = installer.DefaultCommand
	DefaultInstallTimeout   = time.Duration(0)
)

// NewDefaultConfig returns a Config with every field set to its default.
func NewDefaultConfig() *Config {
	return &Config{
		DefaultName: DefaultName,
		Framework: FrameworkConfig{
			Package: DefaultFrameworkPackage,
			Version: DefaultFrameworkVersion,
		},
		Installer: InstallerConfig{
			Command: DefaultInstallCommand,
			Timeout: DefaultInstallTimeout,
		},
	}
}

// setDefaults registers every key with viper so that environment variables
// are picked up for keys absent from the file.
func setDefaults(v *viper.Viper) {
	d := NewDefaultConfig()
	v.SetDefault("default_name", d.DefaultName)
	v.SetDefault("framework.package", d.Framework.Package)
	v.SetDefault("framework.version", d.Framework.Version)
	v.SetDefault("installer.command", d.Installer.Command)
	v.SetDefault("installer.timeout", d.Installer.Timeout)
	v.SetDefault("installer.skip", d.Installer.Skip)
	v.SetDefault("no_color", d.NoColor)
	v.SetDefault("verbose", d.Verbose)
}

// applyDefaults fills blank string fields left by an explicit empty value.
func applyDefaults(cfg *Config) {
	if cfg.DefaultName == "" {
		cfg.DefaultName = DefaultName
	}
	if cfg.Framework.Package == "" {
		cfg.Framework.Package = DefaultFrameworkPackage
	}
	if cfg.Framework.Version == "" {
		cfg.Framework.Version = DefaultFrameworkVersion
	}
}
