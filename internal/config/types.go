package config

import "time"

// Config is the scaffolder configuration.
type Config struct {
	DefaultName string          `mapstructure:"default_name" yaml:"default_name"`
	Framework   FrameworkConfig `mapstructure:"framework" yaml:"framework"`
	Installer   InstallerConfig `mapstructure:"installer" yaml:"installer"`
	NoColor     bool            `mapstructure:"no_color" yaml:"no_color"`
	Verbose     bool            `mapstructure:"verbose" yaml:"verbose"`
}

// FrameworkConfig is the framework requirement written into composer.json.
type FrameworkConfig struct {
	Package string `mapstructure:"package" yaml:"package"`
	Version string `mapstructure:"version" yaml:"version"`
}

// InstallerConfig controls the dependency installation step.
type InstallerConfig struct {
	Command string        `mapstructure:"command" yaml:"command"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"` // zero disables the timeout
	Skip    bool          `mapstructure:"skip" yaml:"skip"`
}
