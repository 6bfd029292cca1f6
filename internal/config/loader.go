package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix, e.g. NEBULA_INSTALLER_COMMAND.
const envPrefix = "NEBULA"

// Loader reads the configuration file and environment through viper.
type Loader struct {
	v    *viper.Viper
	used string
}

// NewLoader creates a Loader with defaults and environment bindings in place.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return &Loader{v: v}
}

// Load reads configFile, or the default location when it is empty.
// A missing file is not an error. Environment variables take precedence
// over file values. The result is validated.
func (l *Loader) Load(configFile string) (*Config, error) {
	explicit := configFile != ""
	if !explicit {
		configFile = DefaultConfigFile()
	}

	if configFile != "" {
		path, err := ExpandPath(configFile)
		if err != nil {
			return nil, fmt.Errorf("expanding config path: %w", err)
		}
		l.v.SetConfigFile(path)
		l.v.SetConfigType("yaml")

		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
			if !missing {
				return nil, fmt.Errorf("reading config file %s: %w", path, err)
			}
			if explicit {
				return nil, fmt.Errorf("config file %s: %w", path, fs.ErrNotExist)
			}
		} else {
			l.used = path
		}
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigFileUsed returns the file the last Load read, or "" if none was found.
func (l *Loader) ConfigFileUsed() string {
	return l.used
}

// DefaultConfigFile returns $XDG_CONFIG_HOME/nebula/config.yaml, falling back
// to ~/.config/nebula/config.yaml. It returns "" when neither can be resolved.
func DefaultConfigFile() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "nebula", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "nebula", "config.yaml")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
