package config

import (
	"regexp"
	"strings"
)

// Unexpanded template variables must not reach generated files.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),   // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`), // {{VAR}}
}

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateRequired(cfg)...)
	errs = append(errs, validateFramework(&cfg.Framework)...)
	errs = append(errs, validateInstaller(&cfg.Installer)...)
	errs = append(errs, validateDynamicTokens(cfg)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateRequired(cfg *Config) []ValidationError {
	var errs []ValidationError
	required := []struct {
		field, value string
	}{
		{"default_name", cfg.DefaultName},
		{"framework.package", cfg.Framework.Package},
		{"framework.version", cfg.Framework.Version},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, ValidationError{
				Field:   r.field,
				Message: "required field is empty",
				Wrapped: ErrEmptyValue,
			})
		}
	}
	return errs
}

func validateFramework(fw *FrameworkConfig) []ValidationError {
	if fw.Package == "" {
		return nil
	}
	vendor, name, ok := strings.Cut(fw.Package, "/")
	if !ok || vendor == "" || name == "" || strings.Contains(name, "/") {
		return []ValidationError{{
			Field:   "framework.package",
			Message: "must be a composer package name (vendor/name)",
			Value:   fw.Package,
			Wrapped: ErrInvalidPackageName,
		}}
	}
	return nil
}

func validateInstaller(ic *InstallerConfig) []ValidationError {
	var errs []ValidationError
	if !ic.Skip && strings.TrimSpace(ic.Command) == "" {
		errs = append(errs, ValidationError{
			Field:   "installer.command",
			Message: "required unless installer.skip is set",
			Wrapped: ErrEmptyValue,
		})
	}
	if ic.Timeout < 0 {
		errs = append(errs, ValidationError{
			Field:   "installer.timeout",
			Message: "must be zero (no timeout) or positive",
			Value:   ic.Timeout.String(),
			Wrapped: ErrNegativeTimeout,
		})
	}
	return errs
}

func validateDynamicTokens(cfg *Config) []ValidationError {
	var errs []ValidationError
	fields := map[string]string{
		"default_name":      cfg.DefaultName,
		"framework.package": cfg.Framework.Package,
		"framework.version": cfg.Framework.Version,
	}
	for _, field := range []string{"default_name", "framework.package", "framework.version"} {
		value := fields[field]
		for _, p := range dynamicTokenPatterns {
			if p.MatchString(value) {
				errs = append(errs, ValidationError{
					Field:   field,
					Message: "contains unexpanded token",
					Value:   value,
					Wrapped: ErrDynamicToken,
				})
				break
			}
		}
	}
	return errs
}
