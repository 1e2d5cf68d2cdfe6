package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"editorscan/internal/editors"
)

// ValidationResult captures a single validation finding.
type ValidationResult struct {
	Level   string `json:"level"` // "error" or "warning"
	Message string `json:"message"`
}

// Validate checks the configuration and returns structured results.
func (c Config) Validate() []ValidationResult {
	var results []ValidationResult
	results = append(results, c.validateVersion()...)
	results = append(results, c.validateEditor()...)
	results = append(results, c.validateLogLevel()...)
	return results
}

func (c Config) validateVersion() []ValidationResult {
	if c.Version == 1 {
		return nil
	}
	return []ValidationResult{{
		Level:   "error",
		Message: fmt.Sprintf("unsupported config version %d", c.Version),
	}}
}

// An unknown editor label only disables the preference, so it is a warning.
func (c Config) validateEditor() []ValidationResult {
	if c.Editor == "" {
		return nil
	}
	if _, ok := editors.Parse(c.Editor); ok {
		return nil
	}
	return []ValidationResult{{
		Level: "warning",
		Message: fmt.Sprintf("editor %q is not a supported label (expected one of: %s)",
			c.Editor, strings.Join(editors.Labels(), ", ")),
	}}
}

func (c Config) validateLogLevel() []ValidationResult {
	if _, err := logrus.ParseLevel(c.LogLevel); err == nil {
		return nil
	}
	return []ValidationResult{{
		Level:   "warning",
		Message: fmt.Sprintf("log_level %q is not recognised; using info", c.LogLevel),
	}}
}
