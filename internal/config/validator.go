package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
	lfinderrors "github.com/standardbeagle/lfind/internal/errors"
	"github.com/standardbeagle/lfind/internal/types"
)

// Validator validates configuration and sets smart defaults
type Validator struct{}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults validates configuration and applies smart defaults
// Returns an error if validation fails
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	if err := v.validateProjectConfig(&cfg.Project); err != nil {
		return lfinderrors.NewConfigError("project", cfg.Project.Root, err)
	}

	if err := v.validateSearchConfig(&cfg.Search); err != nil {
		return lfinderrors.NewConfigError("search", "", err)
	}

	if err := v.validateLoggingConfig(&cfg.Logging); err != nil {
		return lfinderrors.NewConfigError("logging", cfg.Logging.Level+"/"+cfg.Logging.Format, err)
	}

	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return lfinderrors.NewConfigError("exclude", pattern, doublestar.ErrBadPattern)
		}
	}

	v.setSmartDefaults(cfg)
	return nil
}

// validateProjectConfig validates project configuration
func (v *Validator) validateProjectConfig(project *Project) error {
	if project.Root == "" {
		return errors.New("project root cannot be empty")
	}
	return nil
}

// validateSearchConfig validates search configuration
func (v *Validator) validateSearchConfig(search *Search) error {
	// FilterWorkers: 0 means default (set by smart defaults)
	if search.FilterWorkers < 0 {
		return fmt.Errorf("FilterWorkers cannot be negative, got %d", search.FilterWorkers)
	}

	for _, ext := range search.TextExtensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("text extension %q must start with '.' and name a suffix", ext)
		}
	}

	return nil
}

// validateLoggingConfig validates logging configuration
func (v *Validator) validateLoggingConfig(logging *Logging) error {
	if logging.Level != "" {
		if _, err := logrus.ParseLevel(logging.Level); err != nil {
			return err
		}
	}

	switch strings.ToLower(logging.Format) {
	case "", "text", "json":
		return nil
	default:
		return fmt.Errorf("log format must be text or json, got %q", logging.Format)
	}
}

// setSmartDefaults fills in values left unset
func (v *Validator) setSmartDefaults(cfg *Config) {
	if cfg.Search.FilterWorkers == 0 {
		cfg.Search.FilterWorkers = types.DefaultFilterBatchCount
	}

	if len(cfg.Search.TextExtensions) == 0 {
		cfg.Search.TextExtensions = []string{types.DefaultTextExtension}
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}

	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	cfg.Exclude = DeduplicatePatterns(cfg.Exclude)
}

// ValidateConfig is a convenience function for quick validation
func ValidateConfig(cfg *Config) error {
	validator := NewValidator()
	return validator.ValidateAndSetDefaults(cfg)
}
