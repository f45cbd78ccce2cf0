package config

import (
	"fmt"
	"os"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if err := ValidateUIMode(cfg.UI.Mode); err != nil {
		add("ui.mode", err.Error())
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// ValidateBankFile checks that the configured bank_file exists. Load leaves it
// unchecked because a bank file given on the command line takes precedence.
func ValidateBankFile(cfg Config) error {
	if cfg.BankFile == "" {
		return nil
	}
	var message string
	info, err := os.Stat(cfg.BankFile)
	switch {
	case os.IsNotExist(err):
		message = fmt.Sprintf("file %q does not exist", cfg.BankFile)
	case err != nil:
		message = fmt.Sprintf("stat %q: %v", cfg.BankFile, err)
	case info.IsDir():
		message = fmt.Sprintf("%q is a directory", cfg.BankFile)
	default:
		return nil
	}
	return &ValidationError{Issues: []Issue{{Field: "bank_file", Message: message}}}
}

// ValidateUIMode checks a normalized ui mode value.
func ValidateUIMode(mode string) error {
	switch mode {
	case UIModeAuto, UIModeLive, UIModePlain:
		return nil
	default:
		return fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
}
