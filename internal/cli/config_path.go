package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"exambank/internal/config"
)

// findConfigPath allows tests to simulate discovery failures.
var findConfigPath = config.FindConfigPath

// loadConfig loads an explicit config file, or the nearest discovered one.
// Without either, defaults are returned. Discovery failures are not fatal:
// they fall back to defaults and come back as a warning.
func loadConfig(configPath string) (config.Config, string, error) {
	if strings.TrimSpace(configPath) != "" {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return config.Config{}, "", fmt.Errorf("resolve config path: %w", err)
		}
		cfg, err := config.Load(abs)
		return cfg, "", err
	}
	found, err := findConfigPath("")
	if errors.Is(err, config.ErrNotFound) {
		return config.Default(), "", nil
	}
	if err != nil {
		return config.Default(), fmt.Sprintf("Warning: config discovery failed, using defaults: %v", err), nil
	}
	cfg, err := config.Load(found)
	return cfg, "", err
}

// configuredBankFile returns the explicit path when given, else the config's
// bank_file after checking it still exists.
func configuredBankFile(explicit string, cfg config.Config) (string, error) {
	if path := strings.TrimSpace(explicit); path != "" {
		return path, nil
	}
	if err := config.ValidateBankFile(cfg); err != nil {
		return "", err
	}
	return cfg.BankFile, nil
}
