package config

import (
	"path/filepath"
	"strings"
)

// Normalize trims values, applies defaults and resolves bank_file against root.
func Normalize(cfg *Config, root string) {
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = UIModeAuto
	}
	cfg.BankFile = strings.TrimSpace(cfg.BankFile)
	if cfg.BankFile != "" && !filepath.IsAbs(cfg.BankFile) && root != "" {
		cfg.BankFile = filepath.Join(root, cfg.BankFile)
	}
}
