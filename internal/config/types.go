package config

// Config is the optional .exambank/config.yml file.
type Config struct {
	Version  int      `yaml:"version"`
	BankFile string   `yaml:"bank_file"`
	UI       UIConfig `yaml:"ui"`
	Verbose  bool     `yaml:"verbose"`
}

// UIConfig controls terminal output.
type UIConfig struct {
	NoColor bool   `yaml:"no_color"`
	Mode    string `yaml:"mode"`
}

// UI modes accepted by the list command.
const (
	UIModeAuto  = "auto"
	UIModeLive  = "live"
	UIModePlain = "plain"
)

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{Version: 1, UI: UIConfig{Mode: UIModeAuto}}
}
