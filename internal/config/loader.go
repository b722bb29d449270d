package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"convar/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/convar"
	configFileName = "console.yaml"
)

// DefaultConfigPath returns the per-user configuration directory.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// GetDefaultConfig returns the configuration used when no file exists.
func GetDefaultConfig() ConsoleConfig {
	return ConsoleConfig{
		Prompt:        "» ",
		HistoryFile:   filepath.Join(os.TempDir(), ".convar_history"),
		PathSeparator: ".",
		MaxDepth:      16,
		Output:        OutputTable,
		Color:         true,
	}
}

// LoadConfig loads console.yaml from the specified directory. A
// missing file is not an error; the defaults are returned instead.
func LoadConfig(configPath string) (ConsoleConfig, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	cfg := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("Config", "No console.yaml found at %s, using defaults", configFilePath)
			return cfg, nil
		}
		logging.Info("Config", "Error loading console.yaml from %s: %s", configFilePath, err)
		return ConsoleConfig{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ConsoleConfig{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}
	if err := validate(cfg); err != nil {
		return ConsoleConfig{}, fmt.Errorf("invalid config in %s: %w", configFilePath, err)
	}
	logging.Info("Config", "Loaded configuration from %s", configFilePath)
	return cfg, nil
}

func validate(cfg ConsoleConfig) error {
	if cfg.Output != OutputTable && cfg.Output != OutputPlain {
		return fmt.Errorf("output must be %q or %q, got %q", OutputTable, OutputPlain, cfg.Output)
	}
	if cfg.MaxDepth <= 0 {
		return fmt.Errorf("maxDepth must be positive, got %d", cfg.MaxDepth)
	}
	if cfg.PathSeparator == "" {
		return errors.New("pathSeparator must not be empty")
	}
	return nil
}
