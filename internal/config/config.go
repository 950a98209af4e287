package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config keeps runtime settings for the tracker.
type Config struct {
	DatabaseURL string `yaml:"database_url"`
	RemindAt    string `yaml:"remind_at"` // HH:MM, local time
	Timezone    string `yaml:"timezone"`  // IANA name, empty means local
}

// Load reads the optional config file and applies environment overrides with
// sane defaults. A missing file is not an error.
func Load() (Config, error) {
	cfg := Config{
		RemindAt: "09:00",
	}

	path, err := defaultPath()
	if err == nil {
		if err := loadFile(path, &cfg); err != nil && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if v := strings.TrimSpace(os.Getenv("QUESTDO_DB")); v != "" {
		cfg.DatabaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("QUESTDO_REMIND_AT")); v != "" {
		cfg.RemindAt = v
	}
	if v := strings.TrimSpace(os.Getenv("QUESTDO_TZ")); v != "" {
		cfg.Timezone = v
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = defaultDatabasePath()
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".questdo", "config.yaml"), nil
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "questdo.db"
	}
	return filepath.Join(home, ".questdo", "questdo.db")
}
