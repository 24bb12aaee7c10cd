package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the config file name used in every search location.
const ConfigFile = "buzzy.yaml"

// Load loads configuration with the following search order:
// 1. customPath (if provided)
// 2. ~/.buzzy/configs/buzzy.yaml
// 3. ./configs/buzzy.yaml
// 4. embedded defaults
// 5. hardcoded defaults
//
// Fields absent from a file keep their default values. A custom path that
// cannot be read or parsed is an error; other locations are skipped.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFromFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("config: %w", err)
		}
		return cfg, nil
	}

	if userPath, err := UserConfigPath(); err == nil {
		if cfg, err := loadFromFile(userPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFromFile(filepath.Join("configs", ConfigFile)); err == nil {
		return cfg, nil
	}

	if cfg, err := EmbeddedDefaults(); err == nil {
		return cfg, nil
	}

	return DefaultConfig(), nil
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// UserConfigPath returns ~/.buzzy/configs/buzzy.yaml.
func UserConfigPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "configs", ConfigFile), nil
}

// DataDir returns ~/.buzzy, where configs, the score database and logs live.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".buzzy"), nil
}

func loadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if len(data) == 0 {
		return Config{}, errors.New("empty config file: " + path)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}
