package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"workplay/internal/core/timekeeper"
	"workplay/internal/platform"
)

const configFileName = "config.yaml"

type yamlConfig struct {
	WorkMinutes        int    `yaml:"work_minutes"`
	PlayMinutes        int    `yaml:"play_minutes"`
	TickIntervalMillis int    `yaml:"tick_interval_ms"`
	Mode               string `yaml:"mode"`
	LogLevel           string `yaml:"log_level"`
	Language           string `yaml:"language"`
}

// Load reads startup defaults from YAML.
// If the file does not exist, default options are returned.
func Load(path string) (Config, error) {
	config := Default()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read config file: %w", err)
	}

	var fileData yamlConfig
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse config yaml: %w", err)
	}

	applyYamlConfig(&config, fileData)
	if err := config.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// DefaultPath returns <user config dir>/<appName>/config.yaml.
func DefaultPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appName, configFileName), nil
}

func applyYamlConfig(config *Config, fileData yamlConfig) {
	if fileData.WorkMinutes != 0 {
		config.WorkMinutes = fileData.WorkMinutes
	}
	if fileData.PlayMinutes != 0 {
		config.PlayMinutes = fileData.PlayMinutes
	}
	if fileData.TickIntervalMillis != 0 {
		config.TickInterval = time.Duration(fileData.TickIntervalMillis) * time.Millisecond
	}
	if fileData.Mode != "" {
		config.Mode = timekeeper.Mode(fileData.Mode)
	}
	if fileData.LogLevel != "" {
		config.LogLevel = fileData.LogLevel
	}
	if fileData.Language != "" {
		config.Language = fileData.Language
	}
}
