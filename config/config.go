// Package config carries the deployment configuration for the studio: the
// model target, the fixed creativity setting, and resolution of the API
// credential.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Environment variables checked for the API credential, in order.
var credentialEnvVars = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}

// Settings are deployment-level values. They are not per-call options.
type Settings struct {
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	LogLevel    string  `yaml:"log_level"`
}

// Default returns the settings used when no config file is present.
func Default() Settings {
	return Settings{
		Model:       "gemini-3-pro-preview",
		Temperature: 0.9,
		LogLevel:    "info",
	}
}

// Load reads settings from a YAML file, layered over the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return settings, nil
}

// LoadDotEnv loads a .env file from the working directory if one exists.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// APIKeyFromEnv returns the credential from the environment, or "".
func APIKeyFromEnv() string {
	for _, name := range credentialEnvVars {
		if value := os.Getenv(name); value != "" {
			return value
		}
	}
	return ""
}
