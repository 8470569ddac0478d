// Package config loads CLI configuration from file and environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Blitzr API key
	APIKey string

	// Base URL override for the Blitzr API (default: production endpoint)
	BaseURL string

	// Minimum log level (debug|info|warn|error)
	LogLevel string

	// Pretty enables human-readable console log output
	Pretty bool
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("pretty", false)

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables (BLITZR_API_KEY etc.)
	v.SetEnvPrefix("BLITZR")
	v.AutomaticEnv()

	cfg := &Config{
		APIKey:   v.GetString("api_key"),
		BaseURL:  v.GetString("base_url"),
		LogLevel: v.GetString("log_level"),
		Pretty:   v.GetBool("pretty"),
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "blitzr")

	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to file
func (c *Config) Save() error {
	v := viper.New()

	configDir := getConfigDir()
	configFile := filepath.Join(configDir, "config.yaml")

	v.Set("api_key", c.APIKey)
	v.Set("base_url", c.BaseURL)
	v.Set("log_level", c.LogLevel)
	v.Set("pretty", c.Pretty)

	return v.WriteConfigAs(configFile)
}
