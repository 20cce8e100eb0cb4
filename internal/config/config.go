package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all application configuration
type Config struct {
	Storage StorageConfig
	Logger  LoggerConfig
}

// StorageConfig holds the flat-file store locations
type StorageConfig struct {
	DataDir       string
	CustomersFile string
	EmployeesFile string
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level string // debug, info, warn, error
	File  string // optional log file; empty logs to stdout
}

// Load loads configuration from environment variables with sensible
// defaults, then applies overrides from an optional YAML file (the path in
// BACKOFFICE_CONFIG, or backoffice.yaml in the working directory).
func Load() (*Config, error) {
	cfg := &Config{
		Storage: StorageConfig{
			DataDir:       getEnv("BACKOFFICE_DATA_DIR", "data"),
			CustomersFile: getEnv("BACKOFFICE_CUSTOMERS_FILE", "customers.json"),
			EmployeesFile: getEnv("BACKOFFICE_EMPLOYEES_FILE", "employees.json"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := applyFileOverrides(cfg, getEnv("BACKOFFICE_CONFIG", "backoffice.yaml")); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Storage.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}
	if c.Storage.CustomersFile == "" {
		return fmt.Errorf("customers file cannot be empty")
	}
	if c.Storage.EmployeesFile == "" {
		return fmt.Errorf("employees file cannot be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	return nil
}

// CustomersPath returns the full path of the customer store file.
func (c *StorageConfig) CustomersPath() string {
	return filepath.Join(c.DataDir, c.CustomersFile)
}

// EmployeesPath returns the full path of the employee store file.
func (c *StorageConfig) EmployeesPath() string {
	return filepath.Join(c.DataDir, c.EmployeesFile)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
