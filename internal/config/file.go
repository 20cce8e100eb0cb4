package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// fileOverrides mirrors the optional backoffice.yaml. Only set fields
// override the environment values.
type fileOverrides struct {
	Storage struct {
		DataDir       string `yaml:"data_dir"`
		CustomersFile string `yaml:"customers_file"`
		EmployeesFile string `yaml:"employees_file"`
	} `yaml:"storage"`
	Logger struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logger"`
}

func applyFileOverrides(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var overrides fileOverrides
	if err := yaml.Unmarshal(b, &overrides); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if overrides.Storage.DataDir != "" {
		cfg.Storage.DataDir = overrides.Storage.DataDir
	}
	if overrides.Storage.CustomersFile != "" {
		cfg.Storage.CustomersFile = overrides.Storage.CustomersFile
	}
	if overrides.Storage.EmployeesFile != "" {
		cfg.Storage.EmployeesFile = overrides.Storage.EmployeesFile
	}
	if overrides.Logger.Level != "" {
		cfg.Logger.Level = overrides.Logger.Level
	}
	if overrides.Logger.File != "" {
		cfg.Logger.File = overrides.Logger.File
	}

	return nil
}
