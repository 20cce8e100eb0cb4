package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BACKOFFICE_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, filepath.Join("data", "customers.json"), cfg.Storage.CustomersPath())
	assert.Equal(t, filepath.Join("data", "employees.json"), cfg.Storage.EmployeesPath())
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BACKOFFICE_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("BACKOFFICE_DATA_DIR", "/var/lib/backoffice")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/backoffice", cfg.Storage.DataDir)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backoffice.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"storage:\n  data_dir: /srv/bank\nlogger:\n  level: warn\n"), 0o600))
	t.Setenv("BACKOFFICE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/bank", cfg.Storage.DataDir)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "customers.json", cfg.Storage.CustomersFile, "unset fields keep their defaults")
}

func TestLoadRejectsBadLevel(t *testing.T) {
	t.Setenv("BACKOFFICE_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsMalformedConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backoffice.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: ["), 0o600))
	t.Setenv("BACKOFFICE_CONFIG", path)

	_, err := Load()
	assert.Error(t, err)
}
