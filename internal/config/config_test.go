package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFile_YAMLAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("db_driver: postgres\ndb_name: from_file\ntimezone: America/Sao_Paulo\nprotected_admin: root.admin\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("DB_NAME", "from_env")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "from_env", cfg.DBName)
	assert.Equal(t, "root.admin", cfg.ProtectedAdmin)
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_driver: [unclosed"), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "UTC"}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	cfg.Timezone = "Nowhere/Special"
	loc, err = cfg.Location()
	assert.Error(t, err)
	assert.Equal(t, time.UTC, loc)
}
