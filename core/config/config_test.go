package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.Server.AdminEnabled)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "file", cfg.Snapshot.Driver)
	assert.Equal(t, "catalogs", cfg.Snapshot.Prefix)
	assert.Equal(t, 1, cfg.Catalog.SchemaVersion)
	assert.Equal(t, 4, cfg.Catalog.MaxConcurrentScans)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "catalog-snapshots", cfg.Storage.Bucket)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SNAPSHOT_DRIVER", "s3")
	t.Setenv("CATALOG_SCHEMA_VERSION", "7")
	t.Setenv("SERVER_ADMIN_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "s3", cfg.Snapshot.Driver)
	assert.Equal(t, 7, cfg.Catalog.SchemaVersion)
	assert.True(t, cfg.Server.AdminEnabled)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATABASE_DRIVER=sqlite\nDATABASE_NAME=catalogs.db\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("DATABASE_DRIVER")
		os.Unsetenv("DATABASE_NAME")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "catalogs.db", cfg.Database.Name)
}
