package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	configs := InitConfig("")

	assert.Equal(t, "smartdustbin", configs.App.Name)
	assert.Equal(t, 3000, configs.Server.Port)
	assert.Equal(t, "mongo", configs.Store.Driver)
	assert.Equal(t, "smartdustbin", configs.Mongo.Database)
	assert.False(t, configs.Cache.Enabled)
	assert.Empty(t, configs.NSQ.Address)
	assert.Equal(t, "info", configs.Logger.Level)
	assert.Nil(t, configs.Dashboard.Latitude)
	assert.Nil(t, configs.Dashboard.Longitude)
}

func TestInitConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("DASHBOARD_LATITUDE", "40.7128")
	t.Setenv("DASHBOARD_LONGITUDE", "-74.0060")

	configs := InitConfig("")

	assert.Equal(t, 8081, configs.Server.Port)
	assert.Equal(t, "postgres", configs.Store.Driver)
	assert.Equal(t, "mongodb://db:27017", configs.Mongo.URI)
	assert.True(t, configs.Cache.Enabled)
	assert.Equal(t, "cache", configs.Redis.Host)
	require.NotNil(t, configs.Dashboard.Latitude)
	require.NotNil(t, configs.Dashboard.Longitude)
	assert.InDelta(t, 40.7128, *configs.Dashboard.Latitude, 1e-9)
	assert.InDelta(t, -74.0060, *configs.Dashboard.Longitude, 1e-9)
}

func TestInitConfig_InvalidFloatIgnored(t *testing.T) {
	t.Setenv("DASHBOARD_LATITUDE", "north")

	configs := InitConfig("")

	assert.Nil(t, configs.Dashboard.Latitude)
}

func TestInitConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dustbin.yaml")
	content := []byte("server:\n  port: 9090\nstore:\n  driver: sqlite3\ndb:\n  path: /tmp/bins.db\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	configs := InitConfig(path)

	assert.Equal(t, 9090, configs.Server.Port)
	assert.Equal(t, "sqlite3", configs.Store.Driver)
	assert.Equal(t, "/tmp/bins.db", configs.Database.Path)
}

func TestInitConfig_MissingFile(t *testing.T) {
	configs := InitConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Equal(t, 3000, configs.Server.Port)
}
