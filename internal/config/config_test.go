package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, StorageFile, cfg.StorageType)
	assert.Equal(t, "data/ships.json", cfg.CatalogPath)
	assert.Equal(t, 60*time.Second, cfg.SpawnPeriod)
	assert.Equal(t, 30*time.Second, cfg.ActionTimeout)
	assert.Equal(t, 30000, cfg.StartingBalance)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STARHUNT_PORT", "9000")
	t.Setenv("STARHUNT_STORAGE_TYPE", "redis")
	t.Setenv("STARHUNT_CHANNELS", "bridge,hangar")
	t.Setenv("STARHUNT_BOSS_SHIPS", "Dreadnought")
	t.Setenv("STARHUNT_SPAWN_PERIOD", "2m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, StorageRedis, cfg.StorageType)
	assert.Equal(t, []string{"bridge", "hangar"}, cfg.Channels)
	assert.Equal(t, []string{"Dreadnought"}, cfg.BossShips)
	assert.Equal(t, 2*time.Minute, cfg.SpawnPeriod)
}

func TestLoadRejectsUnknownStorageType(t *testing.T) {
	t.Setenv("STARHUNT_STORAGE_TYPE", "cassandra")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsZeroSpawnPeriod(t *testing.T) {
	t.Setenv("STARHUNT_SPAWN_PERIOD", "0s")

	_, err := Load()
	require.Error(t, err)
}
