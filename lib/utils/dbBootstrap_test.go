package utils

import (
	"path/filepath"
	"testing"

	"github.com/DBC-Works/swiki/lib/db"
	"github.com/DBC-Works/swiki/lib/settings"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetDB(t *testing.T) {
	logger := zap.NewNop().Sugar()

	t.Run("memory", func(t *testing.T) {
		store, err := GetDB(settings.Settings{DBType: settings.MEMORY, DBSettings: &settings.DBSettings{}}, logger)
		require.NoError(t, err)
		assert.IsType(t, &db.MemoryDataStore{}, store)
	})

	t.Run("sqlite", func(t *testing.T) {
		store, err := GetDB(settings.Settings{
			DBType:     settings.SQLITE,
			DBSettings: &settings.DBSettings{Filename: filepath.Join(t.TempDir(), "swiki.db")},
		}, logger)
		require.NoError(t, err)
		defer store.Close()
		assert.NoError(t, store.Ping())
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		store, err := GetDB(settings.Settings{
			DBType:     settings.REDIS,
			DBSettings: &settings.DBSettings{Url: "redis://" + mr.Addr(), Prefix: "swiki:"},
		}, logger)
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &db.RedisDB{}, store)
	})

	t.Run("postgres with invalid port", func(t *testing.T) {
		_, err := GetDB(settings.Settings{
			DBType:     settings.POSTGRES,
			DBSettings: &settings.DBSettings{Port: "not a port"},
		}, logger)
		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := GetDB(settings.Settings{DBType: "dirty", DBSettings: &settings.DBSettings{}}, logger)
		assert.Error(t, err)
	})
}

func TestSetupLogger(t *testing.T) {
	assert.True(t, SetupLogger("debug").Desugar().Core().Enabled(zap.DebugLevel))
	assert.False(t, SetupLogger("WARN").Desugar().Core().Enabled(zap.InfoLevel))
	assert.True(t, SetupLogger("").Desugar().Core().Enabled(zap.InfoLevel))
	assert.False(t, SetupLogger("nonsense").Desugar().Core().Enabled(zap.DebugLevel))
}
