package settings

import (
	"strings"

	"github.com/spf13/viper"
)

type ConfigKey struct {
	Key         string
	Default     any
	Description string
}

const envPrefix = "SWIKI"

func EnvVar(key string) string {
	return envPrefix + "_" + strings.ToUpper(
		strings.ReplaceAll(key, ".", "_"),
	)
}

var Registry = []ConfigKey{
	// ---------------------------------------------------------------------
	// Core
	// ---------------------------------------------------------------------
	{Key: IP, Default: "0.0.0.0", Description: "Bind address"},
	{Key: Port, Default: "9002", Description: "HTTP server port"},
	{Key: Loglevel, Default: "INFO", Description: "Log level (DEBUG, INFO, WARN, ERROR)"},
	{
		Key:         ImportMaxFileSize,
		Default:     50 * 1024 * 1024,
		Description: "Maximum size of an import document in bytes",
	},

	// ---------------------------------------------------------------------
	// Database
	// ---------------------------------------------------------------------
	{Key: DBType, Default: SQLITE, Description: "Database type (sqlite, postgres, redis, memory)"},
	{
		Key:         DBSettingsFilename,
		Default:     "var/swiki.db",
		Description: "SQLite database filename",
	},
	{Key: DBSettingsHost, Default: "", Description: "Database host"},
	{Key: DBSettingsPort, Default: "", Description: "Database port"},
	{Key: DBSettingsDatabase, Default: "", Description: "Database name"},
	{Key: DBSettingsUser, Default: "", Description: "Database user"},
	{Key: DBSettingsPassword, Default: "", Description: "Database password"},
	{
		Key:         DBSettingsURL,
		Default:     "redis://localhost:6379/0",
		Description: "Redis URL (only relevant for redis)",
	},
	{Key: DBSettingsPrefix, Default: "swiki:", Description: "Redis key prefix (only relevant for redis)"},
}

func ApplyRegistryDefaults() {
	for _, c := range Registry {
		viper.SetDefault(c.Key, c.Default)
	}
}
