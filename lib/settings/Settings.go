package settings

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	IP                 = "ip"
	Port               = "port"
	Loglevel           = "loglevel"
	ImportMaxFileSize  = "importMaxFileSize"
	DBType             = "dbType"
	DBSettingsFilename = "dbSettings.filename"
	DBSettingsHost     = "dbSettings.host"
	DBSettingsPort     = "dbSettings.port"
	DBSettingsDatabase = "dbSettings.database"
	DBSettingsUser     = "dbSettings.user"
	DBSettingsPassword = "dbSettings.password"
	DBSettingsURL      = "dbSettings.url"
	DBSettingsPrefix   = "dbSettings.prefix"
)

type DBSettings struct {
	Filename string
	Host     string
	Port     string
	Database string
	User     string
	Password string
	// Url and Prefix are only used by redis.
	Url    string
	Prefix string
}

type Settings struct {
	IP                string
	Port              string
	LogLevel          string
	ImportMaxFileSize int64
	DBType            IDBType
	DBSettings        *DBSettings
	GitVersion        string
	Root              string
}

var Displayed Settings

// InitSettings loads settings.json from SWIKI_SETTINGS_PATH or the working directory
// into Displayed.
func InitSettings(logger *zap.SugaredLogger) {
	pathToRoot := os.Getenv("SWIKI_SETTINGS_PATH")
	if pathToRoot == "" {
		pathToRoot = "."
	}
	pathToRoot, _ = filepath.Abs(pathToRoot)

	settingsFile, err := os.ReadFile(filepath.Join(pathToRoot, "settings.json"))
	if err != nil {
		logger.Infof("No settings.json in %s, using defaults", pathToRoot)
	}

	setting, err := ReadConfig(string(settingsFile))
	if err != nil {
		logger.Fatalf("Error reading settings: %v", err)
		return
	}
	setting.GitVersion = GitVersion()
	setting.Root = pathToRoot
	Displayed = *setting
}
