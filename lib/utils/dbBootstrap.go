package utils

import (
	"errors"
	"strconv"

	"github.com/DBC-Works/swiki/lib/db"
	"github.com/DBC-Works/swiki/lib/settings"
	"go.uber.org/zap"
)

func GetDB(retrievedSettings settings.Settings, setupLogger *zap.SugaredLogger) (db.DataStore, error) {
	switch retrievedSettings.DBType {
	case settings.SQLITE:
		setupLogger.Infof("Using SQLite database at %s", retrievedSettings.DBSettings.Filename)
		return db.NewSQLiteDB(retrievedSettings.DBSettings.Filename, setupLogger)
	case settings.MEMORY:
		setupLogger.Info("Using in-memory database (data will be lost on restart)")
		return db.NewMemoryDataStore(), nil
	case settings.POSTGRES:
		setupLogger.Infof("Using Postgres database at %s with database %s", retrievedSettings.DBSettings.Host, retrievedSettings.DBSettings.Database)

		port, err := strconv.Atoi(retrievedSettings.DBSettings.Port)
		if err != nil {
			return nil, err
		}

		return db.NewPostgresDB(db.PostgresOptions{
			Username: retrievedSettings.DBSettings.User,
			Password: retrievedSettings.DBSettings.Password,
			Host:     retrievedSettings.DBSettings.Host,
			Database: retrievedSettings.DBSettings.Database,
			Port:     port,
		}, setupLogger)
	case settings.REDIS:
		setupLogger.Infof("Using Redis database at %s", retrievedSettings.DBSettings.Url)
		return db.NewRedisDB(retrievedSettings.DBSettings.Url, retrievedSettings.DBSettings.Prefix)
	}
	return nil, errors.New("unsupported database type")
}
