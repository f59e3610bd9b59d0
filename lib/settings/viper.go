package settings

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// ReadConfig reads jsonStr, or settings.json of the working directory if jsonStr is
// empty. Environment variables prefixed with SWIKI_ override both.
func ReadConfig(jsonStr string) (*Settings, error) {
	viper.SetConfigName("settings")
	viper.SetConfigType("json")

	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("swiki")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if jsonStr != "" {
		if err := viper.ReadConfig(strings.NewReader(jsonStr)); err != nil {
			return nil, err
		}
	} else {
		if err := viper.ReadInConfig(); err != nil {
			var configFileNotFoundError viper.ConfigFileNotFoundError
			if !errors.As(err, &configFileNotFoundError) {
				return nil, err
			}
		}
	}

	ApplyRegistryDefaults()

	dbTypeToUse, err := ParseDBType(viper.GetString(DBType))
	if err != nil {
		return nil, err
	}

	s := &Settings{
		IP:                viper.GetString(IP),
		Port:              viper.GetString(Port),
		LogLevel:          viper.GetString(Loglevel),
		ImportMaxFileSize: viper.GetInt64(ImportMaxFileSize),
		DBType:            dbTypeToUse,
		DBSettings: &DBSettings{
			Filename: viper.GetString(DBSettingsFilename),
			Host:     viper.GetString(DBSettingsHost),
			Port:     viper.GetString(DBSettingsPort),
			Database: viper.GetString(DBSettingsDatabase),
			User:     viper.GetString(DBSettingsUser),
			Password: viper.GetString(DBSettingsPassword),
			Url:      viper.GetString(DBSettingsURL),
			Prefix:   viper.GetString(DBSettingsPrefix),
		},
	}

	return s, nil
}
