package utils

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SetupLogger creates the development logger at the given level. An empty or unknown
// level falls back to INFO.
func SetupLogger(level string) *zap.SugaredLogger {
	config := zap.NewDevelopmentConfig()
	parsedLevel, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		parsedLevel = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(parsedLevel)

	logger := zap.Must(config.Build())
	return logger.Sugar()
}
