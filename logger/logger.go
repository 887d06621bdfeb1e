package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	once   sync.Once
)

// Init builds the global logger. mode "production" switches to the JSON
// production encoder; anything else gets the colored development encoder.
func Init(mode string) error {
	var err error

	once.Do(func() {
		var config zap.Config
		if mode == "production" {
			config = zap.NewProductionConfig()
		} else {
			config = zap.NewDevelopmentConfig()
			config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		logger, err = config.Build()
	})

	return err
}

func get() *zap.Logger {
	if logger == nil {
		// Diagnostics must never take the tool down before the platform
		// call even runs.
		_ = Init("development")
	}
	return logger
}

// Sync flushes any buffered log entries, call before exit.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

func Debug(message string, fields ...zap.Field) {
	get().Debug(message, fields...)
}

func Info(message string, fields ...zap.Field) {
	get().Info(message, fields...)
}

func Warn(message string, fields ...zap.Field) {
	get().Warn(message, fields...)
}

func Error(message string, fields ...zap.Field) {
	get().Error(message, fields...)
}
