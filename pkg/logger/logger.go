package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log configures the process logger.
type Log struct {
	Level       string
	Development bool
}

// NewLogger builds a zap logger named after the service. An unknown level falls back to info.
func NewLogger(cfg Log, service string) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := zcfg.Build()
	if err != nil {
		log = zap.NewExample()
	}
	return log.Named(service)
}
