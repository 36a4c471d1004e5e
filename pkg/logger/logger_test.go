package logger_test

import (
	"testing"

	"bookswap/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Level(t *testing.T) {
	log := logger.NewLogger(logger.Log{Level: "warn"}, "bookswap")
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLogger_UnknownLevelIsInfo(t *testing.T) {
	log := logger.NewLogger(logger.Log{Level: "loud", Development: true}, "bookswap")
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}
