package logger

import (
	"testing"

	"github.com/deppfellow/todo-api/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := []struct {
		level    zerolog.Level
		expected tracelog.LogLevel
	}{
		{zerolog.TraceLevel, tracelog.LogLevelTrace},
		{zerolog.DebugLevel, tracelog.LogLevelDebug},
		{zerolog.InfoLevel, tracelog.LogLevelInfo},
		{zerolog.WarnLevel, tracelog.LogLevelWarn},
		{zerolog.ErrorLevel, tracelog.LogLevelError},
		{zerolog.Disabled, tracelog.LogLevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tracelog.LogLevel(GetPgxTraceLogLevel(tt.level)))
		})
	}
}

func TestLoggerService_Disabled(t *testing.T) {
	service := NewLoggerService(config.DefaultObservabilityConfig())
	assert.Nil(t, service.GetApplication())
	service.Shutdown()

	var nilService *LoggerService
	assert.Nil(t, nilService.GetApplication())
	nilService.Shutdown()
}

func TestNewLoggerWithService_Level(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	logger := NewLoggerWithService(cfg, nil)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	cfg.Environment = "development"
	cfg.Logging.Level = ""
	cfg.Logging.Format = "console"
	logger = NewLogger(cfg)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	logger := zerolog.Nop()
	assert.Equal(t, logger, WithTraceContext(logger, nil))
}
