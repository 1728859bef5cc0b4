package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// productionLogger writes through the production encoder into buf.
func productionLogger(buf *bytes.Buffer) *zap.Logger {
	cfg := Config("production")
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg.EncoderConfig),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

func TestProperty_ProductionLogsAreStructured(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("production entries are JSON with level, timestamp and message", prop.ForAll(
		func(message string, level string) bool {
			var buf bytes.Buffer
			logger := productionLogger(&buf)

			switch level {
			case "debug":
				logger.Debug(message)
			case "warn":
				logger.Warn(message)
			case "error":
				logger.Error(message)
			default:
				logger.Info(message)
			}
			logger.Sync()

			var logEntry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
				return false
			}
			if logEntry["level"] != level {
				return false
			}
			if _, ok := logEntry["timestamp"]; !ok {
				return false
			}
			return logEntry["message"] == message
		},
		gen.AnyString(),
		gen.OneConstOf("debug", "info", "warn", "error"),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestConfig(t *testing.T) {
	t.Run("Production", func(t *testing.T) {
		cfg := Config("production")
		require.Equal(t, "json", cfg.Encoding)
		require.Equal(t, []string{"stdout"}, cfg.OutputPaths)
		require.Equal(t, []string{"stderr"}, cfg.ErrorOutputPaths)
		require.False(t, cfg.Development)
	})

	t.Run("Development", func(t *testing.T) {
		cfg := Config("development")
		require.Equal(t, "console", cfg.Encoding)
		require.True(t, cfg.Development)
		require.Equal(t, []string{"stdout"}, cfg.OutputPaths)
	})
}

func TestNew(t *testing.T) {
	for _, env := range []string{"production", "development", ""} {
		logger, err := New(env)
		require.NoError(t, err, env)
		require.NotNil(t, logger)
	}
}

func TestErrorLogsIncludeFields(t *testing.T) {
	var buf bytes.Buffer
	logger := productionLogger(&buf)

	logger.Error("Failed to update task", zap.String("id", "abc"), zap.String("resource", "tasks"))
	logger.Sync()

	var logEntry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	require.Equal(t, "abc", logEntry["id"])
	require.Equal(t, "tasks", logEntry["resource"])
}
