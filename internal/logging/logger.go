package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "CSVTEXT_LOG_LEVEL"

// LogFileEnvVar overrides the log destination.
const LogFileEnvVar = "CSVTEXT_LOG_FILE"

// Initialize creates a new logger with the specified level, writing to path.
// If level is empty, CSVTEXT_LOG_LEVEL is consulted; if that is empty too
// logging is disabled. An empty path means stderr unless CSVTEXT_LOG_FILE
// is set.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	if env := os.Getenv(LogFileEnvVar); env != "" {
		path = env
	}
	if path == "" {
		path = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	// Colour codes only make sense on a terminal
	if path == "stderr" || path == "stdout" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// SetLogger replaces the global logger. Intended for tests that want to
// observe log output.
func SetLogger(l *zap.Logger) {
	logger = l
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		return zapcore.InfoLevel
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogDatasetLoaded logs a successful dataset load
func LogDatasetLoaded(sessionID, source string, rows, columns, warnings int) {
	Info("Dataset loaded",
		zap.String("session", sessionID),
		zap.String("source", source),
		zap.Int("rows", rows),
		zap.Int("columns", columns),
		zap.Int("warnings", warnings),
	)
}

// LogLoadFailed logs a contacts file that could not be read
func LogLoadFailed(sessionID, source string, err error) {
	Warn("Dataset load failed",
		zap.String("session", sessionID),
		zap.String("source", source),
		zap.Error(err),
	)
}

// LogParseWarning logs a non-fatal parse problem
func LogParseWarning(sessionID string, line int, message string) {
	Warn("Parse warning",
		zap.String("session", sessionID),
		zap.Int("line", line),
		zap.String("message", message),
	)
}

// LogBindingsDropped logs bindings removed by a template edit or reload
func LogBindingsDropped(sessionID, reason string, variables []string) {
	if len(variables) == 0 {
		return
	}
	Warn("Bindings dropped",
		zap.String("session", sessionID),
		zap.String("reason", reason),
		zap.Strings("variables", variables),
	)
}

// LogTransition logs a cursor transition
func LogTransition(sessionID, event string, from, to, total int) {
	Debug("Cursor transition",
		zap.String("session", sessionID),
		zap.String("event", event),
		zap.Int("from", from),
		zap.Int("to", to),
		zap.Int("total", total),
	)
}

// LogHandoff logs a message hand-off to an external collaborator
func LogHandoff(sessionID, target string, index int, err error) {
	if err != nil {
		Warn("Hand-off failed",
			zap.String("session", sessionID),
			zap.String("target", target),
			zap.Int("row", index+1),
			zap.Error(err),
		)
		return
	}
	Info("Hand-off",
		zap.String("session", sessionID),
		zap.String("target", target),
		zap.Int("row", index+1),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
