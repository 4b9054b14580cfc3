package contextkeys

import (
	"context"

	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
)

// private key type, no collisions with other packages
type loggerKeyType struct{}

var loggerKey = loggerKeyType{}

// ContextWithLogger stores the request logger in ctx.
func ContextWithLogger(ctx context.Context, logger port.LoggerPort) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext returns the request logger, or a no-op logger when there is none.
func LoggerFromContext(ctx context.Context) port.LoggerPort {
	if logger, ok := ctx.Value(loggerKey).(port.LoggerPort); ok {
		return logger
	}
	return &noopLogger{}
}

type noopLogger struct{}

func (n *noopLogger) Info(msg string, fields port.Fields)             {}
func (n *noopLogger) Warn(msg string, fields port.Fields)             {}
func (n *noopLogger) Error(msg string, err error, fields port.Fields) {}
func (n *noopLogger) Debug(msg string, fields port.Fields)            {}
func (n *noopLogger) WithFields(fields port.Fields) port.LoggerPort   { return n }
