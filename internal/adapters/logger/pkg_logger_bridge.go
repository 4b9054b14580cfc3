package logger_adapter

import (
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
	"github.com/Akergez/2572371-six-cities-4/pkg/rabbitmq/rabbitmq_common"
)

// PkgLoggerBridge adapts LoggerPort to the key/value logger of pkg/rabbitmq.
type PkgLoggerBridge struct {
	internalLogger port.LoggerPort
}

func NewPkgLoggerBridge(logger port.LoggerPort) rabbitmq_common.Logger {
	return &PkgLoggerBridge{internalLogger: logger}
}

func (b *PkgLoggerBridge) toFields(keysAndValues ...interface{}) port.Fields {
	fields := make(port.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}

func (b *PkgLoggerBridge) Debug(msg string, keysAndValues ...interface{}) {
	b.internalLogger.Debug(msg, b.toFields(keysAndValues...))
}

func (b *PkgLoggerBridge) Info(msg string, keysAndValues ...interface{}) {
	b.internalLogger.Info(msg, b.toFields(keysAndValues...))
}

func (b *PkgLoggerBridge) Warn(msg string, keysAndValues ...interface{}) {
	b.internalLogger.Warn(msg, b.toFields(keysAndValues...))
}

func (b *PkgLoggerBridge) Error(err error, msg string, keysAndValues ...interface{}) {
	b.internalLogger.Error(msg, err, b.toFields(keysAndValues...))
}
