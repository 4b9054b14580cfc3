package logger_adapter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
)

// FluentPoster is the part of *fluent.Fluent the adapter uses.
type FluentPoster interface {
	Post(tag string, message interface{}) error
	Close() error
}

// FluentLoggerAdapter ships entries to Fluent Bit, tagged by level.
// The client's TagPrefix is prepended by the fluent library.
type FluentLoggerAdapter struct {
	client   FluentPoster
	fields   port.Fields
	minLevel slog.Level
}

func NewFluentLoggerAdapter(client FluentPoster, minLevel slog.Leveler) (*FluentLoggerAdapter, error) {
	if client == nil {
		return nil, fmt.Errorf("fluent client cannot be nil")
	}

	level := slog.LevelInfo
	if minLevel != nil {
		level = minLevel.Level()
	}

	return &FluentLoggerAdapter{
		client:   client,
		fields:   make(port.Fields),
		minLevel: level,
	}, nil
}

func (a *FluentLoggerAdapter) mergeFields(fields port.Fields) port.Fields {
	merged := make(port.Fields, len(a.fields)+len(fields))
	for k, v := range a.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return merged
}

func (a *FluentLoggerAdapter) post(level slog.Level, tag, msg string, data port.Fields) {
	if level < a.minLevel {
		return
	}
	data["level"] = tag
	data["message"] = msg
	data["timestamp"] = time.Now().UTC().Format(time.RFC3339Nano)

	// msgpack cannot encode uuid.UUID and similar types
	for k, v := range data {
		if s, ok := v.(fmt.Stringer); ok {
			data[k] = s.String()
		}
	}

	_ = a.client.Post(tag, data)
}

func (a *FluentLoggerAdapter) Info(msg string, fields port.Fields) {
	a.post(slog.LevelInfo, "info", msg, a.mergeFields(fields))
}

func (a *FluentLoggerAdapter) Warn(msg string, fields port.Fields) {
	a.post(slog.LevelWarn, "warn", msg, a.mergeFields(fields))
}

func (a *FluentLoggerAdapter) Error(msg string, err error, fields port.Fields) {
	data := a.mergeFields(fields)
	if err != nil {
		data["error"] = err.Error()
	}
	a.post(slog.LevelError, "error", msg, data)
}

func (a *FluentLoggerAdapter) Debug(msg string, fields port.Fields) {
	a.post(slog.LevelDebug, "debug", msg, a.mergeFields(fields))
}

func (a *FluentLoggerAdapter) WithFields(fields port.Fields) port.LoggerPort {
	return &FluentLoggerAdapter{
		client:   a.client,
		fields:   a.mergeFields(fields),
		minLevel: a.minLevel,
	}
}

func (a *FluentLoggerAdapter) Close() error {
	return a.client.Close()
}
