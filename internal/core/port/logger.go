package port

// Fields - structured data attached to a log entry.
type Fields map[string]interface{}

// LoggerPort keeps the core independent of a concrete logger.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	// Error logs msg together with err; err may be nil.
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)

	// WithFields returns a logger that adds fields to every entry (request_id, user_id...).
	WithFields(fields Fields) LoggerPort
}
