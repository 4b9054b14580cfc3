package fluentlogger

import (
	"fmt"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// Config holds the Fluent Bit connection settings.
type Config struct {
	Host      string // "127.0.0.1" or "fluent-bit" inside docker
	Port      int    // usually 24224
	TagPrefix string // common tag prefix for every record of this service
	Timeout   time.Duration
}

// NewClient creates a Fluent Bit client.
// There is no ping: the first failed Post is the first sign of a broken connection.
func NewClient(cfg Config) (*fluent.Fluent, error) {
	if cfg.TagPrefix == "" {
		return nil, fmt.Errorf("fluentd tag prefix is required")
	}

	logger, err := fluent.New(fluent.Config{
		FluentHost: cfg.Host,
		FluentPort: cfg.Port,
		TagPrefix:  cfg.TagPrefix,
		Timeout:    cfg.Timeout,
		Async:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluentd logger: %w", err)
	}

	return logger, nil
}
