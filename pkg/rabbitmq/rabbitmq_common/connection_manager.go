package rabbitmq_common

import (
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	minReconnectDelay = time.Second
	maxReconnectDelay = 30 * time.Second
)

// ErrClosed is returned once Close has been called.
var ErrClosed = errors.New("rabbitmq: connection manager is closed")

// ConnectionManager owns the single RabbitMQ connection of the process and
// hands out channels on top of it. A dropped connection is redialled in the
// background with exponential backoff.
type ConnectionManager struct {
	url    string
	logger Logger

	mu         sync.RWMutex
	connection *amqp.Connection
	generation uint64

	done      chan struct{}
	closeOnce sync.Once
}

// NewConnectionManager dials the broker. The first dial must succeed.
func NewConnectionManager(url string, logger Logger) (*ConnectionManager, error) {
	if err := (Config{URL: url}).Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewNoopLogger()
	}

	m := &ConnectionManager{
		url:    url,
		logger: logger,
		done:   make(chan struct{}),
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		logger.Error(err, "Initial RabbitMQ connection failed")
		return nil, fmt.Errorf("initial connection failed: %w", err)
	}
	m.setConnection(conn)

	return m, nil
}

func (m *ConnectionManager) setConnection(conn *amqp.Connection) {
	m.mu.Lock()
	m.connection = conn
	m.generation++
	m.mu.Unlock()

	closed := conn.NotifyClose(make(chan *amqp.Error, 1))
	go m.watch(closed)
	m.logger.Debug("RabbitMQ connection established", "generation", m.Generation())
}

// watch waits for the connection to drop and redials until it succeeds or
// the manager is closed.
func (m *ConnectionManager) watch(closed <-chan *amqp.Error) {
	select {
	case <-m.done:
		return
	case amqpErr, ok := <-closed:
		if !ok || amqpErr == nil {
			// graceful close initiated by us
			return
		}
		m.logger.Warn("RabbitMQ connection lost, reconnecting", "reason", amqpErr.Reason, "code", amqpErr.Code)
	}

	delay := minReconnectDelay
	for {
		select {
		case <-m.done:
			return
		case <-time.After(delay):
		}

		conn, err := amqp.Dial(m.url)
		if err == nil {
			m.setConnection(conn)
			m.logger.Info("RabbitMQ connection restored")
			return
		}

		m.logger.Error(err, "RabbitMQ reconnect failed", "retry_in", delay.String())
		if delay *= 2; delay > maxReconnectDelay {
			delay = maxReconnectDelay
		}
	}
}

// Generation increases every time a new connection is established, letting
// channel holders notice that their channel belongs to a dead connection.
func (m *ConnectionManager) Generation() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.generation
}

// Channel opens a new channel on the current connection and reports the
// connection generation it belongs to.
func (m *ConnectionManager) Channel() (*amqp.Channel, uint64, error) {
	select {
	case <-m.done:
		return nil, 0, ErrClosed
	default:
	}

	m.mu.RLock()
	conn, generation := m.connection, m.generation
	m.mu.RUnlock()

	if conn == nil || conn.IsClosed() {
		return nil, generation, fmt.Errorf("rabbitmq: connection is down")
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, generation, fmt.Errorf("rabbitmq: failed to open a channel: %w", err)
	}
	return ch, generation, nil
}

// Close stops reconnecting and closes the connection.
func (m *ConnectionManager) Close() error {
	m.closeOnce.Do(func() { close(m.done) })

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connection == nil || m.connection.IsClosed() {
		return nil
	}
	if err := m.connection.Close(); err != nil {
		m.logger.Error(err, "Failed to close RabbitMQ connection")
		return err
	}
	m.logger.Debug("RabbitMQ connection closed")
	return nil
}
