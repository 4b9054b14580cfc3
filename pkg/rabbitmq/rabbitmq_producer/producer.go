package rabbitmq_producer

import (
	"context"
	"fmt"
	"sync"

	"github.com/Akergez/2572371-six-cities-4/pkg/rabbitmq/rabbitmq_common"

	amqp "github.com/rabbitmq/amqp091-go"
)

// PublisherConfig - publisher settings.
type PublisherConfig struct {
	rabbitmq_common.Config
	ExchangeName       string // empty string means the default exchange
	ExchangeType       string // direct, fanout, topic, headers
	DurableExchange    bool
	AutoDeleteExchange bool
	InternalExchange   bool
	ExchangeArgs       amqp.Table

	// When false the publisher relies on the exchange already existing.
	DeclareExchangeIfMissing bool

	Logger rabbitmq_common.Logger
}

func (c PublisherConfig) validate() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	if !c.DeclareExchangeIfMissing {
		return nil
	}
	if c.ExchangeName == "" {
		return fmt.Errorf("producer: exchange name is required to declare an exchange")
	}
	if c.ExchangeType == "" {
		return fmt.Errorf("producer: exchange type is required to declare exchange %q", c.ExchangeName)
	}
	return nil
}

// Publisher publishes on its own channel of the shared connection. The
// channel is reopened after the manager reconnects. amqp channels do not
// allow concurrent publishing, so Publish is serialized.
type Publisher struct {
	config  PublisherConfig
	manager *rabbitmq_common.ConnectionManager
	logger  rabbitmq_common.Logger

	mu         sync.Mutex
	channel    *amqp.Channel
	generation uint64
	closed     bool
}

// NewPublisher opens the first channel and, if configured, declares the exchange.
func NewPublisher(cfg PublisherConfig, manager *rabbitmq_common.ConnectionManager) (*Publisher, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid publisher config: %w", err)
	}
	if manager == nil {
		return nil, fmt.Errorf("producer: connection manager is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = rabbitmq_common.NewNoopLogger()
	}

	p := &Publisher{
		config:  cfg,
		manager: manager,
		logger:  logger,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.openChannel(); err != nil {
		return nil, err
	}
	return p, nil
}

// openChannel must be called with p.mu held.
func (p *Publisher) openChannel() error {
	ch, generation, err := p.manager.Channel()
	if err != nil {
		return fmt.Errorf("producer: %w", err)
	}

	if p.config.DeclareExchangeIfMissing {
		err = ch.ExchangeDeclare(
			p.config.ExchangeName,
			p.config.ExchangeType,
			p.config.DurableExchange,
			p.config.AutoDeleteExchange,
			p.config.InternalExchange,
			false, // no-wait
			p.config.ExchangeArgs,
		)
		if err != nil {
			_ = ch.Close()
			return fmt.Errorf("producer: failed to declare exchange %q: %w", p.config.ExchangeName, err)
		}
		p.logger.Debug("Exchange declared", "name", p.config.ExchangeName, "type", p.config.ExchangeType)
	}

	p.channel = ch
	p.generation = generation
	return nil
}

// usableChannel returns the current channel, reopening it when it was closed
// or belongs to an older connection. Must be called with p.mu held.
func (p *Publisher) usableChannel() (*amqp.Channel, error) {
	if p.closed {
		return nil, fmt.Errorf("producer: publisher is closed")
	}
	if p.channel != nil && !p.channel.IsClosed() && p.generation == p.manager.Generation() {
		return p.channel, nil
	}

	p.logger.Debug("Reopening publisher channel")
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if err := p.openChannel(); err != nil {
		return nil, err
	}
	return p.channel, nil
}

// Publish sends msg to the configured exchange with the given routing key.
func (p *Publisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.usableChannel()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, p.config.ExchangeName, routingKey,
		false, // mandatory
		false, // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("producer: failed to publish to %q: %w", routingKey, err)
	}
	return nil
}

// Close closes the channel. The connection belongs to the manager.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.channel == nil {
		return nil
	}
	err := p.channel.Close()
	p.channel = nil
	if err != nil && err != amqp.ErrClosed {
		p.logger.Error(err, "Error closing publisher channel")
		return err
	}
	p.logger.Info("Publisher closed")
	return nil
}
