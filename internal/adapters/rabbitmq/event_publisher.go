package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	RoutingKeyFavoriteToggled = "favorites.toggled"
	RoutingKeyCommentCreated  = "comments.created"

	publishTimeout = 10 * time.Second
)

// MessagePublisher is satisfied by *rabbitmq_producer.Publisher.
type MessagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// EventPublisher implements EventPublisherPort over a RabbitMQ exchange.
type EventPublisher struct {
	producer MessagePublisher
}

func NewEventPublisher(producer MessagePublisher) (*EventPublisher, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &EventPublisher{producer: producer}, nil
}

func (a *EventPublisher) PublishFavoriteToggled(ctx context.Context, event domain.FavoriteToggledEvent) error {
	return a.publish(ctx, RoutingKeyFavoriteToggled, favoriteToggledMessage{
		UserID:     event.UserID.String(),
		OfferID:    event.OfferID.String(),
		IsFavorite: event.IsFavorite,
		OccurredAt: event.OccurredAt,
	})
}

func (a *EventPublisher) PublishCommentCreated(ctx context.Context, event domain.CommentCreatedEvent) error {
	return a.publish(ctx, RoutingKeyCommentCreated, commentCreatedMessage{
		CommentID:  event.CommentID.String(),
		OfferID:    event.OfferID.String(),
		UserID:     event.UserID.String(),
		Rating:     event.Rating,
		OccurredAt: event.OccurredAt,
	})
}

func (a *EventPublisher) publish(ctx context.Context, routingKey string, payload interface{}) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "EventPublisher",
		"routing_key": routingKey,
	})

	body, err := json.Marshal(payload)
	if err != nil {
		adapterLogger.Error("Failed to marshal event", err, nil)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	adapterLogger.Debug("Publishing event", nil)
	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish %s: %w", routingKey, err)
	}

	adapterLogger.Info("Successfully published event", nil)
	return nil
}

// NoopEventPublisher drops every event. Used when RabbitMQ is disabled.
type NoopEventPublisher struct{}

func (NoopEventPublisher) PublishFavoriteToggled(context.Context, domain.FavoriteToggledEvent) error {
	return nil
}

func (NoopEventPublisher) PublishCommentCreated(context.Context, domain.CommentCreatedEvent) error {
	return nil
}
