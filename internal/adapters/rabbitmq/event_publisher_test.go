package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishedMessage struct {
	routingKey string
	msg        amqp.Publishing
	deadline   bool
}

type fakeProducer struct {
	published []publishedMessage
	err       error
}

func (f *fakeProducer) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	_, hasDeadline := ctx.Deadline()
	f.published = append(f.published, publishedMessage{routingKey: routingKey, msg: msg, deadline: hasDeadline})
	return nil
}

func TestEventPublisher_FavoriteToggled(t *testing.T) {
	producer := &fakeProducer{}
	publisher, err := NewEventPublisher(producer)
	require.NoError(t, err)

	event := domain.FavoriteToggledEvent{
		UserID:     uuid.New(),
		OfferID:    uuid.New(),
		IsFavorite: true,
		OccurredAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-42")
	require.NoError(t, publisher.PublishFavoriteToggled(ctx, event))

	require.Len(t, producer.published, 1)
	got := producer.published[0]
	assert.Equal(t, RoutingKeyFavoriteToggled, got.routingKey)
	assert.True(t, got.deadline)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.Equal(t, "trace-42", got.msg.Headers["x-trace-id"])

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(got.msg.Body, &body))
	assert.Equal(t, event.UserID.String(), body["userId"])
	assert.Equal(t, event.OfferID.String(), body["offerId"])
	assert.Equal(t, true, body["isFavorite"])
	assert.Equal(t, "2025-01-02T03:04:05Z", body["occurredAt"])
}

func TestEventPublisher_CommentCreatedWithoutTrace(t *testing.T) {
	producer := &fakeProducer{}
	publisher, err := NewEventPublisher(producer)
	require.NoError(t, err)

	event := domain.CommentCreatedEvent{CommentID: uuid.New(), OfferID: uuid.New(), UserID: uuid.New(), Rating: 4}
	require.NoError(t, publisher.PublishCommentCreated(context.Background(), event))

	require.Len(t, producer.published, 1)
	assert.Equal(t, RoutingKeyCommentCreated, producer.published[0].routingKey)
	assert.NotContains(t, producer.published[0].msg.Headers, "x-trace-id")

	var body commentCreatedMessage
	require.NoError(t, json.Unmarshal(producer.published[0].msg.Body, &body))
	assert.Equal(t, 4, body.Rating)
	assert.Equal(t, event.CommentID.String(), body.CommentID)
}

func TestEventPublisher_PropagatesProducerError(t *testing.T) {
	producer := &fakeProducer{err: errors.New("channel closed")}
	publisher, err := NewEventPublisher(producer)
	require.NoError(t, err)

	err = publisher.PublishFavoriteToggled(context.Background(), domain.FavoriteToggledEvent{})
	assert.ErrorContains(t, err, "channel closed")
}

func TestNewEventPublisher_NilProducer(t *testing.T) {
	_, err := NewEventPublisher(nil)
	assert.Error(t, err)
}
