package memory

import (
	"context"
	"sync"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
)

// EventRecorder is an in-process event publisher. It keeps every event
// it receives so callers can inspect them.
type EventRecorder struct {
	mu               sync.Mutex
	favoriteToggled []domain.FavoriteToggledEvent
	commentsCreated []domain.CommentCreatedEvent
	err             error
}

func NewEventRecorder() *EventRecorder {
	return &EventRecorder{}
}

// FailWith makes every following publish return err.
func (r *EventRecorder) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *EventRecorder) PublishFavoriteToggled(_ context.Context, event domain.FavoriteToggledEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.favoriteToggled = append(r.favoriteToggled, event)
	return nil
}

func (r *EventRecorder) PublishCommentCreated(_ context.Context, event domain.CommentCreatedEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.commentsCreated = append(r.commentsCreated, event)
	return nil
}

func (r *EventRecorder) FavoriteToggled() []domain.FavoriteToggledEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.FavoriteToggledEvent{}, r.favoriteToggled...)
}

func (r *EventRecorder) CommentsCreated() []domain.CommentCreatedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.CommentCreatedEvent{}, r.commentsCreated...)
}
