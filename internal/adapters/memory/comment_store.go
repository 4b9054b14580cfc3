package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"

	"github.com/google/uuid"
)

type CommentStore struct {
	mu      sync.RWMutex
	byOffer map[uuid.UUID][]domain.Comment
}

func NewCommentStore() *CommentStore {
	return &CommentStore{byOffer: make(map[uuid.UUID][]domain.Comment)}
}

func (s *CommentStore) Create(_ context.Context, comment *domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byOffer[comment.OfferID] = append(s.byOffer[comment.OfferID], *comment)
	return nil
}

func (s *CommentStore) FindByOffer(_ context.Context, offerID uuid.UUID, limit int) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.byOffer[offerID]
	result := make([]domain.Comment, len(stored))
	copy(result, stored)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
