package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"

	"github.com/google/uuid"
)

type OfferStore struct {
	mu     sync.RWMutex
	offers map[uuid.UUID]*domain.Offer
}

func NewOfferStore() *OfferStore {
	return &OfferStore{offers: make(map[uuid.UUID]*domain.Offer)}
}

func (s *OfferStore) Create(_ context.Context, offer *domain.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.offers[offer.ID] = copyOffer(offer)
	return nil
}

func (s *OfferStore) FindByID(_ context.Context, id uuid.UUID) (*domain.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	offer, ok := s.offers[id]
	if !ok {
		return nil, nil
	}
	return copyOffer(offer), nil
}

func (s *OfferStore) FindByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Offer, 0, len(ids))
	for _, id := range ids {
		if offer, ok := s.offers[id]; ok {
			result = append(result, *copyOffer(offer))
		}
	}
	return result, nil
}

func (s *OfferStore) Find(_ context.Context, limit int) ([]domain.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Offer, 0, len(s.offers))
	for _, offer := range s.offers {
		result = append(result, *copyOffer(offer))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *OfferStore) IncCommentCount(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	offer, ok := s.offers[id]
	if !ok {
		return domain.ErrOfferNotFound
	}
	offer.CommentCount++
	return nil
}

func copyOffer(offer *domain.Offer) *domain.Offer {
	c := *offer
	c.Images = append([]string{}, offer.Images...)
	c.Goods = append([]string{}, offer.Goods...)
	return &c
}
