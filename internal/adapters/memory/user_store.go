package memory

import (
	"context"
	"sync"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"

	"github.com/google/uuid"
)

// UserStore keeps users in process memory. Returned users are copies.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*domain.User
	byEmail map[string]uuid.UUID
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[uuid.UUID]*domain.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (s *UserStore) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return domain.ErrEmailInUse
	}
	stored := copyUser(user)
	s.byID[user.ID] = stored
	s.byEmail[user.Email] = user.ID
	return nil
}

func (s *UserStore) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return copyUser(user), nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, nil
	}
	return copyUser(s.byID[id]), nil
}

func (s *UserStore) AddFavorite(_ context.Context, userID, offerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if !user.HasFavorite(offerID) {
		user.Favorites = append(user.Favorites, offerID)
	}
	return nil
}

func (s *UserStore) RemoveFavorite(_ context.Context, userID, offerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	kept := user.Favorites[:0]
	for _, id := range user.Favorites {
		if id != offerID {
			kept = append(kept, id)
		}
	}
	user.Favorites = kept
	return nil
}

func (s *UserStore) UpdateAvatar(_ context.Context, userID uuid.UUID, link string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.AvatarURL = link
	return nil
}

func copyUser(user *domain.User) *domain.User {
	c := *user
	c.Favorites = append([]uuid.UUID{}, user.Favorites...)
	return &c
}
