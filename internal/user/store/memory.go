package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"user-registry/internal/user/models"
	"user-registry/pkg/platform/sentinel"
)

// InMemory stores users in memory. Used for tests and the demo environment.
// All methods copy records on the way in and out so callers can't mutate
// shared state.
type InMemory struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewInMemory creates an in-memory user store.
func NewInMemory() *InMemory {
	return &InMemory{users: make(map[string]models.User)}
}

// Create atomically inserts the user if the id is not already taken.
func (s *InMemory) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[u.ID]; exists {
		return fmt.Errorf("user id already exists: %w", sentinel.ErrConflict)
	}
	s.users[u.ID] = *u
	return nil
}

// Update overwrites an existing user. The whole record is replaced in one
// step under the lock, so concurrent writers can't interleave field updates.
func (s *InMemory) Update(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[u.ID]; !exists {
		return sentinel.ErrNotFound
	}
	s.users[u.ID] = *u
	return nil
}

// FindByID retrieves a user by national ID.
func (s *InMemory) FindByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, sentinel.ErrNotFound
}

// List returns all users ordered by id so repeated calls are stable.
func (s *InMemory) List(_ context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		copied := u
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// ListIDs returns all user ids ordered ascending.
func (s *InMemory) ListIDs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Delete removes a user by id.
func (s *InMemory) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[id]; !exists {
		return sentinel.ErrNotFound
	}
	delete(s.users, id)
	return nil
}
