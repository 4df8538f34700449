package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bp0001/backend/api/v1/models"
)

// MemoryStore keeps users in process memory, keyed by username.
type MemoryStore struct {
	mu     sync.RWMutex
	users  map[string]*models.User
	nextID int64
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]*models.User),
		now:   time.Now,
	}
}

func clone(user *models.User) *models.User {
	c := *user
	if user.DisplayName != nil {
		name := *user.DisplayName
		c.DisplayName = &name
	}
	return &c
}

func (m *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Username]; exists {
		return fmt.Errorf("%w: username '%s' is already taken", ErrUsernameExists, user.Username)
	}

	m.nextID++
	now := m.now().UTC()
	user.ID = m.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	m.users[user.Username] = clone(user)
	return nil
}

func (m *MemoryStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[username]
	if !ok {
		return nil, fmt.Errorf("%w: username '%s'", ErrNoUserError, username)
	}
	return clone(user), nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) Close() {}
