package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipeasy/internal/common"
	"github.com/google/uuid"
)

// InMemoryRepository is a map-backed Repository used in tests and local
// development. It enforces the same unique-email invariant as the Postgres
// schema.
type InMemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byID: map[string]*User{}}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, common.ErrEmailTaken
		}
	}

	u := *user
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.byID[u.ID] = &u

	copied := u
	return &copied, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.byID[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, common.ErrNotFound
}

func (r *InMemoryRepository) UpdatePreferences(ctx context.Context, id string, prefs Preferences) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	if prefs.ProteinGoal != nil {
		u.DefaultProteinGoal = *prefs.ProteinGoal
	}
	if prefs.MaxTime != nil {
		u.DefaultMaxTime = *prefs.MaxTime
	}
	u.UpdatedAt = time.Now()

	copied := *u
	return &copied, nil
}

// Delete removes an account. Only in-memory: the production schema has no
// delete-account flow, but tests need it to model tokens for deleted users.
func (r *InMemoryRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
}
