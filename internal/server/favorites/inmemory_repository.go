package favorites

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipeasy/internal/common"
	"github.com/google/uuid"
)

// InMemoryRepository is a map-backed Repository used in tests and local
// development. It mirrors the Postgres semantics: one row per
// (user, recipe) pair, newest-first listing, idempotent creation.
type InMemoryRepository struct {
	mu   sync.RWMutex
	rows []*Favorite
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]*Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var list []*Favorite
	// rows are appended in insertion order; walk backwards for newest first
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].UserID == userID {
			copied := *r.rows[i]
			list = append(list, &copied)
		}
	}
	return list, nil
}

func (r *InMemoryRepository) GetByUserAndRecipe(ctx context.Context, userID string, recipeID int64) (*Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.rows {
		if f.UserID == userID && f.RecipeID == recipeID {
			copied := *f
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *InMemoryRepository) Create(ctx context.Context, favorite *Favorite) (*Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.rows {
		if f.UserID == favorite.UserID && f.RecipeID == favorite.RecipeID {
			copied := *f
			return &copied, nil
		}
	}

	f := *favorite
	f.ID = uuid.NewString()
	f.CreatedAt = time.Now()
	r.rows = append(r.rows, &f)

	copied := f
	return &copied, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, userID string, recipeID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, f := range r.rows {
		if f.UserID == userID && f.RecipeID == recipeID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}
