package users

import (
	"context"
)

// Preferences holds a partial preference update. Nil fields are left
// untouched by the storage layer.
type Preferences struct {
	ProteinGoal *int
	MaxTime     *int
}

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdatePreferences(ctx context.Context, id string, prefs Preferences) (*User, error)
}
