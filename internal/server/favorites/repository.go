package favorites

import "context"

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]*Favorite, error)
	GetByUserAndRecipe(ctx context.Context, userID string, recipeID int64) (*Favorite, error)
	Create(ctx context.Context, favorite *Favorite) (*Favorite, error)
	Delete(ctx context.Context, userID string, recipeID int64) error
}
