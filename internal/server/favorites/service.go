// Package favorites persists recipes saved by registered users. Every
// operation is scoped to the owning user; there is no cross-user access path.
package favorites

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipeasy/internal/common"
)

// AddParams carries the recipe snapshot stored with a favorite.
type AddParams struct {
	RecipeID       int64
	Title          string
	Image          string
	ReadyInMinutes int
	ProteinGrams   float64
	Calories       float64
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the user's favorites, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]*Favorite, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Add saves a recipe for the user. Adding the same recipe twice is
// idempotent: the existing favorite is returned.
func (s *Service) Add(ctx context.Context, userID string, params AddParams) (*Favorite, error) {
	if params.RecipeID <= 0 {
		return nil, fmt.Errorf("%w: recipe_id is required", common.ErrValidation)
	}
	if params.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}

	return s.repo.Create(ctx, &Favorite{
		UserID:         userID,
		RecipeID:       params.RecipeID,
		Title:          params.Title,
		Image:          params.Image,
		ReadyInMinutes: params.ReadyInMinutes,
		ProteinGrams:   params.ProteinGrams,
		Calories:       params.Calories,
	})
}

// IsFavorite reports whether the user has saved the given recipe.
func (s *Service) IsFavorite(ctx context.Context, userID string, recipeID int64) (bool, error) {
	_, err := s.repo.GetByUserAndRecipe(ctx, userID, recipeID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Remove deletes the user's favorite for the given recipe.
// Returns common.ErrNotFound if it was never saved.
func (s *Service) Remove(ctx context.Context, userID string, recipeID int64) error {
	return s.repo.Delete(ctx, userID, recipeID)
}
