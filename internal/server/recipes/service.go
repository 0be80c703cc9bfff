package recipes

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipeasy/internal/common"
	"github.com/dmitrijs2005/recipeasy/internal/server/users"
)

const defaultResultCount = 12

// SearchParams are the caller-supplied search filters. Zero values mean
// "not specified" and are subject to personalization.
type SearchParams struct {
	Ingredients []string
	MinProtein  int
	MaxTime     int
}

// Searcher is the upstream recipe API surface the service depends on.
// *Client satisfies it; tests substitute a fake.
type Searcher interface {
	Search(ctx context.Context, ingredients []string, minProtein, maxTime, number int) ([]*Recipe, error)
	Information(ctx context.Context, id int64) (*Detail, error)
}

type Service struct {
	api Searcher
}

func NewService(api Searcher) *Service {
	return &Service{api: api}
}

// Search proxies a recipe search upstream. When the caller is authenticated
// and left a filter unspecified, the account's stored preference fills it in;
// anonymous callers get their literal parameters.
func (s *Service) Search(ctx context.Context, params SearchParams, user *users.User) ([]*Recipe, error) {
	if len(params.Ingredients) == 0 {
		return nil, fmt.Errorf("%w: at least one ingredient is required", common.ErrValidation)
	}

	minProtein := params.MinProtein
	maxTime := params.MaxTime
	if user != nil {
		if minProtein == 0 {
			minProtein = user.DefaultProteinGoal
		}
		if maxTime == 0 {
			maxTime = user.DefaultMaxTime
		}
	}

	return s.api.Search(ctx, params.Ingredients, minProtein, maxTime, defaultResultCount)
}

// Detail fetches the full view of one recipe.
func (s *Service) Detail(ctx context.Context, id int64) (*Detail, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid recipe id", common.ErrValidation)
	}
	return s.api.Information(ctx, id)
}
