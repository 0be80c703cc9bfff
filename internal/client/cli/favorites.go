package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/recipeasy/internal/client/api"
)

// Favorites lists the saved recipes, newest first.
func (a *App) Favorites(ctx context.Context) error {
	list, err := a.api.Favorites(ctx)
	if err != nil {
		printlnFn("Fetch failed:", err.Error())
		return err
	}

	if len(list) == 0 {
		printlnFn("No favorites yet. Save one with 'fav <recipe id>'.")
		return nil
	}

	for _, f := range list {
		printlnFn(formatRecipe(api.Recipe{
			ID:             f.RecipeID,
			Title:          f.Title,
			ReadyInMinutes: f.ReadyInMinutes,
			ProteinGrams:   f.ProteinGrams,
			Calories:       f.Calories,
		}))
	}
	return nil
}

// AddFavorite saves a recipe from the last search: "fav <recipe id>". The
// snapshot sent to the server comes from the cached search results so the
// favorite stays renderable offline from the upstream API.
func (a *App) AddFavorite(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: fav <recipe id>")
		return nil
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Recipe id must be a number.")
		return nil
	}

	recipe, ok := a.findInLastResults(id)
	if !ok {
		printlnFn("Recipe not in the last search results. Run 'search' first.")
		return nil
	}

	fav, err := a.api.AddFavorite(ctx, recipe)
	if err != nil {
		printlnFn("Save failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Saved %q.", fav.Title))
	return nil
}

// RemoveFavorite deletes a saved recipe: "unfav <recipe id>".
func (a *App) RemoveFavorite(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: unfav <recipe id>")
		return nil
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Recipe id must be a number.")
		return nil
	}

	if err := a.api.RemoveFavorite(ctx, id); err != nil {
		printlnFn("Remove failed:", err.Error())
		return err
	}

	printlnFn("Removed.")
	return nil
}

func (a *App) findInLastResults(id int64) (api.Recipe, bool) {
	for _, r := range a.lastResults {
		if r.ID == id {
			return r, true
		}
	}
	return api.Recipe{}, false
}
