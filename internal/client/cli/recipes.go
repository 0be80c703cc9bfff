package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/recipeasy/internal/client/api"
)

// Search runs a recipe search. Ingredients come from the command arguments
// ("search chicken,rice") or an interactive prompt. Filters left at zero are
// filled from stored preferences by the server when logged in.
func (a *App) Search(ctx context.Context, args []string) error {

	var raw string
	if len(args) > 0 {
		raw = strings.Join(args, " ")
	} else {
		var err error
		raw, err = getSimpleText(a.reader, "Enter ingredients (comma separated)", os.Stdout)
		if err != nil {
			return err
		}
	}

	var ingredients []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			ingredients = append(ingredients, item)
		}
	}
	if len(ingredients) == 0 {
		printlnFn("At least one ingredient is required.")
		return nil
	}

	results, err := a.api.Search(ctx, ingredients, 0, 0)
	if err != nil {
		printlnFn("Search failed:", err.Error())
		return err
	}

	if len(results) == 0 {
		printlnFn("No recipes found.")
		return nil
	}

	a.lastResults = results
	for _, r := range results {
		printlnFn(formatRecipe(r))
	}
	return nil
}

// Show prints the full view of one recipe: "show <id>".
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: show <recipe id>")
		return nil
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Recipe id must be a number.")
		return nil
	}

	detail, err := a.api.RecipeDetail(ctx, id)
	if err != nil {
		printlnFn("Fetch failed:", err.Error())
		return err
	}

	printlnFn(formatRecipe(detail.Recipe))
	if detail.Servings > 0 {
		printlnFn(fmt.Sprintf("  servings: %d", detail.Servings))
	}
	if len(detail.Ingredients) > 0 {
		printlnFn("  ingredients: " + strings.Join(detail.Ingredients, ", "))
	}
	if detail.Instructions != "" {
		printlnFn(detail.Instructions)
	}
	if detail.SourceURL != "" {
		printlnFn("  source: " + detail.SourceURL)
	}
	return nil
}

func formatRecipe(r api.Recipe) string {
	return fmt.Sprintf("[%d] %s: %d min, %.0fg protein, %.0f kcal",
		r.ID, r.Title, r.ReadyInMinutes, r.ProteinGrams, r.Calories)
}
