// Package recipes proxies recipe search to the Spoonacular API and applies
// per-user personalization to search filters.
package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Recipe is the trimmed summary returned to clients for search results.
type Recipe struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Image          string  `json:"image"`
	ReadyInMinutes int     `json:"ready_in_minutes"`
	ProteinGrams   float64 `json:"protein_grams"`
	Calories       float64 `json:"calories"`
}

// Detail is the full recipe view for a single recipe.
type Detail struct {
	Recipe
	Servings     int      `json:"servings"`
	SourceURL    string   `json:"source_url"`
	Summary      string   `json:"summary"`
	Instructions string   `json:"instructions"`
	Ingredients  []string `json:"ingredients"`
}

// Client is a thin HTTP client for the Spoonacular API.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call recipe API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read recipe API response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("recipe API error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse recipe API JSON: %w", err)
	}
	return nil
}

type nutritionPayload struct {
	Nutrients []struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
	} `json:"nutrients"`
}

func (n nutritionPayload) amount(name string) float64 {
	for _, nut := range n.Nutrients {
		if nut.Name == name {
			return nut.Amount
		}
	}
	return 0
}

type complexSearchResponse struct {
	Results []struct {
		ID             int64            `json:"id"`
		Title          string           `json:"title"`
		Image          string           `json:"image"`
		ReadyInMinutes int              `json:"readyInMinutes"`
		Nutrition      nutritionPayload `json:"nutrition"`
	} `json:"results"`
}

// Search calls the complexSearch endpoint with the given ingredient list and
// filters. Zero-valued filters are omitted from the upstream request.
func (c *Client) Search(ctx context.Context, ingredients []string, minProtein, maxTime, number int) ([]*Recipe, error) {
	params := url.Values{}
	params.Set("includeIngredients", strings.Join(ingredients, ","))
	params.Set("addRecipeNutrition", "true")
	params.Set("sort", "min-missing-ingredients")
	params.Set("number", strconv.Itoa(number))
	if minProtein > 0 {
		params.Set("minProtein", strconv.Itoa(minProtein))
	}
	if maxTime > 0 {
		params.Set("maxReadyTime", strconv.Itoa(maxTime))
	}

	var sr complexSearchResponse
	if err := c.get(ctx, "/recipes/complexSearch", params, &sr); err != nil {
		return nil, err
	}

	results := make([]*Recipe, 0, len(sr.Results))
	for _, r := range sr.Results {
		results = append(results, &Recipe{
			ID:             r.ID,
			Title:          r.Title,
			Image:          r.Image,
			ReadyInMinutes: r.ReadyInMinutes,
			ProteinGrams:   r.Nutrition.amount("Protein"),
			Calories:       r.Nutrition.amount("Calories"),
		})
	}
	return results, nil
}

type informationResponse struct {
	ID                  int64            `json:"id"`
	Title               string           `json:"title"`
	Image               string           `json:"image"`
	ReadyInMinutes      int              `json:"readyInMinutes"`
	Servings            int              `json:"servings"`
	SourceURL           string           `json:"sourceUrl"`
	Summary             string           `json:"summary"`
	Instructions        string           `json:"instructions"`
	Nutrition           nutritionPayload `json:"nutrition"`
	ExtendedIngredients []struct {
		Original string `json:"original"`
	} `json:"extendedIngredients"`
}

// Information fetches the detail view for a single recipe id.
func (c *Client) Information(ctx context.Context, id int64) (*Detail, error) {
	params := url.Values{}
	params.Set("includeNutrition", "true")

	var ir informationResponse
	if err := c.get(ctx, fmt.Sprintf("/recipes/%d/information", id), params, &ir); err != nil {
		return nil, err
	}

	detail := &Detail{
		Recipe: Recipe{
			ID:             ir.ID,
			Title:          ir.Title,
			Image:          ir.Image,
			ReadyInMinutes: ir.ReadyInMinutes,
			ProteinGrams:   ir.Nutrition.amount("Protein"),
			Calories:       ir.Nutrition.amount("Calories"),
		},
		Servings:     ir.Servings,
		SourceURL:    ir.SourceURL,
		Summary:      ir.Summary,
		Instructions: ir.Instructions,
	}
	for _, ing := range ir.ExtendedIngredients {
		detail.Ingredients = append(detail.Ingredients, ing.Original)
	}
	return detail, nil
}
