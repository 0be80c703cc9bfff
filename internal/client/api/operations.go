package api

import (
	"context"
	"fmt"
	"net/http"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Signup registers a new account and persists the issued token on success.
func (c *Client) Signup(ctx context.Context, email, password string) (*User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/auth/signup", authNone,
		credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	if err := c.tokens.Save(resp.Token); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Login authenticates and persists the issued token on success.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", authNone,
		credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	if err := c.tokens.Save(resp.Token); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Logout discards the stored token. Purely local, no network call.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

// Me returns the account the stored token belongs to.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var resp struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", authRequired, nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// UpdatePreferences applies a partial preference update and returns the
// updated account.
func (c *Client) UpdatePreferences(ctx context.Context, prefs Preferences) (*User, error) {
	var resp struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/auth/preferences", authRequired, prefs, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

type searchRequest struct {
	Ingredients []string `json:"ingredients"`
	MinProtein  int      `json:"minProtein,omitempty"`
	MaxTime     int      `json:"maxTime,omitempty"`
}

// Search runs a recipe search. The token is attached when present so the
// server can fill unspecified filters from stored preferences; anonymous
// searches work the same way without personalization.
func (c *Client) Search(ctx context.Context, ingredients []string, minProtein, maxTime int) ([]Recipe, error) {
	var resp struct {
		Results []Recipe `json:"results"`
	}
	err := c.do(ctx, http.MethodPost, "/recipes/search", authOptional,
		searchRequest{Ingredients: ingredients, MinProtein: minProtein, MaxTime: maxTime}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// RecipeDetail fetches the full view of one recipe.
func (c *Client) RecipeDetail(ctx context.Context, id int64) (*RecipeDetail, error) {
	var detail RecipeDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/recipes/%d", id), authOptional, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Favorites lists the user's saved recipes, newest first.
func (c *Client) Favorites(ctx context.Context) ([]Favorite, error) {
	var resp struct {
		Favorites []Favorite `json:"favorites"`
	}
	if err := c.do(ctx, http.MethodGet, "/favorites", authRequired, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Favorites, nil
}

type addFavoriteRequest struct {
	RecipeID       int64   `json:"recipe_id"`
	Title          string  `json:"title"`
	Image          string  `json:"image,omitempty"`
	ReadyInMinutes int     `json:"ready_in_minutes,omitempty"`
	ProteinGrams   float64 `json:"protein_grams,omitempty"`
	Calories       float64 `json:"calories,omitempty"`
}

// AddFavorite saves a recipe snapshot. Saving the same recipe twice is
// idempotent on the server.
func (c *Client) AddFavorite(ctx context.Context, r Recipe) (*Favorite, error) {
	var resp struct {
		Favorite *Favorite `json:"favorite"`
	}
	err := c.do(ctx, http.MethodPost, "/favorites", authRequired, addFavoriteRequest{
		RecipeID:       r.ID,
		Title:          r.Title,
		Image:          r.Image,
		ReadyInMinutes: r.ReadyInMinutes,
		ProteinGrams:   r.ProteinGrams,
		Calories:       r.Calories,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Favorite, nil
}

// IsFavorite reports whether the given recipe is saved.
func (c *Client) IsFavorite(ctx context.Context, recipeID int64) (bool, error) {
	var resp struct {
		IsFavorite bool `json:"is_favorite"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/favorites/check/%d", recipeID), authRequired, nil, &resp); err != nil {
		return false, err
	}
	return resp.IsFavorite, nil
}

// RemoveFavorite deletes a saved recipe.
func (c *Client) RemoveFavorite(ctx context.Context, recipeID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/favorites/%d", recipeID), authRequired, nil, nil)
}
