package favorites

import "time"

// Favorite is a recipe saved by a user. Recipe data is a snapshot of the
// upstream search result, so a favorite stays renderable even if the
// upstream API is unavailable.
type Favorite struct {
	ID             string    `json:"id"`
	UserID         string    `json:"-"`
	RecipeID       int64     `json:"recipe_id"`
	Title          string    `json:"title"`
	Image          string    `json:"image"`
	ReadyInMinutes int       `json:"ready_in_minutes"`
	ProteinGrams   float64   `json:"protein_grams"`
	Calories       float64   `json:"calories"`
	CreatedAt      time.Time `json:"created_at"`
}
