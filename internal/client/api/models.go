package api

// User is the account view the server returns; it never carries the
// password hash.
type User struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	DefaultProteinGoal int    `json:"default_protein_goal"`
	DefaultMaxTime     int    `json:"default_max_time"`
}

// Recipe is one search result.
type Recipe struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Image          string  `json:"image"`
	ReadyInMinutes int     `json:"ready_in_minutes"`
	ProteinGrams   float64 `json:"protein_grams"`
	Calories       float64 `json:"calories"`
}

// RecipeDetail is the full view of a single recipe.
type RecipeDetail struct {
	Recipe
	Servings     int      `json:"servings"`
	SourceURL    string   `json:"source_url"`
	Summary      string   `json:"summary"`
	Instructions string   `json:"instructions"`
	Ingredients  []string `json:"ingredients"`
}

// Favorite is a saved recipe as stored on the server.
type Favorite struct {
	ID             string  `json:"id"`
	RecipeID       int64   `json:"recipe_id"`
	Title          string  `json:"title"`
	Image          string  `json:"image"`
	ReadyInMinutes int     `json:"ready_in_minutes"`
	ProteinGrams   float64 `json:"protein_grams"`
	Calories       float64 `json:"calories"`
}

// Preferences is a partial preference update; nil fields are left unchanged.
type Preferences struct {
	DefaultProteinGoal *int `json:"default_protein_goal,omitempty"`
	DefaultMaxTime     *int `json:"default_max_time,omitempty"`
}
