package recipes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search_ParsesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/complexSearch", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "chicken,rice", r.URL.Query().Get("includeIngredients"))
		assert.Equal(t, "30", r.URL.Query().Get("minProtein"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [{
				"id": 101,
				"title": "Chicken Fried Rice",
				"image": "https://img.example/101.jpg",
				"readyInMinutes": 25,
				"nutrition": {"nutrients": [
					{"name": "Protein", "amount": 42.5},
					{"name": "Calories", "amount": 610}
				]}
			}]
		}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL)

	got, err := c.Search(context.Background(), []string{"chicken", "rice"}, 30, 0, 12)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, int64(101), got[0].ID)
	assert.Equal(t, "Chicken Fried Rice", got[0].Title)
	assert.Equal(t, 25, got[0].ReadyInMinutes)
	assert.Equal(t, 42.5, got[0].ProteinGrams)
	assert.Equal(t, float64(610), got[0].Calories)
}

func TestClient_Search_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"message":"quota exceeded"}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL)

	_, err := c.Search(context.Background(), []string{"beans"}, 0, 0, 12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "402")
}

func TestClient_Information_ParsesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/101/information", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 101,
			"title": "Chicken Fried Rice",
			"readyInMinutes": 25,
			"servings": 4,
			"sourceUrl": "https://recipes.example/101",
			"instructions": "Cook it.",
			"nutrition": {"nutrients": [{"name": "Protein", "amount": 42.5}]},
			"extendedIngredients": [
				{"original": "2 cups rice"},
				{"original": "1 lb chicken"}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL)

	got, err := c.Information(context.Background(), 101)
	require.NoError(t, err)

	assert.Equal(t, "Chicken Fried Rice", got.Title)
	assert.Equal(t, 4, got.Servings)
	assert.Equal(t, []string{"2 cups rice", "1 lb chicken"}, got.Ingredients)
	assert.Equal(t, 42.5, got.ProteinGrams)
}
