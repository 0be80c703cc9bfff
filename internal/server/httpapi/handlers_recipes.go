package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/recipeasy/internal/common"
	"github.com/dmitrijs2005/recipeasy/internal/server/recipes"
	"github.com/gin-gonic/gin"
)

// searchInput accepts ingredients either as an array or as a single
// comma-separated string, matching what browser clients send.
type searchInput struct {
	Ingredients any `json:"ingredients" binding:"required"`
	MinProtein  int `json:"minProtein"`
	MaxTime     int `json:"maxTime"`
}

func (in *searchInput) ingredientList() []string {
	var raw []string
	switch v := in.Ingredients.(type) {
	case string:
		raw = strings.Split(v, ",")
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	}

	list := make([]string, 0, len(raw))
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

func (s *HTTPServer) SearchRecipes(c *gin.Context) {
	var input searchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		s.respondError(c, fmt.Errorf("%w: ingredients are required", common.ErrValidation))
		return
	}

	results, err := s.recipes.Search(c.Request.Context(), recipes.SearchParams{
		Ingredients: input.ingredientList(),
		MinProtein:  input.MinProtein,
		MaxTime:     input.MaxTime,
	}, CurrentUser(c))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (s *HTTPServer) RecipeDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		s.respondError(c, fmt.Errorf("%w: recipe id must be numeric", common.ErrValidation))
		return
	}

	detail, err := s.recipes.Detail(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
