package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/recipeasy/internal/common"
	"github.com/dmitrijs2005/recipeasy/internal/server/favorites"
	"github.com/gin-gonic/gin"
)

type favoriteInput struct {
	RecipeID       int64   `json:"recipe_id" binding:"required"`
	Title          string  `json:"title" binding:"required"`
	Image          string  `json:"image"`
	ReadyInMinutes int     `json:"ready_in_minutes"`
	ProteinGrams   float64 `json:"protein_grams"`
	Calories       float64 `json:"calories"`
}

func recipeIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("recipeID"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: recipe id must be numeric", common.ErrValidation)
	}
	return id, nil
}

func (s *HTTPServer) ListFavorites(c *gin.Context) {
	list, err := s.favorites.List(c.Request.Context(), CurrentUser(c).ID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": list})
}

func (s *HTTPServer) AddFavorite(c *gin.Context) {
	var input favoriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		s.respondError(c, fmt.Errorf("%w: recipe_id and title are required", common.ErrValidation))
		return
	}

	fav, err := s.favorites.Add(c.Request.Context(), CurrentUser(c).ID, favorites.AddParams{
		RecipeID:       input.RecipeID,
		Title:          input.Title,
		Image:          input.Image,
		ReadyInMinutes: input.ReadyInMinutes,
		ProteinGrams:   input.ProteinGrams,
		Calories:       input.Calories,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"favorite": fav})
}

func (s *HTTPServer) CheckFavorite(c *gin.Context) {
	id, err := recipeIDParam(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	saved, err := s.favorites.IsFavorite(c.Request.Context(), CurrentUser(c).ID, id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_favorite": saved})
}

func (s *HTTPServer) RemoveFavorite(c *gin.Context) {
	id, err := recipeIDParam(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if err := s.favorites.Remove(c.Request.Context(), CurrentUser(c).ID, id); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "favorite removed"})
}
