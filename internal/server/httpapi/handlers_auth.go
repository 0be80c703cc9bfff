package httpapi

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/recipeasy/internal/common"
	"github.com/dmitrijs2005/recipeasy/internal/server/auth"
	"github.com/dmitrijs2005/recipeasy/internal/server/users"
	"github.com/gin-gonic/gin"
)

type credentialsInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type preferencesInput struct {
	DefaultProteinGoal *int `json:"default_protein_goal"`
	DefaultMaxTime     *int `json:"default_max_time"`
}

func (s *HTTPServer) issueToken(user *users.User) (string, error) {
	return auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
}

func (s *HTTPServer) Signup(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		s.respondError(c, fmt.Errorf("%w: email and password are required", common.ErrValidation))
		return
	}

	user, err := s.users.Register(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.respondError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "email", user.Email)
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user.Safe()})
}

func (s *HTTPServer) Login(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		s.respondError(c, fmt.Errorf("%w: email and password are required", common.ErrValidation))
		return
	}

	user, err := s.users.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user.Safe()})
}

func (s *HTTPServer) Me(c *gin.Context) {
	user := CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"user": user.Safe()})
}

func (s *HTTPServer) UpdatePreferences(c *gin.Context) {
	user := CurrentUser(c)

	var input preferencesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		s.respondError(c, fmt.Errorf("%w: invalid request body", common.ErrValidation))
		return
	}

	updated, err := s.users.UpdatePreferences(c.Request.Context(), user.ID, users.Preferences{
		ProteinGoal: input.DefaultProteinGoal,
		MaxTime:     input.DefaultMaxTime,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": updated.Safe()})
}
