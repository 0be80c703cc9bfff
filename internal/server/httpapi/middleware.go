package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/recipeasy/internal/common"
	"github.com/dmitrijs2005/recipeasy/internal/server/auth"
	"github.com/dmitrijs2005/recipeasy/internal/server/users"
	"github.com/gin-gonic/gin"
)

// userContextKey is the gin context key holding the resolved account for the
// lifetime of one request. Never persisted.
const userContextKey = "currentUser"

// resolveUser runs the single token-to-account resolution routine shared by
// both gate modes:
//
//  1. extract the bearer token from the Authorization header,
//  2. verify signature and expiry,
//  3. load the account the token was issued for.
//
// Identity-shaped failures come back as common.ErrUnauthorized or a token
// sentinel; common.ErrServerConfiguration marks a missing signing secret.
func (s *HTTPServer) resolveUser(c *gin.Context) (*users.User, error) {

	header := c.GetHeader(common.AuthHeaderName)
	if header == "" || !strings.HasPrefix(header, common.BearerPrefix) {
		return nil, common.ErrUnauthorized
	}

	tokenString := strings.TrimPrefix(header, common.BearerPrefix)
	if tokenString == "" {
		return nil, common.ErrUnauthorized
	}

	userID, err := auth.GetUserIDFromToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// account deleted after the token was issued
			return nil, common.ErrUnauthorized
		}
		return nil, err
	}

	return user, nil
}

// RequireAuth halts the pipeline with a 401 unless a valid token resolves to
// an existing account. A missing signing secret is a server fault (500),
// never an authentication failure. Internal error distinctions (unknown user
// vs bad signature vs malformed) are collapsed into one generic message;
// only expiry gets its own response so clients can prompt for re-login.
func (s *HTTPServer) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.resolveUser(c)
		if err != nil {
			switch {
			case errors.Is(err, common.ErrServerConfiguration):
				s.logger.Error(c.Request.Context(), "signing secret is not configured")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":   "server configuration error",
					"message": "authentication service unavailable",
				})
			case errors.Is(err, common.ErrTokenExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":   "token expired",
					"message": "your session has expired, please log in again",
				})
			default:
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":   "authentication required",
					"message": "please provide a valid authentication token",
				})
			}
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuth runs the same resolution but never halts: on any failure the
// request simply continues without an identity attached. Handlers behind it
// personalize when CurrentUser returns non-nil and serve anonymously
// otherwise.
func (s *HTTPServer) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.resolveUser(c)
		if err == nil {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the account attached by the gate, or nil for an
// anonymous request.
func CurrentUser(c *gin.Context) *users.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, ok := v.(*users.User)
	if !ok {
		return nil
	}
	return user
}
