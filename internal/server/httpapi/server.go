// Package httpapi exposes the public REST endpoints and the authorization
// gate protecting them. It owns the mapping from internal typed errors to
// HTTP status codes; nothing below this layer knows about HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/recipeasy/internal/common"
	"github.com/dmitrijs2005/recipeasy/internal/logging"
	"github.com/dmitrijs2005/recipeasy/internal/server/favorites"
	"github.com/dmitrijs2005/recipeasy/internal/server/recipes"
	"github.com/dmitrijs2005/recipeasy/internal/server/users"
	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	address       string
	logger        logging.Logger
	users         *users.Service
	favorites     *favorites.Service
	recipes       *recipes.Service
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewHTTPServer(
	address string,
	logger logging.Logger,
	us *users.Service,
	fs *favorites.Service,
	rs *recipes.Service,
	secretKey string,
	tokenValidity time.Duration,
) *HTTPServer {
	return &HTTPServer{
		address:       address,
		logger:        logger.With("module", "http_server"),
		users:         us,
		favorites:     fs,
		recipes:       rs,
		jwtSecret:     []byte(secretKey),
		tokenValidity: tokenValidity,
	}
}

// Handler builds the gin engine with all routes attached.
func (s *HTTPServer) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.Health)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", s.Signup)
		auth.POST("/login", s.Login)
		auth.GET("/me", s.RequireAuth(), s.Me)
		auth.PUT("/preferences", s.RequireAuth(), s.UpdatePreferences)
	}

	rec := r.Group("/recipes")
	rec.Use(s.OptionalAuth())
	{
		rec.POST("/search", s.SearchRecipes)
		rec.GET("/:id", s.RecipeDetail)
	}

	fav := r.Group("/favorites")
	fav.Use(s.RequireAuth())
	{
		fav.GET("", s.ListFavorites)
		fav.POST("", s.AddFavorite)
		fav.GET("/check/:recipeID", s.CheckFavorite)
		fav.DELETE("/:recipeID", s.RemoveFavorite)
	}

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *HTTPServer) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// respondError translates typed internal failures into the wire error shape.
// Anything unrecognized is reported as an internal error without leaking
// details to the caller.
func (s *HTTPServer) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation error", "message": err.Error()})
	case errors.Is(err, common.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate email", "message": "an account with this email already exists"})
	case errors.Is(err, common.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication failed", "message": "invalid email or password"})
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "message": "the requested resource does not exist"})
	case errors.Is(err, common.ErrServerConfiguration):
		s.logger.Error(c.Request.Context(), "server configuration fault", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server configuration error", "message": "authentication service unavailable"})
	default:
		s.logger.Error(c.Request.Context(), "internal error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "message": "an unexpected error occurred"})
	}
}
