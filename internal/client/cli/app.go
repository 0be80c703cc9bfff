// Package cli is the interactive terminal client: a small REPL over the
// backend API with commands gated by the current session state.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/recipeasy/internal/client/api"
	"github.com/dmitrijs2005/recipeasy/internal/client/config"
	"github.com/dmitrijs2005/recipeasy/internal/client/session"
	"github.com/dmitrijs2005/recipeasy/internal/client/tokenstore"
)

// recipeAPI is the non-session surface the commands call directly.
// *api.Client satisfies it.
type recipeAPI interface {
	Search(ctx context.Context, ingredients []string, minProtein, maxTime int) ([]api.Recipe, error)
	RecipeDetail(ctx context.Context, id int64) (*api.RecipeDetail, error)
	Favorites(ctx context.Context) ([]api.Favorite, error)
	AddFavorite(ctx context.Context, r api.Recipe) (*api.Favorite, error)
	IsFavorite(ctx context.Context, recipeID int64) (bool, error)
	RemoveFavorite(ctx context.Context, recipeID int64) error
}

type App struct {
	config  *config.Config
	session *session.Manager
	api     recipeAPI
	reader  *bufio.Reader

	// lastResults keeps the most recent search so fav/show can refer to
	// recipes by id without refetching.
	lastResults []api.Recipe
}

func NewApp(c *config.Config) (*App, error) {

	store, err := tokenstore.NewFileStore(c.TokenFile)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewClient(c.ServerEndpointAddr, c.RequestTimeout, store)

	return &App{
		config:  c,
		session: session.NewManager(apiClient),
		api:     apiClient,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run resolves the stored session and starts the REPL. Commands are only
// dispatched after Init completes, so no command ever observes the loading
// state.
func (a *App) Run(ctx context.Context) {
	_ = a.session.Init(ctx)
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}

func (a *App) status() string {
	if user := a.session.CurrentUser(); user != nil {
		return user.Email
	}
	return "anonymous"
}
