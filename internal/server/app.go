// Package server initializes and runs the API server: it opens the database,
// applies schema migrations, wires the services together and serves HTTP
// until interrupted.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/recipeasy/internal/logging"
	"github.com/dmitrijs2005/recipeasy/internal/server/config"
	"github.com/dmitrijs2005/recipeasy/internal/server/favorites"
	"github.com/dmitrijs2005/recipeasy/internal/server/httpapi"
	"github.com/dmitrijs2005/recipeasy/internal/server/migrations"
	"github.com/dmitrijs2005/recipeasy/internal/server/recipes"
	"github.com/dmitrijs2005/recipeasy/internal/server/users"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.HTTPServer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := migrations.Run(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	us := users.NewService(users.NewPostgresRepository(db))
	fs := favorites.NewService(favorites.NewPostgresRepository(db))
	rs := recipes.NewService(recipes.NewClient(cfg.SpoonacularAPIKey, cfg.SpoonacularBaseURL))

	srv := httpapi.NewHTTPServer(
		cfg.EndpointAddr, logger, us, fs, rs,
		cfg.SecretKey, cfg.TokenValidityDuration,
	)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err.Error())
	}
}
