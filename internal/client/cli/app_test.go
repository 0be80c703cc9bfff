package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/recipeasy/internal/client/api"
	"github.com/dmitrijs2005/recipeasy/internal/client/session"
	"github.com/dmitrijs2005/recipeasy/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend implements both the session API and the recipe API so one
// stub drives a whole App.
type fakeBackend struct {
	user      *api.User
	loginErr  error
	signupErr error

	searchResults []api.Recipe
	searchErr     error

	addedFavorite *api.Recipe
	prefsGot      *api.Preferences
}

func (f *fakeBackend) Me(ctx context.Context) (*api.User, error) {
	if f.user == nil {
		return nil, common.ErrUnauthorized
	}
	return f.user, nil
}

func (f *fakeBackend) Login(ctx context.Context, email, password string) (*api.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.user = &api.User{ID: "u1", Email: email, DefaultMaxTime: 60}
	return f.user, nil
}

func (f *fakeBackend) Signup(ctx context.Context, email, password string) (*api.User, error) {
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	f.user = &api.User{ID: "u1", Email: email, DefaultMaxTime: 60}
	return f.user, nil
}

func (f *fakeBackend) Logout() error {
	f.user = nil
	return nil
}

func (f *fakeBackend) UpdatePreferences(ctx context.Context, prefs api.Preferences) (*api.User, error) {
	f.prefsGot = &prefs
	updated := *f.user
	if prefs.DefaultProteinGoal != nil {
		updated.DefaultProteinGoal = *prefs.DefaultProteinGoal
	}
	if prefs.DefaultMaxTime != nil {
		updated.DefaultMaxTime = *prefs.DefaultMaxTime
	}
	f.user = &updated
	return &updated, nil
}

func (f *fakeBackend) Search(ctx context.Context, ingredients []string, minProtein, maxTime int) ([]api.Recipe, error) {
	return f.searchResults, f.searchErr
}

func (f *fakeBackend) RecipeDetail(ctx context.Context, id int64) (*api.RecipeDetail, error) {
	return &api.RecipeDetail{Recipe: api.Recipe{ID: id, Title: "Pasta"}}, nil
}

func (f *fakeBackend) Favorites(ctx context.Context) ([]api.Favorite, error) { return nil, nil }

func (f *fakeBackend) AddFavorite(ctx context.Context, r api.Recipe) (*api.Favorite, error) {
	f.addedFavorite = &r
	return &api.Favorite{ID: "f1", RecipeID: r.ID, Title: r.Title}, nil
}

func (f *fakeBackend) IsFavorite(ctx context.Context, recipeID int64) (bool, error) {
	return false, nil
}

func (f *fakeBackend) RemoveFavorite(ctx context.Context, recipeID int64) error { return nil }

func newTestApp(t *testing.T, backend *fakeBackend) *App {
	t.Helper()
	silencePrintln(t)

	app := &App{
		session: session.NewManager(backend),
		api:     backend,
		reader:  bufio.NewReader(strings.NewReader("")),
	}
	require.NoError(t, app.session.Init(context.Background()))
	return app
}

func stubCredentials(t *testing.T, email, password string) {
	t.Helper()

	origText, origPw := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })

	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) {
		return email, nil
	}
	getPassword = func(io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}

func TestRegister_AdoptsIdentity(t *testing.T) {
	backend := &fakeBackend{}
	app := newTestApp(t, backend)
	stubCredentials(t, "new@test.com", "secret1")

	require.NoError(t, app.Register(context.Background()))
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "new@test.com", app.status())
}

func TestLogin_FailureKeepsAnonymous(t *testing.T) {
	backend := &fakeBackend{loginErr: errors.New("invalid email or password")}
	app := newTestApp(t, backend)
	stubCredentials(t, "a@test.com", "wrong")

	require.Error(t, app.Login(context.Background()))
	assert.False(t, app.isLoggedIn())
	assert.Equal(t, "anonymous", app.status())
}

func TestSearchThenFav_SendsCachedSnapshot(t *testing.T) {
	backend := &fakeBackend{
		user: &api.User{ID: "u1", Email: "a@test.com"},
		searchResults: []api.Recipe{
			{ID: 7, Title: "Pasta", ReadyInMinutes: 30, ProteinGrams: 40},
		},
	}
	app := newTestApp(t, backend)

	require.NoError(t, app.Search(context.Background(), []string{"chicken,rice"}))
	require.NoError(t, app.AddFavorite(context.Background(), []string{"7"}))

	require.NotNil(t, backend.addedFavorite)
	assert.Equal(t, "Pasta", backend.addedFavorite.Title)
	assert.Equal(t, 30, backend.addedFavorite.ReadyInMinutes)
}

func TestAddFavorite_UnknownRecipeDoesNotCallAPI(t *testing.T) {
	backend := &fakeBackend{user: &api.User{ID: "u1", Email: "a@test.com"}}
	app := newTestApp(t, backend)

	require.NoError(t, app.AddFavorite(context.Background(), []string{"99"}))
	assert.Nil(t, backend.addedFavorite)
}

func TestPrefs_PartialUpdateSendsOnlyChangedFields(t *testing.T) {
	backend := &fakeBackend{user: &api.User{ID: "u1", Email: "a@test.com", DefaultMaxTime: 60}}
	app := newTestApp(t, backend)

	orig := getOptionalInt
	t.Cleanup(func() { getOptionalInt = orig })
	answers := []int{150, 0}
	getOptionalInt = func(*bufio.Reader, string, io.Writer) (int, error) {
		n := answers[0]
		answers = answers[1:]
		return n, nil
	}

	require.NoError(t, app.Prefs(context.Background()))

	require.NotNil(t, backend.prefsGot)
	require.NotNil(t, backend.prefsGot.DefaultProteinGoal)
	assert.Equal(t, 150, *backend.prefsGot.DefaultProteinGoal)
	assert.Nil(t, backend.prefsGot.DefaultMaxTime, "skipped prompt must not be sent")
	assert.Equal(t, 150, app.session.CurrentUser().DefaultProteinGoal)
}

func TestLogout_ClearsIdentity(t *testing.T) {
	backend := &fakeBackend{user: &api.User{ID: "u1", Email: "a@test.com"}}
	app := newTestApp(t, backend)
	require.True(t, app.isLoggedIn())

	require.NoError(t, app.Logout(context.Background()))
	assert.False(t, app.isLoggedIn())
}
