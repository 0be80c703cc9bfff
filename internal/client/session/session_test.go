package session

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/recipeasy/internal/client/api"
	"github.com/dmitrijs2005/recipeasy/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI scripts backend responses and records calls.
type fakeAPI struct {
	meUser    *api.User
	meErr     error
	meCalls   int
	loginErr  error
	signupErr error
	logoutErr error
	prefsUser *api.User
	prefsErr  error
}

func (f *fakeAPI) Me(ctx context.Context) (*api.User, error) {
	f.meCalls++
	return f.meUser, f.meErr
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*api.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &api.User{ID: "u1", Email: email}, nil
}

func (f *fakeAPI) Signup(ctx context.Context, email, password string) (*api.User, error) {
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return &api.User{ID: "u1", Email: email}, nil
}

func (f *fakeAPI) Logout() error { return f.logoutErr }

func (f *fakeAPI) UpdatePreferences(ctx context.Context, prefs api.Preferences) (*api.User, error) {
	return f.prefsUser, f.prefsErr
}

func TestInit_ValidToken_AdoptsIdentity(t *testing.T) {
	f := &fakeAPI{meUser: &api.User{ID: "u1", Email: "a@test.com"}}
	m := NewManager(f)

	require.Equal(t, StateLoading, m.State())
	require.NoError(t, m.Init(context.Background()))

	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, "a@test.com", m.CurrentUser().Email)
	assert.Equal(t, 1, f.meCalls)
}

func TestInit_RejectedToken_ResolvesAnonymousSilently(t *testing.T) {
	f := &fakeAPI{meErr: &api.APIError{Status: 401, Code: "token expired"}}
	m := NewManager(f)

	require.NoError(t, m.Init(context.Background()), "a stale session must not surface as an error")

	assert.Equal(t, StateAnonymous, m.State())
	assert.Nil(t, m.CurrentUser())
	assert.Equal(t, 1, f.meCalls, "exactly one resolution attempt")
}

func TestInit_NoToken_ResolvesAnonymous(t *testing.T) {
	f := &fakeAPI{meErr: common.ErrUnauthorized}
	m := NewManager(f)

	require.NoError(t, m.Init(context.Background()))
	assert.Equal(t, StateAnonymous, m.State())
}

func TestLogin_FailureLeavesStateUntouched(t *testing.T) {
	f := &fakeAPI{meErr: common.ErrUnauthorized, loginErr: errors.New("invalid email or password")}
	m := NewManager(f)
	require.NoError(t, m.Init(context.Background()))

	err := m.Login(context.Background(), "a@test.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, StateAnonymous, m.State())
	assert.Nil(t, m.CurrentUser())
}

func TestLoginAndLogout(t *testing.T) {
	f := &fakeAPI{meErr: common.ErrUnauthorized}
	m := NewManager(f)
	require.NoError(t, m.Init(context.Background()))

	require.NoError(t, m.Login(context.Background(), "a@test.com", "secret1"))
	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, "a@test.com", m.CurrentUser().Email)

	require.NoError(t, m.Logout())
	assert.Equal(t, StateAnonymous, m.State())
	assert.Nil(t, m.CurrentUser())
}

func TestSignup_AdoptsIdentityImmediately(t *testing.T) {
	f := &fakeAPI{meErr: common.ErrUnauthorized}
	m := NewManager(f)
	require.NoError(t, m.Init(context.Background()))

	require.NoError(t, m.Signup(context.Background(), "new@test.com", "secret1"))
	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, "new@test.com", m.CurrentUser().Email)
}

func TestUpdatePreferences_RequiresAuthentication(t *testing.T) {
	f := &fakeAPI{meErr: common.ErrUnauthorized}
	m := NewManager(f)
	require.NoError(t, m.Init(context.Background()))

	_, err := m.UpdatePreferences(context.Background(), api.Preferences{})
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestUpdatePreferences_ReplacesIdentity(t *testing.T) {
	goal := 150
	f := &fakeAPI{
		meUser:    &api.User{ID: "u1", Email: "a@test.com", DefaultMaxTime: 60},
		prefsUser: &api.User{ID: "u1", Email: "a@test.com", DefaultProteinGoal: 150, DefaultMaxTime: 60},
	}
	m := NewManager(f)
	require.NoError(t, m.Init(context.Background()))

	user, err := m.UpdatePreferences(context.Background(), api.Preferences{DefaultProteinGoal: &goal})
	require.NoError(t, err)
	assert.Equal(t, 150, user.DefaultProteinGoal)
	assert.Equal(t, 150, m.CurrentUser().DefaultProteinGoal)
}
