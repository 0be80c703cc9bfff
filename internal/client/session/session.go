// Package session tracks who the CLI is acting as. It resolves the stored
// token once at startup and then keeps the authenticated identity in memory
// for the rest of the run.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/recipeasy/internal/client/api"
	"github.com/dmitrijs2005/recipeasy/internal/common"
)

// State is the authentication state of the client.
type State int

const (
	// StateLoading means Init has not resolved the stored token yet. No
	// gated decision may be taken while in this state.
	StateLoading State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// API is the backend surface the session needs. *api.Client satisfies it.
type API interface {
	Signup(ctx context.Context, email, password string) (*api.User, error)
	Login(ctx context.Context, email, password string) (*api.User, error)
	Logout() error
	Me(ctx context.Context) (*api.User, error)
	UpdatePreferences(ctx context.Context, prefs api.Preferences) (*api.User, error)
}

// Manager owns the current state and identity. All transitions go through
// its methods; the mutex only guards concurrent reads against the REPL's
// sequential writes.
type Manager struct {
	api API

	mu    sync.RWMutex
	state State
	user  *api.User
}

func NewManager(a API) *Manager {
	return &Manager{api: a, state: StateLoading}
}

// Init resolves the stored token into an identity. A missing token resolves
// to StateAnonymous without any network call; a stale or rejected token is
// cleared by the API layer and also resolves to StateAnonymous. Init never
// fails on identity-shaped errors: the user simply starts logged out.
func (m *Manager) Init(ctx context.Context) error {
	user, err := m.api.Me(ctx)
	if err != nil {
		m.set(StateAnonymous, nil)
		return nil
	}

	m.set(StateAuthenticated, user)
	return nil
}

// Login authenticates and adopts the returned identity. On failure the
// current state is left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	user, err := m.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	m.set(StateAuthenticated, user)
	return nil
}

// Signup registers a new account and adopts its identity, so a fresh user
// is logged in immediately.
func (m *Manager) Signup(ctx context.Context, email, password string) error {
	user, err := m.api.Signup(ctx, email, password)
	if err != nil {
		return err
	}

	m.set(StateAuthenticated, user)
	return nil
}

// Logout drops the stored token and the in-memory identity. Local only.
func (m *Manager) Logout() error {
	if err := m.api.Logout(); err != nil {
		return err
	}

	m.set(StateAnonymous, nil)
	return nil
}

// UpdatePreferences applies a partial preference update and replaces the
// adopted identity with the server's view.
func (m *Manager) UpdatePreferences(ctx context.Context, prefs api.Preferences) (*api.User, error) {
	if m.State() != StateAuthenticated {
		return nil, common.ErrUnauthorized
	}

	user, err := m.api.UpdatePreferences(ctx, prefs)
	if err != nil {
		return nil, err
	}

	m.set(StateAuthenticated, user)
	return user, nil
}

// State returns the current authentication state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// CurrentUser returns the adopted identity, or nil when not authenticated.
func (m *Manager) CurrentUser() *api.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	copied := *m.user
	return &copied
}

func (m *Manager) set(state State, user *api.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.user = user
}
