package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/recipeasy/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// Preference bounds and defaults. Out-of-range values are rejected with
// common.ErrValidation before they reach storage.
const (
	MinProteinGoal = 0
	MaxProteinGoal = 200
	MinMaxTime     = 5
	MaxMaxTime     = 300

	DefaultProteinGoal = 0
	DefaultMaxTime     = 60

	MinPasswordLength = 6

	bcryptCost = 10
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Service is the credential store: it owns account records and enforces
// the normalization, uniqueness and hashing invariants.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NormalizeEmail lower-cases and trims an email address. Exactly one account
// may exist per normalized email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account from an email and a plaintext password.
// The password is bcrypt-hashed here and nowhere else; no other write path
// ever touches password_hash. Returns common.ErrValidation for a bad email
// or short password and common.ErrEmailTaken for a duplicate.
func (s *Service) Register(ctx context.Context, email, password string) (*User, error) {

	email = NormalizeEmail(email)

	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email address", common.ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, MinPasswordLength)
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrEmailTaken
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		Email:              email,
		PasswordHash:       string(hash),
		DefaultProteinGoal: DefaultProteinGoal,
		DefaultMaxTime:     DefaultMaxTime,
	}

	// The unique index still guards against a concurrent registration that
	// slipped past the lookup above.
	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Authenticate verifies an email/password pair. Both the unknown-email and
// wrong-password paths return the same common.ErrInvalidCredentials so the
// response cannot be used to enumerate accounts.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {

	user, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID resolves an account by its identifier.
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdatePreferences applies a partial preference update for the given
// account after bounds checking. password_hash is never touched here.
func (s *Service) UpdatePreferences(ctx context.Context, id string, prefs Preferences) (*User, error) {

	if prefs.ProteinGoal != nil {
		if *prefs.ProteinGoal < MinProteinGoal || *prefs.ProteinGoal > MaxProteinGoal {
			return nil, fmt.Errorf("%w: default_protein_goal must be between %d and %d",
				common.ErrValidation, MinProteinGoal, MaxProteinGoal)
		}
	}
	if prefs.MaxTime != nil {
		if *prefs.MaxTime < MinMaxTime || *prefs.MaxTime > MaxMaxTime {
			return nil, fmt.Errorf("%w: default_max_time must be between %d and %d",
				common.ErrValidation, MinMaxTime, MaxMaxTime)
		}
	}

	return s.repo.UpdatePreferences(ctx, id, prefs)
}
