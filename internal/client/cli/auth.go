package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/recipeasy/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and creates a new account.
// On success the new identity is adopted immediately; no separate login is
// needed. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Signup(ctx, email, string(password)); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Welcome,", a.status())
	return nil
}

// Login prompts for credentials and authenticates. The password byte slice
// is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Logged in as", a.status())
	return nil
}

// Logout drops the stored session. Local only, always fast.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the current identity and stored preferences.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		return common.ErrUnauthorized
	}

	printlnFn(fmt.Sprintf("%s (protein goal %dg, max cooking time %d min)",
		user.Email, user.DefaultProteinGoal, user.DefaultMaxTime))
	return nil
}
