package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/recipeasy/internal/client/api"
)

// getOptionalInt is an indirection for tests.
var getOptionalInt = GetOptionalInt

// Prefs shows the stored search preferences and optionally updates them.
// Skipped prompts leave the corresponding preference unchanged.
func (a *App) Prefs(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		return nil
	}

	printlnFn(fmt.Sprintf("Current: protein goal %dg, max cooking time %d min",
		user.DefaultProteinGoal, user.DefaultMaxTime))

	proteinGoal, err := getOptionalInt(a.reader, "New protein goal, grams", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	maxTime, err := getOptionalInt(a.reader, "New max cooking time, minutes", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	var prefs api.Preferences
	if proteinGoal != 0 {
		prefs.DefaultProteinGoal = &proteinGoal
	}
	if maxTime != 0 {
		prefs.DefaultMaxTime = &maxTime
	}
	if prefs.DefaultProteinGoal == nil && prefs.DefaultMaxTime == nil {
		printlnFn("Nothing to update.")
		return nil
	}

	updated, err := a.session.UpdatePreferences(ctx, prefs)
	if err != nil {
		printlnFn("Update failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Saved: protein goal %dg, max cooking time %d min",
		updated.DefaultProteinGoal, updated.DefaultMaxTime))
	return nil
}
