package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Prefs(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Favorites(ctx context.Context) error
	AddFavorite(ctx context.Context, args []string) error
	RemoveFavorite(ctx context.Context, args []string) error
}

// runREPL starts a read-eval-print loop over the command surface.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands needing an identity (whoami, prefs, fav, favs, unfav, logout)
// refuse with a hint when the session is anonymous; login and register
// refuse when already authenticated. search and show work in both states.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("recipeasy (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: search, show, favs, fav, unfav, prefs, whoami, logout, exit")
			} else {
				printlnFn("Available commands: search, show, register, login, exit")
			}

		case "register", "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in. Use 'logout' first.")
				continue
			}
			if cmd == "register" {
				_ = a.Register(ctx)
			} else {
				_ = a.Login(ctx)
			}

		case "search":
			_ = a.Search(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "whoami":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			_ = a.WhoAmI(ctx)

		case "prefs":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			_ = a.Prefs(ctx)

		case "favs":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			_ = a.Favorites(ctx)

		case "fav":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			_ = a.AddFavorite(ctx, args)

		case "unfav":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			_ = a.RemoveFavorite(ctx, args)

		case "logout":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
