package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Google(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Filter(ctx context.Context) error
	ClearFilters(ctx context.Context) error
	Page(ctx context.Context) error
	Refresh(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Show(ctx context.Context) error
	Delete(ctx context.Context) error
	Publish(ctx context.Context) error
	Share(ctx context.Context) error
	Public(ctx context.Context) error
	AddCategory(ctx context.Context) error
	AddLabel(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the notes CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate with email and password
//	  - google         — sign in with Google (paste the redirect URL back)
//	  - resetpw        — request a password-reset email
//	  - public         — view a publicly shared note by token
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - (l)ist, filter, clearfilter, page, refresh
//	  - add, edit, show, delete
//	  - publish, share
//	  - addcategory, addlabel
//	  - logout, exit | quit
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("notes %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, filter, clearfilter, page, refresh, add, edit, show, delete, publish, share, public, addcategory, addlabel, logout, exit")
			} else {
				printlnFn("Available commands: register, login, google, resetpw, public, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "google":
			_ = a.Google(ctx)

		case "resetpw":
			_ = a.ResetPassword(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "filter":
			_ = a.Filter(ctx)

		case "clearfilter":
			_ = a.ClearFilters(ctx)

		case "page":
			_ = a.Page(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "show":
			_ = a.Show(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "publish":
			_ = a.Publish(ctx)

		case "share", "visibility":
			_ = a.Share(ctx)

		case "public":
			_ = a.Public(ctx)

		case "addcategory":
			_ = a.AddCategory(ctx)

		case "addlabel":
			_ = a.AddLabel(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
