package cli

import (
	"context"
	"os"

	"github.com/gugan-zemuria/notes-app/internal/client/notes"
	"github.com/gugan-zemuria/notes-app/internal/client/session"
	"github.com/gugan-zemuria/notes-app/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and attempts to
// create a new account. The backend may require email confirmation before
// the first sign-in, so no session is assumed on success.
//
// The password byte slice is securely wiped before returning.
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

	user, err := a.bootstrap.SignUp(ctx, email, string(password))
	if err != nil {
		printlnFn("Registration failed:", err)
		return err
	}

	printlnFn("Account created for", user.Email, "- check your inbox if confirmation is required")
	return nil
}

// Login prompts for credentials, authenticates, and loads the note cache
// for the confirmed identity. The password is securely wiped before
// returning.
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

	s, err := a.bootstrap.SignIn(ctx, email, string(password))
	if err != nil {
		printlnFn("Login failed:", err)
		return err
	}

	printlnFn("Logged in as", s.Identity.Email)
	return a.loadNotes(ctx, s)
}

// Google runs the OAuth hand-off: print the provider URL for the user to
// open in a browser, then accept the redirect URL they land on pasted back
// and resolve the session from whatever it carries (tokens, a code, or a
// provider error).
func (a *App) Google(ctx context.Context) error {
	authURL, err := a.bootstrap.SignInWithGoogle(ctx)
	if err != nil {
		printlnFn("Could not start Google sign-in:", err)
		return err
	}

	printlnFn("Open this URL in your browser and authorize:")
	printlnFn(" ", authURL)

	redirectURL, err := getSimpleText(a.reader, "Paste the full URL you were redirected to", os.Stdout)
	if err != nil {
		return err
	}

	s, err := a.bootstrap.Resolve(ctx, redirectURL)
	if err != nil {
		printlnFn("Sign-in failed:", err)
		return err
	}
	if s.Status == session.StatusFailed {
		printlnFn("Sign-in failed:", s.ErrorCode)
		return nil
	}
	if !s.Authenticated() {
		// the exchange may still be settling server-side
		s, err = a.bootstrap.AwaitIdentity(ctx)
		if err != nil {
			return err
		}
		if !s.Authenticated() {
			printlnFn("Sign-in timed out, please try again")
			return nil
		}
	}

	printlnFn("Logged in as", s.Identity.Email)
	return a.loadNotes(ctx, s)
}

// ResetPassword requests a password-reset email for the given address.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.bootstrap.ResetPassword(ctx, email); err != nil {
		printlnFn("Reset request failed:", err)
		return err
	}
	printlnFn("If the address exists, a reset email is on its way")
	return nil
}

// Logout ends the backend session, wipes stored credentials and cancels
// any pending autosave. A fresh autosaver replaces the stopped one so a
// later login starts clean.
func (a *App) Logout(ctx context.Context) error {
	a.saver.Stop()
	a.saver = notes.NewAutosaver(a.api, a.log, a.config.AutosaveDelay)
	if err := a.bootstrap.SignOut(ctx); err != nil {
		printlnFn("Logout failed:", err)
		return err
	}
	printlnFn("Logged out")
	return nil
}

func (a *App) loadNotes(ctx context.Context, s session.Session) error {
	if err := a.notes.Init(ctx, s.Identity); err != nil {
		printlnFn("Could not load notes:", err)
		return err
	}
	return nil
}
