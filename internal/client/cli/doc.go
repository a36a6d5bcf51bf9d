// Package cli provides the interactive notes command-line client.
//
// It wires configuration, persisted credentials, the backend API client,
// the session bootstrapper and the note-state cache into an interactive
// REPL. Typical flow: resolve any stored session on startup, let the user
// sign in (email/password or Google OAuth via a pasted redirect URL), and
// execute note commands against the in-memory cache.
//
// Key features:
//   - Register / Login / Logout, Google OAuth hand-off, password reset
//   - List notes with filters and pagination
//   - Add / Edit / Delete / Show notes, with optional content encryption
//   - Publish drafts and toggle public sharing
//   - Manage categories and labels
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
