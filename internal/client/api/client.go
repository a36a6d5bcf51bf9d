// Package api implements the HTTP client for the notes backend. It is the
// only package that speaks the wire contract; everything above it works
// with the canonical shapes in models.
package api

import (
	"context"

	"github.com/gugan-zemuria/notes-app/internal/client/models"
)

// Client is the remote notes backend as seen by the rest of the client.
type Client interface {
	// Auth surface.
	SignUp(ctx context.Context, email, password string) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (*models.User, error)
	GoogleAuthURL(ctx context.Context) (string, error)
	SignOut(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	ResetPassword(ctx context.Context, email string) error
	ExchangeCode(ctx context.Context, code string) error
	AuthenticateWithToken(ctx context.Context, accessToken, refreshToken string) error

	// Notes surface.
	ListNotes(ctx context.Context, filters models.Filters, page, limit int) (*models.NoteList, error)
	GetNote(ctx context.Context, id string) (*models.Note, error)
	CreateNote(ctx context.Context, draft models.NoteDraft) (*models.Note, error)
	UpdateNote(ctx context.Context, id string, draft models.NoteDraft) (*models.Note, error)
	DeleteNote(ctx context.Context, id string) error
	PublishNote(ctx context.Context, id string) (*models.Note, error)
	SetNoteVisibility(ctx context.Context, id string, isPublic bool) (*models.Note, error)
	AutosaveNote(ctx context.Context, id string, draft models.NoteDraft) (*models.Note, error)
	PublicNote(ctx context.Context, shareToken string) (*models.Note, error)

	// Reference sets.
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (*models.Category, error)
	ListLabels(ctx context.Context) ([]models.Label, error)
	CreateLabel(ctx context.Context, label models.Label) (*models.Label, error)
}
