package models

import "time"

// Note is the client-side read copy of a note owned by the backend.
//
// Invariants (enforced server-side, relied upon here):
//   - a note is exactly one of draft / published (IsDraft);
//   - IsPublic implies a non-empty ShareToken;
//   - an encrypted note carries only EncryptedContent to the backend,
//     never plaintext Content.
type Note struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Content          string    `json:"content,omitempty"`
	EncryptedContent string    `json:"encrypted_content,omitempty"`
	IsEncrypted      bool      `json:"is_encrypted"`
	CategoryID       string    `json:"category_id,omitempty"`
	Category         *Category `json:"category,omitempty"`
	Labels           []Label   `json:"labels,omitempty"`
	IsDraft          bool      `json:"is_draft"`
	IsPublic         bool      `json:"is_public"`
	ShareToken       string    `json:"share_token,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Category is a small user-created reference set; a note references zero
// or one.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// Label is a user-created tag; notes reference zero or more.
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// NoteDraft is the payload for creating or updating a note.
type NoteDraft struct {
	Title            string   `json:"title"`
	Content          string   `json:"content,omitempty"`
	EncryptedContent string   `json:"encrypted_content,omitempty"`
	IsEncrypted      bool     `json:"is_encrypted"`
	CategoryID       string   `json:"category_id,omitempty"`
	LabelIDs         []string `json:"label_ids,omitempty"`
	IsDraft          bool     `json:"is_draft"`
}

// NoteList is the canonical internal shape of a notes listing: the page of
// notes plus normalized pagination metadata. Both backend response shapes
// (bare array and envelope) decode into this.
type NoteList struct {
	Notes      []Note
	Pagination Pagination
}
