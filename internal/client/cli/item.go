package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gugan-zemuria/notes-app/internal/client/models"
	"github.com/gugan-zemuria/notes-app/internal/common"
	"github.com/gugan-zemuria/notes-app/internal/cryptox"
)

// noteSummary renders one note as a single listing line:
//
//	a1b2c3  My note title  [draft] [public] [encrypted] (Work) {Urgent,Review}
func noteSummary(n models.Note) string {
	var b strings.Builder

	b.WriteString(n.ID)
	b.WriteString("  ")
	b.WriteString(n.Title)

	if n.IsDraft {
		b.WriteString("  [draft]")
	}
	if n.IsPublic {
		b.WriteString("  [public]")
	}
	if n.IsEncrypted {
		b.WriteString("  [encrypted]")
	}
	if n.Category != nil {
		b.WriteString("  (" + n.Category.Name + ")")
	}
	if len(n.Labels) > 0 {
		names := make([]string, 0, len(n.Labels))
		for _, l := range n.Labels {
			names = append(names, l.Name)
		}
		b.WriteString("  {" + strings.Join(names, ",") + "}")
	}

	return b.String()
}

// noteDetail renders the full note. Encrypted content is shown only when a
// plaintext is supplied (after a successful decrypt); otherwise a locked
// placeholder is printed.
func noteDetail(n models.Note, plaintext string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Title:   %s\n", n.Title)
	fmt.Fprintf(&b, "ID:      %s\n", n.ID)
	if n.Category != nil {
		fmt.Fprintf(&b, "Category: %s\n", n.Category.Name)
	}
	if len(n.Labels) > 0 {
		names := make([]string, 0, len(n.Labels))
		for _, l := range n.Labels {
			names = append(names, l.Name)
		}
		fmt.Fprintf(&b, "Labels:  %s\n", strings.Join(names, ", "))
	}
	if n.IsDraft {
		b.WriteString("Status:  draft\n")
	} else {
		b.WriteString("Status:  published\n")
	}
	if n.IsPublic {
		fmt.Fprintf(&b, "Shared:  yes (token %s)\n", n.ShareToken)
	}
	if !n.UpdatedAt.IsZero() {
		fmt.Fprintf(&b, "Updated: %s\n", n.UpdatedAt.Format("2006-01-02 15:04"))
	}

	b.WriteString("\n")
	switch {
	case n.IsEncrypted && plaintext != "":
		b.WriteString(plaintext)
	case n.IsEncrypted:
		b.WriteString("[encrypted content, key required]")
	default:
		b.WriteString(n.Content)
	}
	b.WriteString("\n")

	return b.String()
}

// decryptContent prompts for the note's encryption key and opens the
// armored content through the throttled decryptor. The key is wiped after
// use. A wrong key or an exhausted throttle is reported to the user; the
// error is returned so callers can decide whether to re-prompt.
func (a *App) decryptContent(ctx context.Context, armored string) (string, error) {
	key, err := getPassword(os.Stdout)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(key)

	plaintext, err := a.decryptor.Decrypt(ctx, armored, string(key))
	if err != nil {
		switch {
		case errors.Is(err, cryptox.ErrTooManyAttempts):
			printlnFn("Too many failed attempts, wait a moment and try again")
		case errors.Is(err, cryptox.ErrInvalidKey):
			printlnFn("Wrong key")
		default:
			printlnFn("Decryption failed:", err)
		}
		return "", err
	}
	return plaintext, nil
}
