package cli

import (
	"context"
	"os"
	"strings"

	"github.com/gugan-zemuria/notes-app/internal/client/models"
	"github.com/gugan-zemuria/notes-app/internal/common"
	"github.com/gugan-zemuria/notes-app/internal/cryptox"
)

// Add collects note fields interactively and creates the note. The content
// can optionally be encrypted client-side with a user-supplied key; the
// backend then only ever sees the armored ciphertext.
func (a *App) Add(ctx context.Context) error {
	draft, err := a.inputDraft(ctx)
	if err != nil {
		return err
	}
	if draft == nil {
		return nil
	}

	note, err := a.notes.Create(ctx, *draft)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	printlnFn("Created", note.ID)
	return nil
}

// Edit prompts for a note id and replacement fields, schedules a debounced
// autosave of the collected draft, and applies the final update when the
// user confirms. Declining the confirmation leaves the autosave pending so
// the edit is not lost.
func (a *App) Edit(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter note id to edit", os.Stdout)
	if err != nil {
		return err
	}

	draft, err := a.inputDraft(ctx)
	if err != nil {
		return err
	}
	if draft == nil {
		return nil
	}

	a.saver.Schedule(ctx, id, *draft)

	save, err := GetYesNo(a.reader, "Save now?", os.Stdout)
	if err != nil {
		return err
	}
	if !save {
		printlnFn("Will autosave shortly")
		return nil
	}

	note, err := a.notes.Update(ctx, id, *draft)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	// the explicit save supersedes the pending autosave
	a.saver.Cancel()
	printlnFn("Updated", note.ID)
	return nil
}

// inputDraft collects the shared create/edit fields. A nil draft with nil
// error means the user aborted (empty title).
func (a *App) inputDraft(ctx context.Context) (*models.NoteDraft, error) {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return nil, err
	}
	if title == "" {
		printlnFn("Title is required")
		return nil, nil
	}

	content, err := GetMultiline(a.reader, "Enter content", os.Stdout)
	if err != nil {
		return nil, err
	}

	draft := models.NoteDraft{Title: title}

	encrypt, err := GetYesNo(a.reader, "Encrypt content?", os.Stdout)
	if err != nil {
		return nil, err
	}
	if encrypt {
		key, err := getPassword(os.Stdout)
		if err != nil {
			return nil, err
		}
		armored, err := cryptox.Encrypt(content, string(key))
		common.WipeByteArray(key)
		if err != nil {
			printlnFn("Encryption failed:", err)
			return nil, err
		}
		draft.EncryptedContent = armored
		draft.IsEncrypted = true
	} else {
		draft.Content = content
	}

	category, err := getSimpleText(a.reader, "Category id (empty for none)", os.Stdout)
	if err != nil {
		return nil, err
	}
	draft.CategoryID = category

	labelsLine, err := getSimpleText(a.reader, "Label ids, comma separated (empty for none)", os.Stdout)
	if err != nil {
		return nil, err
	}
	for _, l := range strings.Split(labelsLine, ",") {
		if l = strings.TrimSpace(l); l != "" {
			draft.LabelIDs = append(draft.LabelIDs, l)
		}
	}

	isDraft, err := GetYesNo(a.reader, "Keep as draft?", os.Stdout)
	if err != nil {
		return nil, err
	}
	draft.IsDraft = isDraft

	return &draft, nil
}
