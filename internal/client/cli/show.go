package cli

import (
	"context"
	"os"
)

// Show fetches a single note by id and prints the full detail, prompting
// for the key when the content is encrypted.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter note id to show", os.Stdout)
	if err != nil {
		return err
	}

	note, err := a.api.GetNote(ctx, id)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	plaintext := ""
	if note.IsEncrypted {
		unlock, err := GetYesNo(a.reader, "Content is encrypted, unlock?", os.Stdout)
		if err != nil {
			return err
		}
		if unlock {
			// a wrong key still shows the rest of the note
			plaintext, _ = a.decryptContent(ctx, note.EncryptedContent)
		}
	}

	printlnFn(noteDetail(*note, plaintext))
	return nil
}

// Public fetches a publicly shared note by its share token. Works without
// a session.
func (a *App) Public(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter share token", os.Stdout)
	if err != nil {
		return err
	}

	note, err := a.api.PublicNote(ctx, token)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn(noteDetail(*note, ""))
	return nil
}

// Delete removes a note by id after confirmation.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter note id to delete", os.Stdout)
	if err != nil {
		return err
	}

	confirmed, err := GetYesNo(a.reader, "Delete "+id+"?", os.Stdout)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	if err := a.notes.Delete(ctx, id); err != nil {
		printlnFn("Error:", err)
		return err
	}
	printlnFn("Deleted", id)
	return nil
}
