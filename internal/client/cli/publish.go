package cli

import (
	"context"
	"os"
)

// Publish flips a draft to published; the listing is refreshed afterwards
// since counts can shift.
func (a *App) Publish(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter note id to publish", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.notes.Publish(ctx, id); err != nil {
		printlnFn("Error:", err)
		return err
	}
	printlnFn("Published", id)
	return nil
}

// Share toggles public sharing on a note and prints the share token when
// sharing was enabled.
func (a *App) Share(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter note id", os.Stdout)
	if err != nil {
		return err
	}
	makePublic, err := GetYesNo(a.reader, "Make public?", os.Stdout)
	if err != nil {
		return err
	}

	note, err := a.notes.ToggleVisibility(ctx, id, makePublic)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	if note.IsPublic {
		printlnFn("Shared, token:", note.ShareToken)
	} else {
		printlnFn("Sharing disabled for", id)
	}
	return nil
}
