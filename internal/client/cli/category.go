package cli

import (
	"context"
	"os"

	"github.com/gugan-zemuria/notes-app/internal/client/models"
)

// AddCategory creates a category and prints the current reference set.
func (a *App) AddCategory(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter category name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		printlnFn("Name is required")
		return nil
	}
	color, err := getSimpleText(a.reader, "Color (hex, empty for none)", os.Stdout)
	if err != nil {
		return err
	}
	icon, err := getSimpleText(a.reader, "Icon (emoji, empty for none)", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.notes.CreateCategory(ctx, models.Category{Name: name, Color: color, Icon: icon})
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	printlnFn("Created category", created.ID)

	for _, c := range a.notes.Categories() {
		printlnFn(" ", c.ID, c.Name)
	}
	return nil
}

// AddLabel creates a label and prints the current reference set.
func (a *App) AddLabel(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter label name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		printlnFn("Name is required")
		return nil
	}
	color, err := getSimpleText(a.reader, "Color (hex, empty for none)", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.notes.CreateLabel(ctx, models.Label{Name: name, Color: color})
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	printlnFn("Created label", created.ID)

	for _, l := range a.notes.Labels() {
		printlnFn(" ", l.ID, l.Name)
	}
	return nil
}
