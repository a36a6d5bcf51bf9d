package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gugan-zemuria/notes-app/internal/client/models"
)

// List prints the current page of cached notes with pagination info.
func (a *App) List(ctx context.Context) error {
	if err := a.notes.Refresh(ctx); err != nil {
		printlnFn("Error:", err)
		return err
	}

	cached := a.notes.Notes()
	if len(cached) == 0 {
		printlnFn("No notes")
		return nil
	}
	for _, n := range cached {
		printlnFn(noteSummary(n))
	}

	p := a.notes.Pagination()
	if p.TotalPages > 1 {
		printlnFn(fmt.Sprintf("Page %d of %d (%d notes)", p.CurrentPage, p.TotalPages, p.TotalCount))
	}
	return nil
}

// Filter prompts for filter dimensions (empty answers leave a dimension
// unfiltered) and refetches at page 1.
func (a *App) Filter(ctx context.Context) error {
	search, err := getSimpleText(a.reader, "Search text (empty for none)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category id (empty for none)", os.Stdout)
	if err != nil {
		return err
	}
	labelsLine, err := getSimpleText(a.reader, "Label ids, comma separated (empty for none)", os.Stdout)
	if err != nil {
		return err
	}
	draftsLine, err := getSimpleText(a.reader, "Drafts only? (y/n/empty)", os.Stdout)
	if err != nil {
		return err
	}
	visibility, err := getSimpleText(a.reader, "Visibility: public/private (empty for any)", os.Stdout)
	if err != nil {
		return err
	}

	filters := models.Filters{
		Search:     search,
		Category:   category,
		Visibility: visibility,
	}
	if labelsLine != "" {
		for _, l := range strings.Split(labelsLine, ",") {
			if l = strings.TrimSpace(l); l != "" {
				filters.Labels = append(filters.Labels, l)
			}
		}
	}
	switch strings.ToLower(draftsLine) {
	case "y", "yes":
		v := true
		filters.Drafts = &v
	case "n", "no":
		v := false
		filters.Drafts = &v
	}

	if err := a.notes.ApplyFilters(ctx, filters); err != nil {
		printlnFn("Error:", err)
		return err
	}
	return a.printCurrentPage()
}

// ClearFilters drops all filters and refetches at page 1.
func (a *App) ClearFilters(ctx context.Context) error {
	if err := a.notes.ClearFilters(ctx); err != nil {
		printlnFn("Error:", err)
		return err
	}
	return a.printCurrentPage()
}

// Page prompts for a page number and fetches it with the current filters.
func (a *App) Page(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Enter page number", os.Stdout)
	if err != nil {
		return err
	}
	page, err := strconv.Atoi(answer)
	if err != nil || page < 1 {
		printlnFn("Not a valid page number:", answer)
		return nil
	}

	if err := a.notes.ChangePage(ctx, page); err != nil {
		printlnFn("Error:", err)
		return err
	}
	return a.printCurrentPage()
}

// Refresh refetches the current filters and page.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.notes.Refresh(ctx); err != nil {
		printlnFn("Error:", err)
		return err
	}
	return a.printCurrentPage()
}

func (a *App) printCurrentPage() error {
	cached := a.notes.Notes()
	if len(cached) == 0 {
		printlnFn("No notes")
		return nil
	}
	for _, n := range cached {
		printlnFn(noteSummary(n))
	}
	p := a.notes.Pagination()
	printlnFn(fmt.Sprintf("Page %d of %d (%d notes)", p.CurrentPage, p.TotalPages, p.TotalCount))
	return nil
}
