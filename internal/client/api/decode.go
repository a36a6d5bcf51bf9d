package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gugan-zemuria/notes-app/internal/client/models"
)

// listEnvelope is the newer backend listing shape. Older deployments return
// a bare array instead; both are accepted here and nowhere else.
type listEnvelope struct {
	Data       []models.Note `json:"data"`
	Pagination *struct {
		CurrentPage int `json:"currentPage"`
		TotalCount  int `json:"totalCount"`
		Limit       int `json:"limit"`
	} `json:"pagination"`
}

// decodeNoteList normalizes both listing response shapes into one
// canonical NoteList.
//
// A bare array is the entire result set: exactly one page, regardless of
// how its length compares to the requested limit. An envelope carries
// explicit pagination metadata; derived fields (totalPages and the
// has-next/prev flags) are always recomputed from count/page/limit so the
// internal shape is identical regardless of what the server filled in.
func decodeNoteList(raw json.RawMessage, limit int) (*models.NoteList, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return &models.NoteList{Pagination: models.PaginationFor(0, 1, limit)}, nil
	}

	if trimmed[0] == '[' {
		var notes []models.Note
		if err := json.Unmarshal(trimmed, &notes); err != nil {
			return nil, fmt.Errorf("decoding notes array: %w", err)
		}
		if limit <= 0 {
			limit = models.DefaultPageSize
		}
		return &models.NoteList{
			Notes: notes,
			Pagination: models.Pagination{
				CurrentPage: 1,
				TotalPages:  1,
				TotalCount:  len(notes),
				Limit:       limit,
			},
		}, nil
	}

	var env listEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decoding notes envelope: %w", err)
	}
	if env.Pagination == nil {
		return &models.NoteList{
			Notes:      env.Data,
			Pagination: models.PaginationFor(len(env.Data), 1, limit),
		}, nil
	}
	p := env.Pagination
	if p.Limit == 0 {
		p.Limit = limit
	}
	return &models.NoteList{
		Notes:      env.Data,
		Pagination: models.PaginationFor(p.TotalCount, p.CurrentPage, p.Limit),
	}, nil
}
