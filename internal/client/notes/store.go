// Package notes holds the client-side mirror of the remote note
// collection: the current page of notes, the category/label reference
// sets, active filters and pagination, and the last operation error.
//
// The remote API is the source of truth; mutations are applied locally
// only from the server's canonical responses.
package notes

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gugan-zemuria/notes-app/internal/client/api"
	"github.com/gugan-zemuria/notes-app/internal/client/models"
	"github.com/gugan-zemuria/notes-app/internal/logging"
)

// ErrNotInitialized is returned by operations invoked before Init
// confirmed an authenticated identity. The store performs no network
// activity in that state.
var ErrNotInitialized = errors.New("note store not initialized")

// Store is the note-state cache. All methods are safe for concurrent use;
// each runs to completion under the store lock around its state writes, so
// readers never observe partial mutations.
type Store struct {
	api      api.Client
	log      logging.Logger
	pageSize int

	mu         sync.Mutex
	ready      bool
	notes      []models.Note
	categories []models.Category
	labels     []models.Label
	filters    models.Filters
	pagination models.Pagination
	lastErr    error

	// listSeq tags every listing fetch; a completion older than the
	// newest issued fetch is discarded, so overlapping lists cannot
	// clobber each other out of order.
	listSeq uint64
}

func NewStore(apiClient api.Client, log logging.Logger, pageSize int) *Store {
	if pageSize <= 0 {
		pageSize = models.DefaultPageSize
	}
	return &Store{api: apiClient, log: log, pageSize: pageSize}
}

// Init populates the cache for the given identity. With a nil identity it
// is a no-op: the store stays empty and issues no requests.
//
// Notes, categories and labels are fetched concurrently. A notes failure
// fails Init; reference-set failures degrade to built-in defaults, as the
// UI can still render with them.
func (s *Store) Init(ctx context.Context, identity *models.User) error {
	if identity == nil {
		return nil
	}

	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.List(ctx, models.Filters{}, 1)
	})
	g.Go(func() error {
		categories, err := s.api.ListCategories(ctx)
		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			s.log.Warn(ctx, "failed to fetch categories, using defaults", "error", err)
			s.categories = defaultCategories()
			return nil
		}
		s.categories = categories
		return nil
	})
	g.Go(func() error {
		labels, err := s.api.ListLabels(ctx)
		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			s.log.Warn(ctx, "failed to fetch labels, using defaults", "error", err)
			s.labels = defaultLabels()
			return nil
		}
		s.labels = labels
		return nil
	})

	return g.Wait()
}

func (s *Store) begin() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return 0, ErrNotInitialized
	}
	s.lastErr = nil
	s.listSeq++
	return s.listSeq, nil
}

func (s *Store) checkReady() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return ErrNotInitialized
	}
	s.lastErr = nil
	return nil
}

// List replaces the whole in-memory collection and pagination metadata
// with one remote query at the given filters and page. A completion that
// has been superseded by a newer List is discarded without touching state.
func (s *Store) List(ctx context.Context, filters models.Filters, page int) error {
	seq, err := s.begin()
	if err != nil {
		return err
	}

	list, err := s.api.ListNotes(ctx, filters, page, s.pageSize)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.listSeq {
		s.log.Debug(ctx, "discarding stale notes listing", "seq", seq, "newest", s.listSeq)
		return nil
	}
	if err != nil {
		s.lastErr = err
		return err
	}

	s.notes = list.Notes
	s.pagination = list.Pagination
	s.filters = filters
	return nil
}

// ApplyFilters replaces the filter state and refetches at page 1.
func (s *Store) ApplyFilters(ctx context.Context, filters models.Filters) error {
	return s.List(ctx, filters, 1)
}

// ClearFilters drops all filters and refetches at page 1.
func (s *Store) ClearFilters(ctx context.Context) error {
	return s.List(ctx, models.Filters{}, 1)
}

// ChangePage refetches the given page with the current filters.
func (s *Store) ChangePage(ctx context.Context, page int) error {
	return s.List(ctx, s.Filters(), page)
}

// Refresh refetches the current filters and page.
func (s *Store) Refresh(ctx context.Context) error {
	return s.List(ctx, s.Filters(), s.Pagination().CurrentPage)
}

// Create sends the draft and prepends the server's canonical note to the
// collection. No refetch.
func (s *Store) Create(ctx context.Context, draft models.NoteDraft) (*models.Note, error) {
	if err := s.checkReady(); err != nil {
		return nil, err
	}

	note, err := s.api.CreateNote(ctx, draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return nil, err
	}
	s.notes = append([]models.Note{*note}, s.notes...)
	return note, nil
}

// Update sends the patch and replaces the matching entry in place by
// identity; ordering is preserved.
func (s *Store) Update(ctx context.Context, id string, draft models.NoteDraft) (*models.Note, error) {
	if err := s.checkReady(); err != nil {
		return nil, err
	}

	note, err := s.api.UpdateNote(ctx, id, draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return nil, err
	}
	s.replaceLocked(*note)
	return note, nil
}

// Delete removes the entry by identity once the server confirms.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.checkReady(); err != nil {
		return err
	}

	err := s.api.DeleteNote(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return err
	}
	kept := s.notes[:0]
	for _, n := range s.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.notes = kept
	return nil
}

// Publish flips a draft to published remotely, then refreshes the full
// listing: pagination counts may shift, so in-place patching is not used.
func (s *Store) Publish(ctx context.Context, id string) error {
	if err := s.checkReady(); err != nil {
		return err
	}

	if _, err := s.api.PublishNote(ctx, id); err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return err
	}
	return s.Refresh(ctx)
}

// ToggleVisibility flips public sharing for a note and applies the
// server's canonical copy (which carries the share token) in place.
func (s *Store) ToggleVisibility(ctx context.Context, id string, isPublic bool) (*models.Note, error) {
	if err := s.checkReady(); err != nil {
		return nil, err
	}

	note, err := s.api.SetNoteVisibility(ctx, id, isPublic)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return nil, err
	}
	s.replaceLocked(*note)
	return note, nil
}

// CreateCategory appends the created category to the reference set.
func (s *Store) CreateCategory(ctx context.Context, category models.Category) (*models.Category, error) {
	if err := s.checkReady(); err != nil {
		return nil, err
	}

	created, err := s.api.CreateCategory(ctx, category)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return nil, err
	}
	s.categories = append(s.categories, *created)
	return created, nil
}

// CreateLabel appends the created label to the reference set.
func (s *Store) CreateLabel(ctx context.Context, label models.Label) (*models.Label, error) {
	if err := s.checkReady(); err != nil {
		return nil, err
	}

	created, err := s.api.CreateLabel(ctx, label)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return nil, err
	}
	s.labels = append(s.labels, *created)
	return created, nil
}

func (s *Store) replaceLocked(note models.Note) {
	for i := range s.notes {
		if s.notes[i].ID == note.ID {
			s.notes[i] = note
			return
		}
	}
}

// Notes returns a copy of the current page of notes.
func (s *Store) Notes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Categories returns a copy of the category reference set.
func (s *Store) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Labels returns a copy of the label reference set.
func (s *Store) Labels() []models.Label {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Label, len(s.labels))
	copy(out, s.labels)
	return out
}

// Filters returns the active filter state.
func (s *Store) Filters() models.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Pagination returns the current pagination metadata.
func (s *Store) Pagination() models.Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagination
}

// Err returns the last operation error, or nil. Each new operation clears
// it before issuing its request.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// ClearErr dismisses the last error.
func (s *Store) ClearErr() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = nil
}
