package notes

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gugan-zemuria/notes-app/internal/client/models"
	"github.com/gugan-zemuria/notes-app/internal/logging"
)

// fakeRemote implements api.Client as an in-memory mirror of the note
// collection, so cache behavior can be checked against ground truth.
type fakeRemote struct {
	mu     sync.Mutex
	notes  []models.Note
	nextID int

	categories []models.Category
	labels     []models.Label

	listHook func(filters models.Filters)

	listCalls     int
	listErr       error
	createErr     error
	updateErr     error
	deleteErr     error
	categoriesErr error
	labelsErr     error
}

func (f *fakeRemote) ids() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.notes))
	for _, n := range f.notes {
		out = append(out, n.ID)
	}
	sort.Strings(out)
	return out
}

func (f *fakeRemote) ListNotes(ctx context.Context, filters models.Filters, page, limit int) (*models.NoteList, error) {
	if f.listHook != nil {
		f.listHook(filters)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}

	total := len(f.notes)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	pageNotes := make([]models.Note, end-start)
	copy(pageNotes, f.notes[start:end])

	return &models.NoteList{
		Notes:      pageNotes,
		Pagination: models.PaginationFor(total, page, limit),
	}, nil
}

func (f *fakeRemote) CreateNote(ctx context.Context, draft models.NoteDraft) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	note := models.Note{
		ID:      fmt.Sprintf("n%d", f.nextID),
		Title:   draft.Title,
		Content: draft.Content,
		IsDraft: draft.IsDraft,
	}
	f.notes = append([]models.Note{note}, f.notes...)
	return &note, nil
}

func (f *fakeRemote) UpdateNote(ctx context.Context, id string, draft models.NoteDraft) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.notes {
		if f.notes[i].ID == id {
			f.notes[i].Title = draft.Title
			f.notes[i].Content = draft.Content
			n := f.notes[i]
			return &n, nil
		}
	}
	return nil, errors.New("note not found")
}

func (f *fakeRemote) DeleteNote(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.notes {
		if f.notes[i].ID == id {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return nil
		}
	}
	return errors.New("note not found")
}

func (f *fakeRemote) PublishNote(ctx context.Context, id string) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.notes {
		if f.notes[i].ID == id {
			f.notes[i].IsDraft = false
			n := f.notes[i]
			return &n, nil
		}
	}
	return nil, errors.New("note not found")
}

func (f *fakeRemote) SetNoteVisibility(ctx context.Context, id string, isPublic bool) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.notes {
		if f.notes[i].ID == id {
			f.notes[i].IsPublic = isPublic
			if isPublic {
				f.notes[i].ShareToken = "tok-" + id
			} else {
				f.notes[i].ShareToken = ""
			}
			n := f.notes[i]
			return &n, nil
		}
	}
	return nil, errors.New("note not found")
}

func (f *fakeRemote) ListCategories(ctx context.Context) ([]models.Category, error) {
	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}
	return f.categories, nil
}

func (f *fakeRemote) CreateCategory(ctx context.Context, c models.Category) (*models.Category, error) {
	c.ID = "c-new"
	f.mu.Lock()
	f.categories = append(f.categories, c)
	f.mu.Unlock()
	return &c, nil
}

func (f *fakeRemote) ListLabels(ctx context.Context) ([]models.Label, error) {
	if f.labelsErr != nil {
		return nil, f.labelsErr
	}
	return f.labels, nil
}

func (f *fakeRemote) CreateLabel(ctx context.Context, l models.Label) (*models.Label, error) {
	l.ID = "l-new"
	f.mu.Lock()
	f.labels = append(f.labels, l)
	f.mu.Unlock()
	return &l, nil
}

// auth surface, unused by the cache
func (f *fakeRemote) SignUp(ctx context.Context, e, p string) (*models.User, error)  { return nil, nil }
func (f *fakeRemote) SignIn(ctx context.Context, e, p string) (*models.User, error)  { return nil, nil }
func (f *fakeRemote) GoogleAuthURL(ctx context.Context) (string, error)              { return "", nil }
func (f *fakeRemote) SignOut(ctx context.Context) error                              { return nil }
func (f *fakeRemote) CurrentUser(ctx context.Context) (*models.User, error)          { return nil, nil }
func (f *fakeRemote) ResetPassword(ctx context.Context, email string) error          { return nil }
func (f *fakeRemote) ExchangeCode(ctx context.Context, code string) error            { return nil }
func (f *fakeRemote) AuthenticateWithToken(ctx context.Context, a, r string) error   { return nil }
func (f *fakeRemote) GetNote(ctx context.Context, id string) (*models.Note, error)   { return nil, nil }
func (f *fakeRemote) AutosaveNote(ctx context.Context, id string, d models.NoteDraft) (*models.Note, error) {
	return nil, nil
}
func (f *fakeRemote) PublicNote(ctx context.Context, t string) (*models.Note, error) { return nil, nil }

func storeIDs(s *Store) []string {
	notes := s.Notes()
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	sort.Strings(out)
	return out
}

func initStore(t *testing.T, remote *fakeRemote, pageSize int) *Store {
	t.Helper()
	s := NewStore(remote, logging.NewNop(), pageSize)
	require.NoError(t, s.Init(context.Background(), &models.User{ID: "u1"}))
	return s
}

// ---- tests ----

func TestStore_UninitializedPerformsNoNetworkActivity(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{}
	s := NewStore(remote, logging.NewNop(), 12)

	// nil identity: Init is a no-op
	require.NoError(t, s.Init(ctx, nil))
	assert.Zero(t, remote.listCalls)

	assert.ErrorIs(t, s.List(ctx, models.Filters{}, 1), ErrNotInitialized)
	_, err := s.Create(ctx, models.NoteDraft{Title: "x"})
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.ErrorIs(t, s.Delete(ctx, "n1"), ErrNotInitialized)
	assert.Zero(t, remote.listCalls)
}

func TestStore_CRUDReplayMatchesRemoteMirror(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{}
	s := initStore(t, remote, 100)

	n1, err := s.Create(ctx, models.NoteDraft{Title: "one"})
	require.NoError(t, err)
	n2, err := s.Create(ctx, models.NoteDraft{Title: "two"})
	require.NoError(t, err)
	_, err = s.Create(ctx, models.NoteDraft{Title: "three"})
	require.NoError(t, err)

	_, err = s.Update(ctx, n2.ID, models.NoteDraft{Title: "two revised"})
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, n1.ID))

	_, err = s.Create(ctx, models.NoteDraft{Title: "four"})
	require.NoError(t, err)

	// no lost or duplicated entries vs replaying against the mirror
	assert.Equal(t, remote.ids(), storeIDs(s))
}

func TestStore_CreatePrependsCanonicalNote(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{}
	s := initStore(t, remote, 12)

	_, err := s.Create(ctx, models.NoteDraft{Title: "first"})
	require.NoError(t, err)
	created, err := s.Create(ctx, models.NoteDraft{Title: "second"})
	require.NoError(t, err)

	notes := s.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, created.ID, notes[0].ID)
	// one listing from Init, none from the creates
	assert.Equal(t, 1, remote.listCalls)
}

func TestStore_UpdateReplacesInPlaceWithoutReorder(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{}
	s := initStore(t, remote, 12)

	a, _ := s.Create(ctx, models.NoteDraft{Title: "a"})
	b, _ := s.Create(ctx, models.NoteDraft{Title: "b"})
	c, _ := s.Create(ctx, models.NoteDraft{Title: "c"})

	_, err := s.Update(ctx, b.ID, models.NoteDraft{Title: "b2"})
	require.NoError(t, err)

	notes := s.Notes()
	require.Len(t, notes, 3)
	assert.Equal(t, []string{c.ID, b.ID, a.ID}, []string{notes[0].ID, notes[1].ID, notes[2].ID})
	assert.Equal(t, "b2", notes[1].Title)
}

func TestStore_FailedCreateSurfacesServerError(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{}
	s := initStore(t, remote, 12)

	remote.createErr = errors.New("title is required")
	_, err := s.Create(ctx, models.NoteDraft{})
	require.EqualError(t, err, "title is required")
	assert.EqualError(t, s.Err(), "title is required")
	assert.Empty(t, s.Notes())

	// a new operation clears the previous error before its request
	remote.createErr = nil
	_, err = s.Create(ctx, models.NoteDraft{Title: "ok"})
	require.NoError(t, err)
	assert.NoError(t, s.Err())
}

func TestStore_ClearErr(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{}
	s := initStore(t, remote, 12)

	remote.deleteErr = errors.New("nope")
	require.Error(t, s.Delete(ctx, "n1"))
	require.Error(t, s.Err())

	s.ClearErr()
	assert.NoError(t, s.Err())
}

func TestStore_PublishRefreshesListing(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{}
	s := initStore(t, remote, 12)

	draft, err := s.Create(ctx, models.NoteDraft{Title: "wip", IsDraft: true})
	require.NoError(t, err)
	require.True(t, draft.IsDraft)

	listsBefore := remote.listCalls
	require.NoError(t, s.Publish(ctx, draft.ID))
	assert.Equal(t, listsBefore+1, remote.listCalls)

	notes := s.Notes()
	require.Len(t, notes, 1)
	assert.False(t, notes[0].IsDraft)
}

func TestStore_ToggleVisibilityCarriesShareToken(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{}
	s := initStore(t, remote, 12)

	n, err := s.Create(ctx, models.NoteDraft{Title: "shareable"})
	require.NoError(t, err)

	shared, err := s.ToggleVisibility(ctx, n.ID, true)
	require.NoError(t, err)
	assert.True(t, shared.IsPublic)
	assert.NotEmpty(t, shared.ShareToken)

	notes := s.Notes()
	assert.Equal(t, shared.ShareToken, notes[0].ShareToken)
}

func TestStore_ApplyFiltersResetsToPageOne(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{}
	for i := 0; i < 30; i++ {
		remote.nextID++
		remote.notes = append(remote.notes, models.Note{ID: fmt.Sprintf("n%d", remote.nextID)})
	}
	s := initStore(t, remote, 12)

	require.NoError(t, s.ChangePage(ctx, 3))
	assert.Equal(t, 3, s.Pagination().CurrentPage)
	assert.False(t, s.Pagination().HasNextPage)

	drafts := true
	require.NoError(t, s.ApplyFilters(ctx, models.Filters{Drafts: &drafts}))
	assert.Equal(t, 1, s.Pagination().CurrentPage)
	require.NotNil(t, s.Filters().Drafts)
	assert.True(t, *s.Filters().Drafts)

	require.NoError(t, s.ClearFilters(ctx))
	assert.True(t, s.Filters().IsZero())
}

func TestStore_PaginationNormalization(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{}
	for i := 0; i < 25; i++ {
		remote.nextID++
		remote.notes = append(remote.notes, models.Note{ID: fmt.Sprintf("n%d", remote.nextID)})
	}
	s := initStore(t, remote, 12)

	p := s.Pagination()
	assert.Equal(t, 1, p.CurrentPage)
	assert.True(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)

	require.NoError(t, s.ChangePage(ctx, 3))
	p = s.Pagination()
	assert.False(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)
	assert.Len(t, s.Notes(), 1)
}

func TestStore_StaleListCompletionIsDiscarded(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{}
	remote.notes = []models.Note{{ID: "n1", Title: "from A"}}
	s := initStore(t, remote, 12)

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	remote.listHook = func(filters models.Filters) {
		if filters.Search == "slow" {
			once.Do(func() { close(entered) })
			<-release
		}
	}

	done := make(chan error, 1)
	go func() {
		done <- s.List(ctx, models.Filters{Search: "slow"}, 1)
	}()
	<-entered

	// a newer listing completes while the first is still in flight
	require.NoError(t, s.List(ctx, models.Filters{Search: "fresh"}, 1))
	assert.Equal(t, "fresh", s.Filters().Search)

	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("stale list call did not return")
	}

	// the stale completion must not have overwritten the newer result
	assert.Equal(t, "fresh", s.Filters().Search)
}

func TestStore_InitFallsBackToDefaultReferenceSets(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{
		categoriesErr: errors.New("unavailable"),
		labelsErr:     errors.New("unavailable"),
	}
	s := NewStore(remote, logging.NewNop(), 12)
	require.NoError(t, s.Init(ctx, &models.User{ID: "u1"}))

	assert.Len(t, s.Categories(), 8)
	assert.Len(t, s.Labels(), 8)
	assert.Equal(t, "Personal", s.Categories()[0].Name)
	assert.Equal(t, "Important", s.Labels()[0].Name)
}

func TestStore_InitFetchesReferenceSets(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{
		categories: []models.Category{{ID: "c1", Name: "Work"}},
		labels:     []models.Label{{ID: "l1", Name: "Urgent"}},
	}
	s := NewStore(remote, logging.NewNop(), 12)
	require.NoError(t, s.Init(ctx, &models.User{ID: "u1"}))

	require.Len(t, s.Categories(), 1)
	assert.Equal(t, "Work", s.Categories()[0].Name)
	require.Len(t, s.Labels(), 1)
	assert.Equal(t, "Urgent", s.Labels()[0].Name)
}

func TestStore_CreateCategoryAndLabelAppend(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{
		categories: []models.Category{{ID: "c1", Name: "Work"}},
	}
	s := initStore(t, remote, 12)

	created, err := s.CreateCategory(ctx, models.Category{Name: "Travel"})
	require.NoError(t, err)

	cats := s.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, created.ID, cats[1].ID)

	label, err := s.CreateLabel(ctx, models.Label{Name: "Soon"})
	require.NoError(t, err)
	labels := s.Labels()
	require.Len(t, labels, 1)
	assert.Equal(t, label.ID, labels[0].ID)
}
