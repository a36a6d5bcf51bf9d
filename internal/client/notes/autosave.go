package notes

import (
	"context"
	"sync"
	"time"

	"github.com/gugan-zemuria/notes-app/internal/client/api"
	"github.com/gugan-zemuria/notes-app/internal/client/models"
	"github.com/gugan-zemuria/notes-app/internal/logging"
)

// Autosaver debounces draft edits onto the autosave endpoint. Each
// Schedule supersedes the previous pending save; Stop cancels whatever is
// pending so a stale save can never fire after teardown.
type Autosaver struct {
	api   api.Client
	log   logging.Logger
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

func NewAutosaver(apiClient api.Client, log logging.Logger, delay time.Duration) *Autosaver {
	if delay <= 0 {
		delay = 2 * time.Second
	}
	return &Autosaver{api: apiClient, log: log, delay: delay}
}

// Schedule queues draft to be autosaved after the debounce delay,
// cancelling any previously pending save. Autosave failures are logged,
// not surfaced: the user's explicit save path reports its own errors.
func (a *Autosaver) Schedule(ctx context.Context, id string, draft models.NoteDraft) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return
	}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, func() {
		a.mu.Lock()
		if a.stopped {
			a.mu.Unlock()
			return
		}
		a.mu.Unlock()

		if _, err := a.api.AutosaveNote(ctx, id, draft); err != nil {
			a.log.Warn(ctx, "autosave failed", "note_id", id, "error", err)
			return
		}
		a.log.Debug(ctx, "autosaved", "note_id", id)
	})
}

// Cancel clears any pending save without stopping the autosaver. Called
// when an explicit save supersedes the debounced one, so a stale autosave
// cannot fire after the state it captured has already changed.
func (a *Autosaver) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// Stop cancels any pending save and prevents future ones.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopped = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
