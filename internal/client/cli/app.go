package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gugan-zemuria/notes-app/internal/client/api"
	"github.com/gugan-zemuria/notes-app/internal/client/config"
	"github.com/gugan-zemuria/notes-app/internal/client/credentials"
	"github.com/gugan-zemuria/notes-app/internal/client/notes"
	"github.com/gugan-zemuria/notes-app/internal/client/session"
	"github.com/gugan-zemuria/notes-app/internal/cryptox"
	"github.com/gugan-zemuria/notes-app/internal/logging"

	_ "modernc.org/sqlite"
)

// App owns the wired client stack: transport, credential store, session
// bootstrapper, note cache, autosaver and decryptor.
type App struct {
	config    *config.Config
	log       logging.Logger
	api       api.Client
	db        *sql.DB
	bootstrap *session.Bootstrapper
	notes     *notes.Store
	saver     *notes.Autosaver
	decryptor *cryptox.Decryptor
	reader    *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := newLogger(c.LogLevel)

	db, err := credentials.InitDatabase(ctx, c.CredentialsPath)
	if err != nil {
		log.Error(ctx, "error initializing credentials database", "error", err)
		return nil, err
	}
	credStore := credentials.NewSQLiteStore(db)

	apiClient, err := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	bootstrap := session.New(apiClient, credStore, apiClient, log, session.Options{
		RefreshAttempts: c.RefreshAttempts,
		RefreshInterval: c.RefreshInterval,
		AwaitAttempts:   c.AwaitAttempts,
		AwaitInterval:   c.AwaitInterval,
	})

	return &App{
		config:    c,
		log:       log,
		api:       apiClient,
		db:        db,
		bootstrap: bootstrap,
		notes:     notes.NewStore(apiClient, log, c.PageSize),
		saver:     notes.NewAutosaver(apiClient, log, c.AutosaveDelay),
		decryptor: cryptox.NewDecryptor(log),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func newLogger(level string) logging.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return logging.NewSlogLogger(slog.New(h))
}

// Run resolves any stored session, loads the note cache when an identity
// is present, and hands control to the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	s, err := a.bootstrap.Bootstrap(ctx)
	if err != nil {
		a.log.Warn(ctx, "session bootstrap failed", "error", err)
	}
	if s.Authenticated() {
		printlnFn("Welcome back,", s.Identity.Email)
		if err := a.notes.Init(ctx, s.Identity); err != nil {
			a.log.Warn(ctx, "failed to load notes", "error", err)
		}
	}

	printlnFn("Notes CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// Close releases the autosaver and the credentials database.
func (a *App) Close() {
	a.saver.Stop()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.bootstrap.Current().Authenticated()
}

func (a *App) status() string {
	s := a.bootstrap.Current()
	if !s.Authenticated() {
		return ""
	}
	return "(" + s.Identity.Email + ")"
}
