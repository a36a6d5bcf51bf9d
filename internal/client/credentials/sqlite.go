package credentials

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gugan-zemuria/notes-app/internal/dbx"
)

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyExpiresAt    = "expires_at"
)

// SQLiteStore keeps credentials in a small key/value table.
type SQLiteStore struct {
	db *sql.DB
}

// InitDatabase opens (creating if needed) the client database at path and
// ensures the credentials table exists.
func InitDatabase(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open client database: %w", err)
	}
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS credentials (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init credentials table: %w", err)
	}
	return db, nil
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) set(ctx context.Context, tx dbx.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

// Save replaces all stored credential fields in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, creds Credentials) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyAccessToken, creds.AccessToken); err != nil {
			return err
		}
		if err := s.set(ctx, tx, keyRefreshToken, creds.RefreshToken); err != nil {
			return err
		}
		expiry := ""
		if !creds.ExpiresAt.IsZero() {
			expiry = creds.ExpiresAt.UTC().Format(time.RFC3339)
		}
		return s.set(ctx, tx, keyExpiresAt, expiry)
	})
}

// Load returns stored credentials, or nil when nothing usable is stored.
// Expired material is wiped and reported as absent.
func (s *SQLiteStore) Load(ctx context.Context) (*Credentials, error) {
	access, err := s.get(ctx, keyAccessToken)
	if err != nil {
		return nil, err
	}
	if access == "" {
		return nil, nil
	}

	refresh, err := s.get(ctx, keyRefreshToken)
	if err != nil {
		return nil, err
	}

	creds := Credentials{AccessToken: access, RefreshToken: refresh}

	expiry, err := s.get(ctx, keyExpiresAt)
	if err != nil {
		return nil, err
	}
	if expiry != "" {
		t, err := time.Parse(time.RFC3339, expiry)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored expiry: %w", err)
		}
		creds.ExpiresAt = t
	}

	if creds.Expired(time.Now()) {
		if err := s.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &creds, nil
}

// Clear removes all stored credential fields.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
