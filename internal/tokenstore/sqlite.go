package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	visibrain "github.com/narke/visibrain-backend"
	_ "modernc.org/sqlite"
)

// The token table holds zero or one row: the CHECK constraint makes the
// single-record identity explicit, so an upsert can never create a second
// record even if two callbacks race
const schema = `
CREATE TABLE IF NOT EXISTS token (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	access_token TEXT NOT NULL,
	refresh_token TEXT
)`

// Store persists the token in a sqlite database at a configured path,
// surviving process restarts
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite database at the given path
// and ensures the token table exists
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create token table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context) (*visibrain.Token, error) {
	row := s.db.QueryRowContext(ctx, "SELECT access_token, refresh_token FROM token WHERE id = 1")

	var accessToken string
	var refreshToken sql.NullString
	if err := row.Scan(&accessToken, &refreshToken); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, visibrain.ErrNoToken
		}
		return nil, fmt.Errorf("query token: %w", err)
	}
	return &visibrain.Token{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.String,
	}, nil
}

func (s *Store) Save(ctx context.Context, token visibrain.Token) error {
	refreshToken := sql.NullString{String: token.RefreshToken, Valid: token.RefreshToken != ""}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO token (id, access_token, refresh_token) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token`,
		token.AccessToken, refreshToken,
	)
	if err != nil {
		return fmt.Errorf("upsert token: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
