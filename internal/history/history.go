// Package history keeps an index of saved transcriptions in SQLite.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("history entry not found")

type Source string

const (
	SourceFile Source = "file"
	SourceLive Source = "live"
)

const defaultListLimit = 20

type Entry struct {
	ID          string    `json:"id"`
	SessionName string    `json:"session_name"`
	Source      Source    `json:"source"`
	TextPath    string    `json:"text_path"`
	JSONPath    string    `json:"json_path"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
}

//go:generate moq -rm -out history_mock.go . Recorder
type Recorder interface {
	Record(ctx context.Context, entry Entry) (Entry, error)
}

var _ Recorder = (*Store)(nil)

// Store is a SQLite-backed history. A Store opened with history disabled
// has no database and accepts every call as a no-op.
// createdAtLayout has a fixed width so created_at sorts as text.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

type Store struct {
	db    *sql.DB
	clock func() time.Time
	newID func() string
}

func Open(ctx context.Context, path string, enabled bool) (*Store, error) {
	s := &Store{clock: time.Now, newID: uuid.NewString}
	if !enabled {
		slog.Debug("history disabled", "component", "history")
		return s, nil
	}
	if path == "" {
		return nil, errors.New("history path must be specified")
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}
	s.db = db

	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	slog.Info("history opened", "component", "history", "path", path)
	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	ddl := `
CREATE TABLE IF NOT EXISTS transcriptions (
    id TEXT PRIMARY KEY,
    session_name TEXT NOT NULL,
    source TEXT NOT NULL,
    text_path TEXT NOT NULL,
    json_path TEXT NOT NULL,
    text TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transcriptions_created ON transcriptions(created_at);
`
	_, err := s.db.ExecContext(ctx, ddl)
	return err
}

func (s *Store) Enabled() bool {
	return s.db != nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record stores entry, filling in its ID and creation time when unset.
func (s *Store) Record(ctx context.Context, entry Entry) (Entry, error) {
	if entry.ID == "" {
		entry.ID = s.newID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.clock()
	}
	entry.CreatedAt = entry.CreatedAt.UTC()
	if s.db == nil {
		return entry, nil
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transcriptions(id, session_name, source, text_path, json_path, text, created_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.SessionName, string(entry.Source), entry.TextPath, entry.JSONPath, entry.Text,
		entry.CreatedAt.Format(createdAtLayout))
	if err != nil {
		return Entry{}, fmt.Errorf("failed to record history entry: %w", err)
	}
	return entry, nil
}

// List returns up to limit entries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_name, source, text_path, json_path, text, created_at
		 FROM transcriptions ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	if s.db == nil {
		return Entry{}, ErrNotFound
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, session_name, source, text_path, json_path, text, created_at
		 FROM transcriptions WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	return e, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var (
		e       Entry
		source  string
		created string
	)
	if err := row.Scan(&e.ID, &e.SessionName, &source, &e.TextPath, &e.JSONPath, &e.Text, &created); err != nil {
		return Entry{}, err
	}
	e.Source = Source(source)
	ts, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid created_at %q: %w", created, err)
	}
	e.CreatedAt = ts
	return e, nil
}
