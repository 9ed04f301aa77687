package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/prepmate/engine/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("init sequence counter: %w", err)
	}

	return &Store{db: db, client: client, seq: seq}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Points returns the point-event ledger repo.
func (s *Store) Points() PointRepo {
	return &pointRepo{client: s.client, seq: s.seq}
}

// Sessions returns the study-session repo.
func (s *Store) Sessions() SessionRepo {
	return &sessionRepo{client: s.client}
}

// Reviews returns the review-item repo.
func (s *Store) Reviews() ReviewRepo {
	return &reviewRepo{client: s.client, seq: s.seq}
}

// Achievements returns the achievement-unlock repo.
func (s *Store) Achievements() AchievementRepo {
	return &achievementRepo{client: s.client}
}

// Submissions returns the practice-question submission repo.
func (s *Store) Submissions() SubmissionRepo {
	return &submissionRepo{client: s.client, seq: s.seq}
}

// Notes returns the note repo.
func (s *Store) Notes() NoteRepo {
	return &noteRepo{client: s.client}
}

// Owners returns the owner repo.
func (s *Store) Owners() OwnerRepo {
	return &ownerRepo{client: s.client}
}

// LLMEvents returns the generator-call audit log repo.
func (s *Store) LLMEvents() LLMEventRepo {
	return &llmEventRepo{client: s.client, seq: s.seq}
}

// applyPragmas configures SQLite for reliable concurrent access.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. PREPMATE_DB environment variable
// 2. $XDG_DATA_HOME/prepmate/prepmate.db
// 3. ~/.local/share/prepmate/prepmate.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PREPMATE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "prepmate", "prepmate.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
