// Package storage persists finished-session scores.
//
// Two backends are available: a flat file of "name,score" lines, and a
// SQLite database using the pure-Go modernc.org/sqlite driver.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TopN is the leaderboard length shown to players.
const TopN = 5

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("storage: unknown backend")

// Entry is a single leaderboard record.
type Entry struct {
	Name      string    `csv:"name"`
	Score     int       `csv:"score"`
	CreatedAt time.Time `csv:"-"` // zero for the file backend
}

// Leaderboard stores scores and returns the best ones.
type Leaderboard interface {
	// Save records one finished session.
	Save(name string, score int) error
	// Top returns up to n entries ordered by score, highest first.
	// Entries with equal scores keep their insertion order.
	Top(n int) ([]Entry, error)
	// All returns every entry in the same order as Top.
	All() ([]Entry, error)
	Close() error
}

// Open opens the leaderboard for backend at path.
func Open(backend, path string) (Leaderboard, error) {
	var (
		lb  Leaderboard
		err error
	)
	switch backend {
	case BackendFile, "":
		lb, err = OpenFile(path)
	case BackendSQLite:
		lb, err = OpenSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	if err != nil {
		return nil, err
	}
	return lb, nil
}

// preparePath expands a leading ~ and creates the parent directories.
func preparePath(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}

// limit clamps n to the number of entries; n <= 0 means TopN.
func limit(entries []Entry, n int) []Entry {
	if n <= 0 {
		n = TopN
	}
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
