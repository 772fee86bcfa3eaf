package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/gocarina/gocsv"
)

// FileLeaderboard keeps scores as one "name,score" line per session.
// Lines are only ever appended; ordering happens on read.
type FileLeaderboard struct {
	path string
	mu   sync.Mutex
}

// OpenFile prepares a flat-file leaderboard at path. The file itself is
// created on the first Save.
func OpenFile(path string) (*FileLeaderboard, error) {
	path, err := preparePath(path)
	if err != nil {
		return nil, err
	}
	return &FileLeaderboard{path: path}, nil
}

// Path returns the resolved file path.
func (f *FileLeaderboard) Path() string {
	return f.path
}

// Save appends one record.
func (f *FileLeaderboard) Save(name string, score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("storage: cannot open score file: %w", err)
	}
	defer file.Close()

	records := []Entry{{Name: name, Score: score}}
	if err := gocsv.MarshalWithoutHeaders(records, file); err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// Top returns the n best entries.
func (f *FileLeaderboard) Top(n int) ([]Entry, error) {
	entries, err := f.All()
	if err != nil {
		return nil, err
	}
	return limit(entries, n), nil
}

// All reads every record, ordered by score descending. A missing file is
// an empty leaderboard.
func (f *FileLeaderboard) All() ([]Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read score file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	entries, err := parseEntries(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries, nil
}

// Close is a no-op; the file is opened per operation.
func (f *FileLeaderboard) Close() error {
	return nil
}

// parseEntries decodes "name,score" lines. Spaces after the comma are
// accepted, so "Amy, 50" parses like "Amy,50".
func parseEntries(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	var entries []Entry
	if err := gocsv.UnmarshalCSVWithoutHeaders(reader, &entries); err != nil {
		return nil, fmt.Errorf("storage: cannot parse score file: %w", err)
	}
	return entries, nil
}
