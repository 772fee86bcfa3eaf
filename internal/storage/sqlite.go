package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteLeaderboard stores scores in a SQLite database.
type SQLiteLeaderboard struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteLeaderboard, error) {
	dbPath, err := preparePath(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	lb := &SQLiteLeaderboard{db: db}
	if err := lb.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return lb, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLiteLeaderboard) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC, id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteLeaderboard) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save records a new score.
func (s *SQLiteLeaderboard) Save(name string, score int) error {
	_, err := s.db.Exec(
		"INSERT INTO scores (player_name, score) VALUES (?, ?)",
		name, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// Top retrieves the n best scores.
func (s *SQLiteLeaderboard) Top(n int) ([]Entry, error) {
	if n <= 0 {
		n = TopN
	}
	return s.query(
		`SELECT player_name, score, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		n,
	)
}

// All retrieves every score.
func (s *SQLiteLeaderboard) All() ([]Entry, error) {
	return s.query(
		`SELECT player_name, score, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC`,
	)
}

// HighScore returns the highest score, or 0 if no scores exist.
func (s *SQLiteLeaderboard) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Clear deletes every score.
func (s *SQLiteLeaderboard) Clear() error {
	if _, err := s.db.Exec("DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

func (s *SQLiteLeaderboard) query(q string, args ...any) ([]Entry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.Name, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// The driver may return the datetime as time.Time or as a string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}
