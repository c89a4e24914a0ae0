// Package vocab persists named tokenizer vocabularies in the project SQLite
// database and records an audit row per build.
package vocab

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lexitok/lexitok/internal/db"
	"github.com/lexitok/lexitok/internal/tokenizer"
)

// Store provides read/write access to saved vocabularies.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given DB.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Entry summarizes a saved vocabulary.
type Entry struct {
	ID            string
	Name          string
	Size          int
	CaseSensitive bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Build is one recorded build operation for a vocabulary.
type Build struct {
	ID         string
	VocabID    string
	Source     string
	TextCount  int
	TokenCount int
	Truncated  bool
	CreatedAt  time.Time
}

// Save upserts the tokenizer's snapshot under name and returns the
// vocabulary's id.
func (s *Store) Save(name string, t *tokenizer.Tokenizer) (string, error) {
	snap := t.Snapshot()
	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("store: marshal snapshot: %w", err)
	}

	var id string
	err = s.db.Conn().QueryRow(`
		INSERT INTO vocabularies (id, name, snapshot, size, case_sensitive)
		VALUES (lower(hex(randomblob(16))), ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
		    snapshot       = excluded.snapshot,
		    size           = excluded.size,
		    case_sensitive = excluded.case_sensitive,
		    updated_at     = CURRENT_TIMESTAMP
		RETURNING id`,
		name, string(data), t.Size(), t.CaseSensitive(),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("store: save vocabulary %q: %w", name, err)
	}
	return id, nil
}

// Get loads the vocabulary saved under name and reconstructs its tokenizer.
func (s *Store) Get(name string) (*tokenizer.Tokenizer, error) {
	var data string
	err := s.db.Conn().QueryRow(
		`SELECT snapshot FROM vocabularies WHERE name = ?`, name,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("store: vocabulary %q not found — run `lexitok build` first", name)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get vocabulary %q: %w", name, err)
	}

	var snap tokenizer.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("store: decode vocabulary %q: %w", name, err)
	}
	return tokenizer.FromSnapshot(snap), nil
}

// List returns all saved vocabularies, most recently updated first.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Conn().Query(`
		SELECT id, name, size, case_sensitive, created_at, updated_at
		FROM vocabularies ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list vocabularies: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt, updatedAt string
		if err := rows.Scan(&e.ID, &e.Name, &e.Size, &e.CaseSensitive, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("store: scan vocabulary: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes the vocabulary saved under name. Deleting a name that does
// not exist returns an error.
func (s *Store) Delete(name string) error {
	res, err := s.db.Conn().Exec(`DELETE FROM vocabularies WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("store: delete vocabulary %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("store: vocabulary %q not found", name)
	}
	return nil
}

// RecordBuild appends an audit row for a completed build operation.
func (s *Store) RecordBuild(vocabID, source string, textCount int, res tokenizer.BuildResult) error {
	_, err := s.db.Conn().Exec(`
		INSERT INTO builds (id, vocab_id, source, text_count, token_count, truncated)
		VALUES (lower(hex(randomblob(16))), ?, ?, ?, ?, ?)`,
		vocabID, source, textCount, res.TokenCount, res.Truncated,
	)
	if err != nil {
		return fmt.Errorf("store: record build: %w", err)
	}
	return nil
}

// ListBuilds returns the build history for a named vocabulary, newest first.
func (s *Store) ListBuilds(name string) ([]Build, error) {
	rows, err := s.db.Conn().Query(`
		SELECT b.id, b.vocab_id, b.source, b.text_count, b.token_count, b.truncated, b.created_at
		FROM builds b
		JOIN vocabularies v ON v.id = b.vocab_id
		WHERE v.name = ?
		ORDER BY b.created_at DESC`, name)
	if err != nil {
		return nil, fmt.Errorf("store: list builds: %w", err)
	}
	defer rows.Close()

	var builds []Build
	for rows.Next() {
		var b Build
		var createdAt string
		if err := rows.Scan(&b.ID, &b.VocabID, &b.Source, &b.TextCount, &b.TokenCount, &b.Truncated, &createdAt); err != nil {
			return nil, fmt.Errorf("store: scan build: %w", err)
		}
		b.CreatedAt = parseTime(createdAt)
		builds = append(builds, b)
	}
	return builds, rows.Err()
}

// parseTime parses SQLite's default CURRENT_TIMESTAMP format.
func parseTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05Z"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}
