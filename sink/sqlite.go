// SPDX-License-Identifier: MIT

package sink

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/katalvlaran/upword/word"
)

// ErrRunNotFound is returned by LoadRun for an unknown run ID.
var ErrRunNotFound = errors.New("sink: run not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id            TEXT PRIMARY KEY,
	alphabet      TEXT    NOT NULL,
	window_length INTEGER NOT NULL,
	target_length INTEGER NOT NULL,
	randomized    INTEGER NOT NULL,
	seed          INTEGER NOT NULL,
	started_at    TEXT    NOT NULL,
	finished_at   TEXT,
	results       INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS upwords (
	run_id TEXT    NOT NULL REFERENCES runs(id),
	seq    INTEGER NOT NULL,
	word   TEXT    NOT NULL,
	PRIMARY KEY (run_id, seq)
);`

// Run describes one search run as stored in the runs table.
type Run struct {
	ID           uuid.UUID
	Alphabet     string
	WindowLength int
	TargetLength int
	Randomized   bool
	Seed         int64
	StartedAt    time.Time
	FinishedAt   time.Time // zero while running
	Results      int
}

// NewRun describes a fresh run over p with a random UUID.
func NewRun(p word.Params, randomized bool, seed int64) Run {
	return Run{
		ID:           uuid.New(),
		Alphabet:     p.Alphabet().String(),
		WindowLength: p.WindowLength(),
		TargetLength: p.TargetLength(),
		Randomized:   randomized,
		Seed:         seed,
		StartedAt:    time.Now().UTC(),
	}
}

// SQLite stores words of one run in a SQLite database.
type SQLite struct {
	db     *sql.DB
	run    Run
	insert *sql.Stmt
	seq    int
	closed bool
}

// OpenSQLite opens (or creates) the database at path, ensures the schema
// and registers run.
func OpenSQLite(ctx context.Context, path string, run Run) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sink: open %s: %w", path, err)
	}
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sink: ping %s: %w", path, err)
	}
	if _, err = db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sink: create schema: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO runs (id, alphabet, window_length, target_length, randomized, seed, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID.String(), run.Alphabet, run.WindowLength, run.TargetLength,
		run.Randomized, run.Seed, run.StartedAt.Format(time.RFC3339Nano))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sink: insert run %s: %w", run.ID, err)
	}

	insert, err := db.PrepareContext(ctx, `INSERT INTO upwords (run_id, seq, word) VALUES (?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sink: prepare insert: %w", err)
	}

	return &SQLite{db: db, run: run, insert: insert}, nil
}

// Run returns the run this sink writes to.
func (s *SQLite) Run() Run { return s.run }

// DB exposes the underlying handle for queries.
func (s *SQLite) DB() *sql.DB { return s.db }

// Put stores w as the next word of the run.
func (s *SQLite) Put(ctx context.Context, w word.Word) error {
	if s.closed {
		return ErrClosed
	}
	if _, err := s.insert.ExecContext(ctx, s.run.ID.String(), s.seq+1, string(w)); err != nil {
		return fmt.Errorf("sink: insert %q: %w", w, err)
	}
	s.seq++

	return nil
}

// Close stamps the run as finished with its result count and closes the
// database. Closing twice is a no-op.
func (s *SQLite) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	_, err := s.db.Exec(`UPDATE runs SET finished_at = ?, results = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), s.seq, s.run.ID.String())
	if err != nil {
		errs = append(errs, fmt.Errorf("sink: finish run %s: %w", s.run.ID, err))
	}
	if err = s.insert.Close(); err != nil {
		errs = append(errs, err)
	}
	if err = s.db.Close(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// LoadWords returns the words of run id in discovery order.
func LoadWords(ctx context.Context, db *sql.DB, id uuid.UUID) ([]word.Word, error) {
	rows, err := db.QueryContext(ctx, `SELECT word FROM upwords WHERE run_id = ? ORDER BY seq`, id.String())
	if err != nil {
		return nil, fmt.Errorf("sink: query words: %w", err)
	}
	defer rows.Close()

	var out []word.Word
	for rows.Next() {
		var w string
		if err = rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("sink: scan word: %w", err)
		}
		out = append(out, word.Word(w))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("sink: iterate words: %w", err)
	}

	return out, nil
}

// LoadRun reads the runs row for id.
func LoadRun(ctx context.Context, db *sql.DB, id uuid.UUID) (Run, error) {
	var (
		run      Run
		rawID    string
		started  string
		finished sql.NullString
	)
	err := db.QueryRowContext(ctx,
		`SELECT id, alphabet, window_length, target_length, randomized, seed, started_at, finished_at, results
		 FROM runs WHERE id = ?`, id.String()).
		Scan(&rawID, &run.Alphabet, &run.WindowLength, &run.TargetLength,
			&run.Randomized, &run.Seed, &started, &finished, &run.Results)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("sink: query run: %w", err)
	}

	if run.ID, err = uuid.Parse(rawID); err != nil {
		return Run{}, fmt.Errorf("sink: parse run id: %w", err)
	}
	if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return Run{}, fmt.Errorf("sink: parse started_at: %w", err)
	}
	if finished.Valid {
		if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finished.String); err != nil {
			return Run{}, fmt.Errorf("sink: parse finished_at: %w", err)
		}
	}

	return run, nil
}
