// Package manifest records generation provenance in SQLite: which runs
// happened, what each run generated, and the content hashes of definitions
// and outputs. Because generation is deterministic, comparing hashes across
// runs answers "did anything change" without re-reading generated files.
package manifest

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store is a manifest database. SQLite only supports one writer at a time
// and generation is sequential anyway, so the pool is capped at a single
// connection.
type Store struct {
	db *sql.DB
}

// Record is one generated file within a run.
type Record struct {
	RunID   string
	Source  string // definition file name
	Output  string // generated file name
	DefHash string
	OutHash string
	Size    int64
}

// Open creates or opens a manifest database at path, applying pragmas and
// the schema. Idempotent.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect manifest: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma: %w", err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// BeginRun records a new generation run and returns its id. Run ids are
// UUIDv7, so sorting by id also sorts by start time.
func (s *Store) BeginRun(ctx context.Context, corpusDir, outDir string) (string, error) {
	id := uuid.Must(uuid.NewV7()).String()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, corpus_dir, out_dir)
		VALUES (?, ?, ?, ?)
	`, id, time.Now().UTC().Format(time.RFC3339), corpusDir, outDir)
	if err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}
	return id, nil
}

// RecordOutput records one generated file for a run.
func (s *Store) RecordOutput(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO outputs (run_id, source, output, def_hash, out_hash, size)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.RunID, rec.Source, rec.Output, rec.DefHash, rec.OutHash, rec.Size)
	if err != nil {
		return fmt.Errorf("record output: %w", err)
	}
	return nil
}

// LastOutputHash returns the output hash the most recent previous run
// recorded for source, or "" when no previous run covered it. Used to report
// unchanged files across runs.
func (s *Store) LastOutputHash(ctx context.Context, source string) (string, error) {
	var hash string
	err := s.db.QueryRowContext(ctx, `
		SELECT out_hash FROM outputs
		WHERE source = ?
		ORDER BY run_id DESC
		LIMIT 1
	`, source).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query output hash: %w", err)
	}
	return hash, nil
}

// Outputs returns the records of one run in source order.
func (s *Store) Outputs(ctx context.Context, runID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, source, output, def_hash, out_hash, size
		FROM outputs
		WHERE run_id = ?
		ORDER BY source
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query outputs: %w", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.RunID, &r.Source, &r.Output, &r.DefHash, &r.OutHash, &r.Size); err != nil {
			return nil, fmt.Errorf("scan output: %w", err)
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}
