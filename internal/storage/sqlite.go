// Package storage provides SQLite-based run history for Gold Digger.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only summaries of finished runs are stored. A run in progress is never
// saved or restored.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a run ID does not exist.
var ErrNotFound = errors.New("storage: run not found")

// End reasons recorded for a run.
const (
	EndArtifact = "artifact" // Found the artifact
	EndNewGame  = "new_game" // Player asked for a new world
	EndQuit     = "quit"     // Program or session closed
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sqlx.DB
}

// Run is the summary of one finished run.
type Run struct {
	ID         string
	Seed       int64
	Difficulty string
	GoldMined  int // Gold dug up during the run
	GoldHeld   int // Gold left unspent at the end
	BlocksDug  int
	Bonus      int // Bonus durability bought
	Artifact   bool
	EndReason  string
	Duration   time.Duration // Simulated play time
	CreatedAt  time.Time
}

// runRow is the database shape of Run.
type runRow struct {
	ID         string `db:"id"`
	Seed       int64  `db:"seed"`
	Difficulty string `db:"difficulty"`
	GoldMined  int    `db:"gold_mined"`
	GoldHeld   int    `db:"gold_held"`
	BlocksDug  int    `db:"blocks_dug"`
	Bonus      int    `db:"bonus"`
	Artifact   bool   `db:"artifact"`
	EndReason  string `db:"end_reason"`
	DurationMS int64  `db:"duration_ms"`
	CreatedAt  int64  `db:"created_at"` // Unix milliseconds
}

func (r runRow) run() Run {
	return Run{
		ID:         r.ID,
		Seed:       r.Seed,
		Difficulty: r.Difficulty,
		GoldMined:  r.GoldMined,
		GoldHeld:   r.GoldHeld,
		BlocksDug:  r.BlocksDug,
		Bonus:      r.Bonus,
		Artifact:   r.Artifact,
		EndReason:  r.EndReason,
		Duration:   time.Duration(r.DurationMS) * time.Millisecond,
		CreatedAt:  time.UnixMilli(r.CreatedAt),
	}
}

func rowOf(r Run) runRow {
	return runRow{
		ID:         r.ID,
		Seed:       r.Seed,
		Difficulty: r.Difficulty,
		GoldMined:  r.GoldMined,
		GoldHeld:   r.GoldHeld,
		BlocksDug:  r.BlocksDug,
		Bonus:      r.Bonus,
		Artifact:   r.Artifact,
		EndReason:  r.EndReason,
		DurationMS: r.Duration.Milliseconds(),
		CreatedAt:  r.CreatedAt.UnixMilli(),
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			difficulty TEXT NOT NULL,
			gold_mined INTEGER NOT NULL DEFAULT 0,
			gold_held INTEGER NOT NULL DEFAULT 0,
			blocks_dug INTEGER NOT NULL DEFAULT 0,
			bonus INTEGER NOT NULL DEFAULT 0,
			artifact INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_gold ON runs(gold_mined DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. A missing ID or timestamp is filled in.
// Returns the run as stored.
func (s *Store) SaveRun(r Run) (Run, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	// Stored at millisecond precision
	r.CreatedAt = time.UnixMilli(r.CreatedAt.UnixMilli())
	r.Duration = r.Duration.Truncate(time.Millisecond)

	_, err := s.db.NamedExec(
		`INSERT INTO runs (id, seed, difficulty, gold_mined, gold_held, blocks_dug, bonus,
			artifact, end_reason, duration_ms, created_at)
		 VALUES (:id, :seed, :difficulty, :gold_mined, :gold_held, :blocks_dug, :bonus,
			:artifact, :end_reason, :duration_ms, :created_at)`,
		rowOf(r),
	)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r, nil
}

// RunByID retrieves a single run.
func (s *Store) RunByID(id string) (Run, error) {
	var row runRow
	err := s.db.Get(&row, `SELECT * FROM runs WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot get run: %w", err)
	}
	return row.run(), nil
}

// BestRuns retrieves the N runs with the most gold mined.
// Ties go to the earlier run.
func (s *Store) BestRuns(limit int) ([]Run, error) {
	return s.selectRuns(
		`SELECT * FROM runs ORDER BY gold_mined DESC, created_at ASC LIMIT ?`, limit)
}

// RecentRuns retrieves the N most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	return s.selectRuns(
		`SELECT * FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
}

func (s *Store) selectRuns(query string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []runRow
	if err := s.db.Select(&rows, query, limit); err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}

	runs := make([]Run, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, row.run())
	}
	return runs, nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec(`DELETE FROM runs`); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs       int
	Artifacts  int
	TotalGold  int64
	BestGold   int
	TotalDug   int64
	PlayTime   time.Duration
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (Stats, error) {
	var row struct {
		Runs       int   `db:"runs"`
		Artifacts  int   `db:"artifacts"`
		TotalGold  int64 `db:"total_gold"`
		BestGold   int   `db:"best_gold"`
		TotalDug   int64 `db:"total_dug"`
		PlayTimeMS int64 `db:"play_time_ms"`
		LastPlayed int64 `db:"last_played"`
	}
	err := s.db.Get(&row,
		`SELECT COUNT(*) AS runs,
			COALESCE(SUM(artifact), 0) AS artifacts,
			COALESCE(SUM(gold_mined), 0) AS total_gold,
			COALESCE(MAX(gold_mined), 0) AS best_gold,
			COALESCE(SUM(blocks_dug), 0) AS total_dug,
			COALESCE(SUM(duration_ms), 0) AS play_time_ms,
			COALESCE(MAX(created_at), 0) AS last_played
		 FROM runs`)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	st := Stats{
		Runs:      row.Runs,
		Artifacts: row.Artifacts,
		TotalGold: row.TotalGold,
		BestGold:  row.BestGold,
		TotalDug:  row.TotalDug,
		PlayTime:  time.Duration(row.PlayTimeMS) * time.Millisecond,
	}
	if row.LastPlayed > 0 {
		st.LastPlayed = time.UnixMilli(row.LastPlayed)
	}
	return st, nil
}
