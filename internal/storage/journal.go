// Package storage keeps a journal of resolved attempts for the current run.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The database lives in memory only and is gone when the process exits.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome labels stored in the journal.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Journal records resolved attempts of a single session.
type Journal struct {
	db        *sql.DB
	sessionID string
}

// AttemptRecord is one resolved attempt.
type AttemptRecord struct {
	ID         int64
	SessionID  string
	Outcome    string // OutcomeSuccess or OutcomeFailure
	Cause      string // caught, late, too early, while falling
	Phase      string // Phase the object was in when judged
	HeldMs     int64  // Time spent holding before the judge, 0 outside holding
	HoldMs     int    // Hold window of the attempt
	RiseSpeed  int
	TargetY    int
	ResolvedAt int64 // Game clock reading in milliseconds
	CreatedAt  time.Time
}

// SessionSummary aggregates the journal of a session.
type SessionSummary struct {
	SessionID   string
	Total       int
	Successes   int
	Failures    int
	SuccessRate float64 // Successes / Total, 0 when nothing was resolved
	// Reaction times are the held durations of successful catches
	MeanReactionMs float64
	BestReactionMs int64
	HasReaction    bool
}

// OpenJournal creates an empty in-memory journal with a fresh session ID.
func OpenJournal() (*Journal, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every pooled connection to :memory: would be a separate database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	j := &Journal{
		db:        db,
		sessionID: uuid.NewString(),
	}

	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return j, nil
}

// migrate creates the database schema.
func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			cause TEXT NOT NULL,
			phase TEXT NOT NULL,
			held_ms INTEGER NOT NULL DEFAULT 0,
			hold_ms INTEGER NOT NULL DEFAULT 0,
			rise_speed INTEGER NOT NULL DEFAULT 0,
			target_y INTEGER NOT NULL DEFAULT 0,
			resolved_at INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_session ON attempts(session_id);
	`

	_, err := j.db.Exec(schema)
	return err
}

// SessionID returns the identifier of the current session.
func (j *Journal) SessionID() string {
	return j.sessionID
}

// NewSession starts a new session. Earlier records stay in the database but
// are no longer part of Attempts or Summary.
func (j *Journal) NewSession() string {
	j.sessionID = uuid.NewString()
	return j.sessionID
}

// Close closes the database connection and discards the journal.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// RecordAttempt appends a resolved attempt to the current session.
// Returns the ID of the inserted record.
func (j *Journal) RecordAttempt(rec AttemptRecord) (int64, error) {
	if rec.Outcome != OutcomeSuccess && rec.Outcome != OutcomeFailure {
		return 0, fmt.Errorf("storage: unknown outcome %q", rec.Outcome)
	}

	result, err := j.db.Exec(
		`INSERT INTO attempts
		 (session_id, outcome, cause, phase, held_ms, hold_ms, rise_speed, target_y, resolved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.sessionID,
		rec.Outcome,
		rec.Cause,
		rec.Phase,
		rec.HeldMs,
		rec.HoldMs,
		rec.RiseSpeed,
		rec.TargetY,
		rec.ResolvedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Attempts returns the attempts of the current session in the order they were
// resolved. A non-positive limit returns all of them; otherwise the most recent
// limit attempts are returned, still oldest first.
func (j *Journal) Attempts(limit int) ([]AttemptRecord, error) {
	query := `SELECT id, session_id, outcome, cause, phase, held_ms, hold_ms,
		        rise_speed, target_y, resolved_at, created_at
		 FROM attempts
		 WHERE session_id = ?
		 ORDER BY id DESC`
	args := []any{j.sessionID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var records []AttemptRecord
	for rows.Next() {
		var r AttemptRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Outcome, &r.Cause, &r.Phase,
			&r.HeldMs, &r.HoldMs, &r.RiseSpeed, &r.TargetY, &r.ResolvedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	// Oldest first
	for a, b := 0, len(records)-1; a < b; a, b = a+1, b-1 {
		records[a], records[b] = records[b], records[a]
	}
	return records, nil
}

// Summary aggregates the current session.
func (j *Journal) Summary() (SessionSummary, error) {
	s := SessionSummary{SessionID: j.sessionID}

	var (
		successes sql.NullInt64
		mean      sql.NullFloat64
		best      sql.NullInt64
	)
	err := j.db.QueryRow(
		`SELECT COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        AVG(CASE WHEN outcome = ? THEN held_ms END),
		        MIN(CASE WHEN outcome = ? THEN held_ms END)
		 FROM attempts
		 WHERE session_id = ?`,
		OutcomeSuccess, OutcomeSuccess, OutcomeSuccess, j.sessionID,
	).Scan(&s.Total, &successes, &mean, &best)
	if err != nil {
		return SessionSummary{}, fmt.Errorf("storage: cannot query summary: %w", err)
	}

	s.Successes = int(successes.Int64)
	s.Failures = s.Total - s.Successes
	if s.Total > 0 {
		s.SuccessRate = float64(s.Successes) / float64(s.Total)
	}
	if mean.Valid && best.Valid {
		s.HasReaction = true
		s.MeanReactionMs = mean.Float64
		s.BestReactionMs = best.Int64
	}

	return s, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
