package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"curator/internal/config"
)

const defaultListLimit = 20

// Store manages run history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database and applies migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.HistoryPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Record inserts a run outcome, assigning an identifier and timestamps when
// the caller left them unset, and returns the stored row.
func (s *Store) Record(ctx context.Context, run Run) (*Run, error) {
	if strings.TrimSpace(run.Theme) == "" {
		return nil, errors.New("run theme must not be empty")
	}
	if !run.Status.Valid() {
		return nil, fmt.Errorf("invalid run status %q", run.Status)
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if run.StartedAt.IsZero() {
		run.StartedAt = now
	}
	if run.FinishedAt.IsZero() {
		run.FinishedAt = now
	}

	var keywordsJSON any
	if len(run.Keywords) > 0 {
		raw, err := json.Marshal(run.Keywords)
		if err != nil {
			return nil, fmt.Errorf("marshal keywords: %w", err)
		}
		keywordsJSON = string(raw)
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            id, theme, collection, status, matched, ai_matched, keyword_matched,
            keywords_json, error_message, started_at, finished_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Theme,
		run.Collection,
		string(run.Status),
		run.Matched,
		run.AIMatched,
		run.KeywordMatched,
		keywordsJSON,
		nullableString(run.ErrorMessage),
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	return s.GetByID(ctx, run.ID)
}

// GetByID fetches a run by identifier.
func (s *Store) GetByID(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// List returns the most recent runs, newest first. A limit <= 0 applies the
// default page size.
func (s *Store) List(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// LastByTheme returns the most recent run for a theme, or nil when the theme
// has never run.
func (s *Store) LastByTheme(ctx context.Context, theme string) (*Run, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+runColumns+` FROM runs WHERE theme = ? ORDER BY started_at DESC, id DESC LIMIT 1`,
		theme,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("last run by theme: %w", err)
	}
	return run, nil
}

// Health verifies the database is reachable and aggregates run counts.
func (s *Store) Health(ctx context.Context) (Summary, error) {
	if s == nil || s.db == nil {
		return Summary{}, errors.New("history database connection unavailable")
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.db.PingContext(pingCtx); err != nil {
		return Summary{}, fmt.Errorf("ping history database: %w", err)
	}
	return s.Stats(ctx)
}

// Stats returns run counts grouped by outcome.
func (s *Store) Stats(ctx context.Context) (Summary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(1) FROM runs GROUP BY status`)
	if err != nil {
		return Summary{}, fmt.Errorf("run stats: %w", err)
	}
	defer rows.Close()

	summary := Summary{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return Summary{}, err
		}
		summary.Total += count
		switch RunStatus(status) {
		case StatusSucceeded:
			summary.Succeeded += count
		case StatusFailed:
			summary.Failed += count
		}
	}
	return summary, rows.Err()
}

const runColumns = "id, theme, collection, status, matched, ai_matched, keyword_matched, keywords_json, error_message, started_at, finished_at"

func scanRun(scanner interface{ Scan(dest ...any) error }) (*Run, error) {
	var (
		id             string
		theme          string
		collection     string
		statusStr      string
		matched        int
		aiMatched      int
		keywordMatched int
		keywordsRaw    sql.NullString
		errorMessage   sql.NullString
		startedRaw     string
		finishedRaw    string
	)

	if err := scanner.Scan(
		&id,
		&theme,
		&collection,
		&statusStr,
		&matched,
		&aiMatched,
		&keywordMatched,
		&keywordsRaw,
		&errorMessage,
		&startedRaw,
		&finishedRaw,
	); err != nil {
		return nil, err
	}

	run := &Run{
		ID:             id,
		Theme:          theme,
		Collection:     collection,
		Status:         RunStatus(statusStr),
		Matched:        matched,
		AIMatched:      aiMatched,
		KeywordMatched: keywordMatched,
		ErrorMessage:   errorMessage.String,
	}
	if keywordsRaw.Valid && keywordsRaw.String != "" {
		if err := json.Unmarshal([]byte(keywordsRaw.String), &run.Keywords); err != nil {
			return nil, fmt.Errorf("unmarshal keywords: %w", err)
		}
	}
	if started, err := parseTimeString(startedRaw); err == nil {
		run.StartedAt = started
	}
	if finished, err := parseTimeString(finishedRaw); err == nil {
		run.FinishedAt = finished
	}
	return run, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
