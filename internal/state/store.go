// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package state persists reader state between navigations: one-shot session
// snapshots of the menu, search box and reference pane, and the long-lived
// pin list.
package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/specnav/pkg/types"
)

const dbFile = "state.db"

// ErrNoSnapshot indicates that a session has no pending snapshot.
var ErrNoSnapshot = errors.New("no snapshot for session")

// Store manages the state SQLite database.
type Store struct {
	db  *sql.DB
	dir string
	now func() time.Time
}

// NewStore opens or creates the state database at cfg.Dir/state.db and
// creates the schema if it does not exist.
func NewStore(cfg types.StateConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = types.DefaultStateDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dir: dir, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, dbFile)
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			session TEXT NOT NULL,
			created_at TEXT NOT NULL,
			search_value TEXT NOT NULL DEFAULT '',
			menu_visible INTEGER NOT NULL DEFAULT 0,
			expanded_paths TEXT NOT NULL DEFAULT '[]',
			toc_scroll INTEGER NOT NULL DEFAULT 0,
			pane_type TEXT,
			pane_id TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_session ON snapshots(session)`,
		`CREATE TABLE IF NOT EXISTS pins (
			position INTEGER NOT NULL,
			id TEXT PRIMARY KEY
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save stores snap under its session and returns the assigned id. A zero
// CreatedAt is set to the current time.
func (s *Store) Save(ctx context.Context, snap types.Snapshot) (string, error) {
	if snap.Session == "" {
		snap.Session = types.DefaultSession
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = s.now()
	}
	snap.ID = uuid.NewString()

	paths := snap.ExpandedPaths
	if paths == nil {
		paths = [][]int{}
	}
	pathsJSON, err := json.Marshal(paths)
	if err != nil {
		return "", fmt.Errorf("encoding expanded paths: %w", err)
	}

	var paneType, paneID sql.NullString
	if snap.Pane != nil {
		paneType = sql.NullString{String: string(snap.Pane.Type), Valid: true}
		paneID = sql.NullString{String: snap.Pane.ID, Valid: true}
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, session, created_at, search_value, menu_visible, expanded_paths, toc_scroll, pane_type, pane_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		snap.ID, snap.Session, snap.CreatedAt.UTC().Format(time.RFC3339Nano),
		snap.SearchValue, snap.MenuVisible, string(pathsJSON), snap.TOCScroll,
		paneType, paneID,
	)
	if err != nil {
		return "", fmt.Errorf("inserting snapshot: %w", err)
	}
	return snap.ID, nil
}

// Take returns the most recent snapshot of session and deletes it, so a
// snapshot is restored at most once.
func (s *Store) Take(ctx context.Context, session string) (types.Snapshot, error) {
	if session == "" {
		session = types.DefaultSession
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		`SELECT `+snapshotColumns+` FROM snapshots
		WHERE session = ? ORDER BY seq DESC LIMIT 1`, session)
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Snapshot{}, fmt.Errorf("%w %q", ErrNoSnapshot, session)
	}
	if err != nil {
		return types.Snapshot{}, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, snap.ID); err != nil {
		return types.Snapshot{}, fmt.Errorf("deleting snapshot: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return types.Snapshot{}, fmt.Errorf("committing: %w", err)
	}
	return snap, nil
}

// Snapshots lists the pending snapshots of session, oldest first. An empty
// session lists every session.
func (s *Store) Snapshots(ctx context.Context, session string) ([]types.Snapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM snapshots`
	var args []any
	if session != "" {
		query += ` WHERE session = ?`
		args = append(args, session)
	}
	query += ` ORDER BY seq`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var out []types.Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

const snapshotColumns = `id, session, created_at, search_value, menu_visible, expanded_paths, toc_scroll, pane_type, pane_id`

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(r scanner) (types.Snapshot, error) {
	var (
		snap      types.Snapshot
		createdAt string
		pathsJSON string
		paneType  sql.NullString
		paneID    sql.NullString
	)
	err := r.Scan(&snap.ID, &snap.Session, &createdAt, &snap.SearchValue, &snap.MenuVisible,
		&pathsJSON, &snap.TOCScroll, &paneType, &paneID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Snapshot{}, err
		}
		return types.Snapshot{}, fmt.Errorf("scanning snapshot: %w", err)
	}

	snap.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("parsing snapshot time: %w", err)
	}
	if err := json.Unmarshal([]byte(pathsJSON), &snap.ExpandedPaths); err != nil {
		return types.Snapshot{}, fmt.Errorf("decoding expanded paths: %w", err)
	}
	if paneType.Valid {
		snap.Pane = &types.PaneState{Type: types.PaneType(paneType.String), ID: paneID.String}
	}
	return snap, nil
}

// SavePins replaces the stored pin list with ids, keeping their order.
func (s *Store) SavePins(ctx context.Context, ids []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pins`); err != nil {
		return fmt.Errorf("clearing pins: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO pins (position, id) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing pin insert: %w", err)
	}
	defer stmt.Close()

	for i, id := range ids {
		if _, err := stmt.ExecContext(ctx, i, id); err != nil {
			return fmt.Errorf("inserting pin %s: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// Pins returns the stored pin list in pin order.
func (s *Store) Pins(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM pins ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying pins: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning pin: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
