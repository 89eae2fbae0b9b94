// Package history is a local SQLite log of routing decisions. It exists for
// operators: `skillsctl history` answers "what did the router do and why"
// without attaching a debugger to a live MCP session.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/marovole/skillsctl/internal/controller"
)

// messagePreviewLen bounds how much of the user message is persisted.
const messagePreviewLen = 200

// Store is the SQLite-backed routing log.
//
// WAL is enabled so the CLI can read while the server writes. A single
// connection keeps modernc's file locking simple.
type Store struct {
	db *sql.DB
}

// Open creates (or opens) the log database at path.
func Open(path string) (*Store, error) {
	p := filepath.Clean(strings.TrimSpace(path))
	if p == "" {
		return nil, errors.New("missing history db path")
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`PRAGMA journal_mode=WAL`,
		`CREATE TABLE IF NOT EXISTS route_log (
			id TEXT PRIMARY KEY,
			ts_unix_ms INTEGER NOT NULL,
			session_id TEXT NOT NULL,
			locale TEXT NOT NULL,
			intent TEXT NOT NULL,
			status TEXT NOT NULL,
			skills TEXT NOT NULL,
			message_preview TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_route_log_ts ON route_log(ts_unix_ms DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_route_log_session ON route_log(session_id)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("history schema: %w", err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record satisfies controller.Recorder.
func (s *Store) Record(rec controller.RouteRecord) error {
	preview := rec.Message
	if r := []rune(preview); len(r) > messagePreviewLen {
		preview = string(r[:messagePreviewLen])
	}

	_, err := s.db.Exec(
		`INSERT INTO route_log (id, ts_unix_ms, session_id, locale, intent, status, skills, message_preview)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		rec.Time.UnixMilli(),
		rec.SessionID,
		rec.Locale,
		rec.Intent,
		rec.Status,
		strings.Join(rec.Skills, ","),
		preview,
	)
	return err
}

// Entry is one row of the routing log as read back for display.
type Entry struct {
	Time      time.Time
	SessionID string
	Locale    string
	Intent    string
	Status    string
	Skills    []string
	Message   string
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT ts_unix_ms, session_id, locale, intent, status, skills, message_preview
		 FROM route_log ORDER BY ts_unix_ms DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			ms     int64
			e      Entry
			skills string
		)
		if err := rows.Scan(&ms, &e.SessionID, &e.Locale, &e.Intent, &e.Status, &skills, &e.Message); err != nil {
			return nil, err
		}
		e.Time = time.UnixMilli(ms)
		if skills != "" {
			e.Skills = strings.Split(skills, ",")
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
