// ABOUTME: SQLite journal of tool invocations
// ABOUTME: Records which tool ran in which session, for operator review
package journal

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS tool_calls (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	agent TEXT NOT NULL,
	tool TEXT NOT NULL,
	detail TEXT,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tool_calls_session ON tool_calls(session_id);
CREATE INDEX IF NOT EXISTS idx_tool_calls_created ON tool_calls(created_at);
`

// Journal appends one row per tool call. Entries are never updated or
// deleted; ULID ids keep insertion order sortable.
type Journal struct {
	db      *sql.DB
	entropy *rand.Rand
}

// Entry is one recorded tool invocation.
type Entry struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Agent     string    `json:"agent"`
	Tool      string    `json:"tool"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Open opens (or creates) the journal database at path.
func Open(path string) (*Journal, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize journal schema: %w", err)
	}

	return &Journal{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Record appends one tool call.
func (j *Journal) Record(sessionID, agent, tool, detail string) error {
	now := time.Now()
	id := ulid.MustNew(ulid.Timestamp(now), ulid.Monotonic(j.entropy, 0)).String()

	_, err := j.db.Exec(`
		INSERT INTO tool_calls (id, session_id, agent, tool, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, sessionID, agent, tool, detail, now)
	return err
}

// Recent returns the newest entries, most recent first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.Query(`
		SELECT id, session_id, agent, tool, detail, created_at
		FROM tool_calls
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var detail sql.NullString
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Agent, &e.Tool, &detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Detail = detail.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}
