// Package history persists executed transaction outcomes so past agent
// actions can be recalled across sessions.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/hashpilot/hashpilot/internal/toolkit"

	_ "modernc.org/sqlite"
)

// Store is an append-mostly record of executed transactions, keyed by
// network + transaction id.
type Store struct {
	db *sql.DB
}

type Entry struct {
	Network       string
	TransactionID string
	Method        string
	Status        string
	EntityID      string
	RawJSON       string
	CreatedAt     time.Time
}

// Open opens (or creates) the history DB under dataDir/history.db.
func Open(dataDir string) (*Store, error) {
	return OpenDSN(filepath.Join(dataDir, "history.db"))
}

// OpenDSN opens a history DB at the given sqlite DSN/path. Tests may pass
// ":memory:" to avoid touching disk.
func OpenDSN(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS transactions (
	network TEXT NOT NULL,
	tx_id TEXT NOT NULL,
	method TEXT NOT NULL,
	status TEXT,
	entity_id TEXT,
	raw_json TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (network, tx_id)
);
`)
	if err != nil {
		return fmt.Errorf("create transactions table: %w", err)
	}
	return nil
}

// Close closes the underlying DB.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record upserts the outcome of one executed tool call. Results without a
// transaction id (queries, return-bytes mode) are skipped.
func (s *Store) Record(network, method string, result *toolkit.ExecutedResult) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("history store not initialized")
	}
	if network == "" {
		return fmt.Errorf("network is required")
	}
	if result == nil || result.TransactionID == "" {
		return nil
	}

	entityID := firstNonEmpty(result.TokenID, result.TopicID, result.AccountID, result.ContractID, result.ScheduleID)
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = s.db.Exec(`
INSERT INTO transactions (network, tx_id, method, status, entity_id, raw_json)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(network, tx_id) DO UPDATE SET
	status=excluded.status,
	entity_id=excluded.entity_id,
	raw_json=excluded.raw_json
`, network, result.TransactionID, method, result.Status, entityID, string(raw))
	if err != nil {
		return fmt.Errorf("persist transaction: %w", err)
	}
	return nil
}

// Get returns one recorded transaction.
func (s *Store) Get(network, txID string) (*Entry, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("history store not initialized")
	}
	if network == "" || txID == "" {
		return nil, fmt.Errorf("network and transaction id are required")
	}

	var out Entry
	var created string
	row := s.db.QueryRow(
		`SELECT network, tx_id, method, COALESCE(status, ''), COALESCE(entity_id, ''), COALESCE(raw_json, ''), created_at
		 FROM transactions WHERE network = ? AND tx_id = ?`,
		network, txID,
	)
	if err := row.Scan(&out.Network, &out.TransactionID, &out.Method, &out.Status, &out.EntityID, &out.RawJSON, &created); err != nil {
		return nil, err
	}
	if ts, err := time.Parse("2006-01-02 15:04:05", created); err == nil {
		out.CreatedAt = ts
	}
	return &out, nil
}

// Recent returns the latest entries for a network, newest first.
func (s *Store) Recent(network string, limit int) ([]Entry, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("history store not initialized")
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT network, tx_id, method, COALESCE(status, ''), COALESCE(entity_id, ''), COALESCE(raw_json, ''), created_at
		 FROM transactions WHERE network = ? ORDER BY created_at DESC, tx_id DESC LIMIT ?`,
		network, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.Network, &e.TransactionID, &e.Method, &e.Status, &e.EntityID, &e.RawJSON, &created); err != nil {
			return nil, err
		}
		if ts, err := time.Parse("2006-01-02 15:04:05", created); err == nil {
			e.CreatedAt = ts
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
