package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const createSlotsTableQuery = `
CREATE TABLE IF NOT EXISTS slots (
    key   TEXT PRIMARY KEY,
    value BLOB NOT NULL
)
`

// SQLiteSlot keeps the serialized collection under one key
// of a local sqlite key-value table.
type SQLiteSlot struct {
	db  *sql.DB
	key string
}

func OpenSQLiteSlot(path, key string) (*SQLiteSlot, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	_, err = db.Exec(createSlotsTableQuery)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}

	return &SQLiteSlot{db: db, key: key}, nil
}

func (s *SQLiteSlot) Read() ([]byte, error) {
	const selectSlotQuery = `
SELECT value FROM slots WHERE key = ?
`
	var data []byte
	err := s.db.QueryRow(selectSlotQuery, s.key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("select slot: %w", err)
	}
	return data, nil
}

func (s *SQLiteSlot) Write(data []byte) error {
	const upsertSlotQuery = `
INSERT INTO slots (key, value) VALUES (?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value
`
	_, err := s.db.Exec(upsertSlotQuery, s.key, data)
	if err != nil {
		return fmt.Errorf("upsert slot: %w", err)
	}
	return nil
}

func (s *SQLiteSlot) Clear() error {
	const deleteSlotQuery = `
DELETE FROM slots WHERE key = ?
`
	_, err := s.db.Exec(deleteSlotQuery, s.key)
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	return nil
}

func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
