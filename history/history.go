// Package history persists per-document reading state in a small SQLite
// database: which page a file was last open at and when.
package history

import (
	"fmt"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const schema = `CREATE TABLE IF NOT EXISTS history (
	file       TEXT PRIMARY KEY,
	page       INTEGER NOT NULL,
	visited_at INTEGER NOT NULL
)`

// Store is a reading history database. Not safe for concurrent use, one
// connection, one caller.
type Store struct {
	conn *sqlite.Conn
}

// Open opens or creates the history database. Use ":memory:" for a
// throwaway store.
func Open(path string) (*Store, error) {
	flags := sqlite.OpenReadWrite | sqlite.OpenCreate
	if path == ":memory:" {
		flags |= sqlite.OpenMemory
	}
	conn, err := sqlite.OpenConn(path, flags)
	if err != nil {
		return nil, fmt.Errorf("unable to open history database %s: %w", path, err)
	}
	if err := sqlitex.Execute(conn, schema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to prepare history schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

// Record stores the last viewed page for the file, replacing whatever was
// recorded before.
func (s *Store) Record(file string, page int) error {
	err := sqlitex.Execute(s.conn,
		`INSERT INTO history (file, page, visited_at) VALUES (?, ?, ?)
		 ON CONFLICT(file) DO UPDATE SET page = excluded.page, visited_at = excluded.visited_at`,
		&sqlitex.ExecOptions{
			Args: []any{file, page, time.Now().Unix()},
		})
	if err != nil {
		return fmt.Errorf("unable to record history for %s: %w", file, err)
	}
	return nil
}

// LastPage reports the page the file was last open at, false when the file
// was never seen.
func (s *Store) LastPage(file string) (int, bool, error) {
	page, found := 0, false
	err := sqlitex.Execute(s.conn,
		`SELECT page FROM history WHERE file = ?`,
		&sqlitex.ExecOptions{
			Args: []any{file},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				page = stmt.ColumnInt(0)
				found = true
				return nil
			},
		})
	if err != nil {
		return 0, false, fmt.Errorf("unable to read history for %s: %w", file, err)
	}
	return page, found, nil
}

// Forget drops the file from the history.
func (s *Store) Forget(file string) error {
	err := sqlitex.Execute(s.conn,
		`DELETE FROM history WHERE file = ?`,
		&sqlitex.ExecOptions{Args: []any{file}})
	if err != nil {
		return fmt.Errorf("unable to forget history for %s: %w", file, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}
