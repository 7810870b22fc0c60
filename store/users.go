// Package store implements the persistence layer: a shared users database
// plus one SQLite database file per registered user for their todos.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// User is a row in the shared users database.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// UsersStore is the process-wide account store. It is opened once at startup
// and shared by every request; concurrent statement execution is serialized
// by the driver.
type UsersStore struct {
	db *sql.DB
}

// OpenUsersStore opens (creating if needed) the shared users database and
// applies the schema migrations. A failure here is fatal to the service.
func OpenUsersStore(path string) (*UsersStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening users database: %w", err)
	}

	// WAL keeps concurrent readers from blocking on writes
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	if err := migrateUsersSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating users schema: %w", err)
	}

	return &UsersStore{db: db}, nil
}

// Register inserts a new account row and returns its assigned id. A unique
// constraint violation on username comes back as the driver's error so the
// caller can surface the underlying message.
func (s *UsersStore) Register(ctx context.Context, username, password, name string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password, name) VALUES (?, ?, ?)`,
		username, password, name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByUsername returns the matching account or nil when none exists.
func (s *UsersStore) GetByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password, name FROM users WHERE username = ?`,
		username).Scan(&u.ID, &u.Username, &u.Password, &u.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UsersStore) Close() error {
	return s.db.Close()
}
