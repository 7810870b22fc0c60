package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"todoapi/pkg/metrics"
)

const todoSchema = `
	CREATE TABLE IF NOT EXISTS todo (
		id TEXT PRIMARY KEY,
		text TEXT,
		priority TEXT,
		status TEXT
	)`

// Registry provisions one todo database per user id. Handles are opened
// fresh per request rather than cached; schema creation is IF NOT EXISTS, so
// concurrent first access by the same user is safe without extra locking.
type Registry struct {
	dataDir string
}

func NewRegistry(dataDir string) *Registry {
	return &Registry{dataDir: dataDir}
}

// Path returns the storage location derived from the user id. The id must
// already have passed the allow-list validation; it is interpolated directly
// into the file name.
func (r *Registry) Path(userID string) string {
	return filepath.Join(r.dataDir, fmt.Sprintf("todos_%s.db", userID))
}

// OpenOrCreate opens the user's todo database, creating the file and schema
// on first access. Failures are scoped to the calling request.
func (r *Registry) OpenOrCreate(userID string) (*TodoStore, error) {
	metrics.UserStoreOpensTotal.Inc()

	if err := os.MkdirAll(r.dataDir, 0755); err != nil {
		metrics.UserStoreOpenFailures.Inc()
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", r.Path(userID))
	if err != nil {
		metrics.UserStoreOpenFailures.Inc()
		return nil, fmt.Errorf("opening todo database: %w", err)
	}

	// sql.Open is lazy; the schema statement below is also what surfaces
	// open failures.
	if _, err := db.Exec(todoSchema); err != nil {
		db.Close()
		metrics.UserStoreOpenFailures.Inc()
		return nil, fmt.Errorf("ensuring todo schema: %w", err)
	}

	return &TodoStore{db: db}, nil
}
