package store

import (
	"context"
	"database/sql"
	"errors"
)

// Todo is a row in a user's todo database. Priority and status are free-form
// labels; the store enforces no value set or workflow on either.
type Todo struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}

// TodoFilter narrows List results. Search is always applied as a substring
// match on text (empty matches everything); Priority and Status filter by
// exact value when non-nil, even when they point at an empty string.
type TodoFilter struct {
	Search   string
	Priority *string
	Status   *string
}

// TodoStore is a request-scoped handle on one user's todo database. Callers
// own the handle and must Close it when the request finishes.
type TodoStore struct {
	db *sql.DB
}

// Insert adds a new todo row.
func (s *TodoStore) Insert(ctx context.Context, t Todo) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO todo (id, text, priority, status) VALUES (?, ?, ?, ?)`,
		t.ID, t.Text, t.Priority, t.Status)
	return err
}

// List returns todos matching the filter. Filters are conjunctive; no sort
// order is guaranteed beyond storage order.
func (s *TodoStore) List(ctx context.Context, f TodoFilter) ([]Todo, error) {
	query := `SELECT id, text, priority, status FROM todo WHERE text LIKE ?`
	args := []any{"%" + f.Search + "%"}

	if f.Priority != nil {
		query += ` AND priority = ?`
		args = append(args, *f.Priority)
	}
	if f.Status != nil {
		query += ` AND status = ?`
		args = append(args, *f.Status)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := make([]Todo, 0)
	for rows.Next() {
		var t Todo
		if err := rows.Scan(&t.ID, &t.Text, &t.Priority, &t.Status); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

// Get returns the todo with the given id, or nil when no row matches.
func (s *TodoStore) Get(ctx context.Context, id string) (*Todo, error) {
	var t Todo
	err := s.db.QueryRowContext(ctx,
		`SELECT id, text, priority, status FROM todo WHERE id = ?`,
		id).Scan(&t.ID, &t.Text, &t.Priority, &t.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update rewrites all three mutable columns in a single statement. Callers
// coalesce omitted fields from a prior Get; that read-then-write pair is not
// atomic under concurrent updates to the same id.
func (s *TodoStore) Update(ctx context.Context, id, text, priority, status string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE todo SET text = ?, priority = ?, status = ? WHERE id = ?`,
		text, priority, status, id)
	return err
}

// Delete removes the todo by id. Deleting a missing row is not an error.
func (s *TodoStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM todo WHERE id = ?`, id)
	return err
}

func (s *TodoStore) Close() error {
	return s.db.Close()
}
