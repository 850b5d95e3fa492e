package comment

import (
	"database/sql"
	"fmt"
)

// Repository persists store snapshots to SQLite and loads them back as seed data.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a comment repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const insertSQL = `INSERT INTO notes
	(id, park_id, visitor_id, title, body, created_at, position)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

// Load returns every persisted comment in the order it was saved.
func (r *Repository) Load() (comments []*Comment, err error) {
	rows, err := r.db.Query(
		"SELECT id, park_id, visitor_id, title, body, created_at FROM notes ORDER BY position, id",
	)
	if err != nil {
		return nil, fmt.Errorf("loading notes: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.LocationID, &c.VisitorID, &c.Title, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}

	return comments, nil
}

// Save replaces the persisted notes with comments in a single transaction.
func (r *Repository) Save(comments []*Comment) (err error) {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("%w (also failed to roll back: %v)", err, rbErr)
			}
		}
	}()

	if _, err := tx.Exec("DELETE FROM notes"); err != nil {
		return fmt.Errorf("clearing notes: %w", err)
	}

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer func() {
		if closeErr := stmt.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing statement: %w", closeErr)
		}
	}()

	for i, c := range comments {
		if _, err := stmt.Exec(c.ID, c.LocationID, c.VisitorID, c.Title, c.Body, c.CreatedAt, i); err != nil {
			return fmt.Errorf("inserting note %d: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing notes: %w", err)
	}

	return nil
}
