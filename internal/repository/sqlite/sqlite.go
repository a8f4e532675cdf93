// Package sqlite stores repository snapshots in a SQLite database. Every
// collection shares one entities table; each row holds the entity id, its
// position in the snapshot and the JSON encoded entity.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goccy/go-json"
	_ "modernc.org/sqlite"

	"coursework/internal/repository"
)

// Store is a SQLite backed snapshot database
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and migrates the schema.
// ":memory:" gives a private in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps ":memory:" databases coherent and serializes writers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	PRAGMA busy_timeout = 5000;

	CREATE TABLE IF NOT EXISTS entities (
		collection TEXT NOT NULL,
		id INTEGER NOT NULL,
		position INTEGER NOT NULL,
		data JSON NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (collection, id)
	);

	CREATE INDEX IF NOT EXISTS idx_entities_position ON entities(collection, position);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close releases the database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// Collections lists the collection names that currently hold rows
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT collection FROM entities ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("failed to query collections: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating collections: %w", err)
	}
	return names, nil
}

// Collection is a typed view of one collection in the store
type Collection[T repository.Entity] struct {
	store *Store
	name  string
}

var _ repository.Snapshotter[repository.Entity] = (*Collection[repository.Entity])(nil)

// NewCollection returns the collection called name
func NewCollection[T repository.Entity](s *Store, name string) *Collection[T] {
	return &Collection[T]{store: s, name: name}
}

// Name returns the collection name
func (c *Collection[T]) Name() string {
	return c.name
}

// Load returns the collection's entities in saved order
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	rows, err := c.store.db.QueryContext(ctx, `
		SELECT id, data FROM entities
		WHERE collection = ?
		ORDER BY position
	`, c.name)
	if err != nil {
		return []T{}, fmt.Errorf("failed to query %s: %w", c.name, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		var (
			id   int
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			return []T{}, fmt.Errorf("failed to scan %s row: %w", c.name, err)
		}

		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return []T{}, fmt.Errorf("failed to unmarshal %s %d: %w", c.name, id, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return []T{}, fmt.Errorf("error iterating %s: %w", c.name, err)
	}
	return items, nil
}

// Save replaces the collection with items in a single transaction
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	tx, err := c.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entities WHERE collection = ?`, c.name); err != nil {
		return fmt.Errorf("failed to clear %s: %w", c.name, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entities (collection, id, position, data, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for pos, item := range items {
		id := item.EntityID()
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %d: %w", c.name, id, err)
		}
		if _, err := stmt.ExecContext(ctx, c.name, id, pos, data); err != nil {
			return fmt.Errorf("failed to insert %s %d: %w", c.name, id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
