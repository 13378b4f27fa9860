package contact

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"daftar/internal/adapters/storage"
	domain "daftar/internal/domain/contact"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new contact store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanContact(row *sql.Row) (domain.Contact, error) {
	var entity domain.Contact
	err := row.Scan(&entity.ID, &entity.Name, &entity.Phone)
	if err == sql.ErrNoRows {
		return domain.Contact{}, fmt.Errorf("contact not found: %w", err)
	}
	return entity, err
}

// GetByID retrieves a Contact by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Contact, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name, phone FROM contact WHERE id = ?", id)
	return scanContact(row)
}

// GetByPhone retrieves a Contact by its cleaned phone.
// PRE: phone is non-empty digits
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByPhone(ctx context.Context, phone string) (domain.Contact, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name, phone FROM contact WHERE phone = ?", phone)
	return scanContact(row)
}

// Save persists a Contact (insert or update by ID).
// PRE: entity has been validated
// POST: Entity is persisted; the UNIQUE phone constraint still applies
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Contact) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO contact (id, name, phone, created_at) VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET name=excluded.name, phone=excluded.phone`

	_, err = tx.ExecContext(ctx, query,
		entity.ID,
		entity.Name,
		entity.Phone,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes a Contact from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM contact WHERE id = ?", id)
	return err
}

// listWhereClause builds the WHERE clause and args for List/Count queries.
func listWhereClause(filter ListFilter) (string, []any) {
	where := " WHERE 1=1"
	var args []any
	if filter.Search != "" {
		where += " AND (name LIKE ? OR phone LIKE ?)"
		term := "%" + filter.Search + "%"
		args = append(args, term, term)
	}
	return where, args
}

// Count returns the total number of contacts matching the filter.
// PRE: filter has valid parameters
// POST: Returns count >= 0
func (s *SQLiteStore) Count(ctx context.Context, filter ListFilter) (int, error) {
	where, args := listWhereClause(filter)
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contact"+where, args...).Scan(&count)
	return count, err
}

// List retrieves contacts matching the filter. Rows come back in byte order
// of the name column; callers apply the locale-aware canonical ordering.
// PRE: filter has valid parameters
// POST: Returns matching entities
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Contact, error) {
	where, args := listWhereClause(filter)
	query := "SELECT id, name, phone FROM contact" + where + " ORDER BY name ASC"

	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Contact
	for rows.Next() {
		var entity domain.Contact
		if err := rows.Scan(&entity.ID, &entity.Name, &entity.Phone); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Phones returns the set of every stored phone, for batch-import dedup.
// PRE: none
// POST: Returns a set keyed by cleaned phone; empty map when no contacts
func (s *SQLiteStore) Phones(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT phone FROM contact")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	phones := make(map[string]bool)
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		phones[p] = true
	}
	return phones, rows.Err()
}
