package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"user-registry/internal/user/models"
	"user-registry/pkg/platform/sentinel"
)

// PostgresStore persists users in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed user store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create atomically inserts the user if the id is not already taken.
func (s *PostgresStore) Create(ctx context.Context, u *models.User) error {
	if u == nil {
		return fmt.Errorf("user is required")
	}
	query := `
		INSERT INTO users (id, name, phone, address)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, u.ID, u.Name, u.Phone, u.Address)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user id already exists: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Update replaces the mutable columns of an existing user in one statement,
// so a single row write is atomic.
func (s *PostgresStore) Update(ctx context.Context, u *models.User) error {
	if u == nil {
		return fmt.Errorf("user is required")
	}
	query := `
		UPDATE users
		SET name = $2, phone = $3, address = $4
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query, u.ID, u.Name, u.Phone, u.Address)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// FindByID retrieves a user by national ID.
func (s *PostgresStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, name, phone, address
		FROM users
		WHERE id = $1
	`
	var u models.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Phone, &u.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}

// List returns all users ordered by primary key.
func (s *PostgresStore) List(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, name, phone, address
		FROM users
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Phone, &u.Address); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// ListIDs returns all user ids ordered ascending.
func (s *PostgresStore) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list user ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user ids: %w", err)
	}
	return ids, nil
}

// Delete removes a user by id.
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
