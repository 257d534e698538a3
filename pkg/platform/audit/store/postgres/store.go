package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	audit "user-registry/pkg/platform/audit"
)

// Store persists audit events in PostgreSQL.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Append writes an audit event to the audit_events table.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	query := `
		INSERT INTO audit_events (id, occurred_at, subject, action, actor, request_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.New(),
		event.Timestamp,
		event.Subject,
		event.Action,
		event.Actor,
		event.RequestID,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

// ListBySubject returns all events recorded for a national ID, oldest first.
func (s *Store) ListBySubject(ctx context.Context, subject string) ([]audit.Event, error) {
	query := `
		SELECT occurred_at, subject, action, actor, request_id
		FROM audit_events
		WHERE subject = $1
		ORDER BY occurred_at
	`
	rows, err := s.db.QueryContext(ctx, query, subject)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var e audit.Event
		if err := rows.Scan(&e.Timestamp, &e.Subject, &e.Action, &e.Actor, &e.RequestID); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
