package audit

import (
	"context"
	"time"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time
	// Subject is the national ID of the user record the action touched.
	Subject string
	Action  string
	// Actor is the authenticated token subject that performed the action.
	Actor     string
	RequestID string
}

// Actions recorded for the user lifecycle.
const (
	ActionUserCreated  = "user_created"
	ActionUserReplaced = "user_replaced"
	ActionUserPatched  = "user_patched"
	ActionUserDeleted  = "user_deleted"
)

// Store persists audit events. Append-only.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListBySubject(ctx context.Context, subject string) ([]Event, error)
}
