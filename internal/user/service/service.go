package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	usermetrics "user-registry/internal/user/metrics"
	"user-registry/internal/user/models"
	dErrors "user-registry/pkg/domain-errors"
	"user-registry/pkg/platform/audit"
	"user-registry/pkg/platform/sentinel"
	"user-registry/pkg/requestcontext"
)

// UserStore persists user records. Implementations must make each single-row
// write atomic; see the in-memory and PostgreSQL stores.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	ListIDs(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}

// UserCache is an optional read cache in front of the store. A miss is
// signalled with sentinel.ErrNotFound.
type UserCache interface {
	Save(ctx context.Context, u *models.User) error
	Find(ctx context.Context, id string) (*models.User, error)
	Invalidate(ctx context.Context, id string) error
}

// AuditPublisher records user lifecycle events.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// defaultStoreTimeout bounds every store access so no operation blocks
// indefinitely on a slow backend.
const defaultStoreTimeout = 5 * time.Second

// Service enforces the user mutation policy: field validation on every
// write, primary-key immutability on updates, and conflict/not-found
// translation from store facts to domain errors.
type Service struct {
	store        UserStore
	cache        UserCache
	logger       *slog.Logger
	audit        AuditPublisher
	metrics      *usermetrics.Metrics
	storeTimeout time.Duration
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithCache(cache UserCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.audit = publisher
	}
}

func WithMetrics(m *usermetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithStoreTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.storeTimeout = timeout
		}
	}
}

func New(store UserStore, opts ...Option) *Service {
	s := &Service{store: store, storeTimeout: defaultStoreTimeout}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// wrapUserErr translates store sentinels into domain errors.
func wrapUserErr(err error) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "user not found")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeConflict, "user with this id already exists")
	case errors.Is(err, context.DeadlineExceeded):
		return dErrors.Wrap(err, dErrors.CodeTimeout, "store timed out")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "store operation failed")
	}
}

// withTimeout bounds a store access with the configured timeout.
func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.storeTimeout)
}

// observeStore records the duration of a store access.
func (s *Service) observeStore(start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveStoreOp(start)
	}
}

func (s *Service) emitAudit(ctx context.Context, action, subject string) {
	if s.audit == nil {
		return
	}
	event := audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Subject:   subject,
		Action:    action,
		Actor:     requestcontext.Subject(ctx),
		RequestID: requestcontext.RequestID(ctx),
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"error", err,
			"action", action,
		)
	}
}

// cacheSave stores a record in the read cache, best effort.
func (s *Service) cacheSave(ctx context.Context, u *models.User) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Save(ctx, u); err != nil {
		s.logger.WarnContext(ctx, "failed to cache user", "error", err, "user_id", u.ID)
	}
}

// cacheInvalidate drops a record from the read cache, best effort.
func (s *Service) cacheInvalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate cached user", "error", err, "user_id", id)
	}
}
