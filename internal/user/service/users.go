package service

import (
	"context"
	"time"

	"user-registry/internal/user/models"
	dErrors "user-registry/pkg/domain-errors"
	"user-registry/pkg/platform/audit"
)

// CreateUserCommand carries the full field set for a new record.
type CreateUserCommand struct {
	ID      string
	Name    string
	Phone   string
	Address string
}

// ReplaceUserCommand carries the full field set for a replace. BodyIDIncluded
// reports whether the caller supplied an id key at all; an included id must
// be the id of the record being replaced, so a null id is rejected the same
// way a different one is.
type ReplaceUserCommand struct {
	BodyIDIncluded bool
	BodyID         *string
	Name           string
	Phone          string
	Address        string
}

// PatchUserCommand carries the fields supplied in a partial update. Absent
// fields are nil. IDIncluded reports whether the caller supplied an id at
// all, which a partial update never accepts.
type PatchUserCommand struct {
	IDIncluded bool
	Name       *string
	Phone      *string
	Address    *string
}

// CreateUser validates and persists a new user. The id must not already
// exist.
func (s *Service) CreateUser(ctx context.Context, cmd CreateUserCommand) (*models.User, error) {
	u, err := models.NewUser(cmd.ID, cmd.Name, cmd.Phone, cmd.Address)
	if err != nil {
		return nil, err
	}

	storeCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	err = s.store.Create(storeCtx, u)
	s.observeStore(start)
	if err != nil {
		return nil, wrapUserErr(err)
	}

	if s.metrics != nil {
		s.metrics.IncrementUsersCreated()
	}
	s.cacheSave(ctx, u)
	s.emitAudit(ctx, audit.ActionUserCreated, u.ID)
	s.logger.InfoContext(ctx, "user created", "user_id", u.ID)
	return u, nil
}

// GetUser returns the record for the given id.
func (s *Service) GetUser(ctx context.Context, id string) (*models.User, error) {
	if s.cache != nil {
		cached, err := s.cache.Find(ctx, id)
		if err == nil {
			if s.metrics != nil {
				s.metrics.IncrementCacheHit()
			}
			return cached, nil
		}
		if s.metrics != nil {
			s.metrics.IncrementCacheMiss()
		}
	}

	storeCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	u, err := s.store.FindByID(storeCtx, id)
	s.observeStore(start)
	if err != nil {
		return nil, wrapUserErr(err)
	}

	s.cacheSave(ctx, u)
	return u, nil
}

// ListUsers returns all records ordered by id.
func (s *Service) ListUsers(ctx context.Context) ([]*models.User, error) {
	storeCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	users, err := s.store.List(storeCtx)
	s.observeStore(start)
	if err != nil {
		return nil, wrapUserErr(err)
	}
	return users, nil
}

// ListUserIDs returns the ids of all records ordered ascending.
func (s *Service) ListUserIDs(ctx context.Context) ([]string, error) {
	storeCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	ids, err := s.store.ListIDs(storeCtx)
	s.observeStore(start)
	if err != nil {
		return nil, wrapUserErr(err)
	}
	return ids, nil
}

// ReplaceUser overwrites every mutable field of an existing record. An id in
// the body that differs from the addressed record is rejected; the id itself
// can never change.
func (s *Service) ReplaceUser(ctx context.Context, id string, cmd ReplaceUserCommand) (*models.User, error) {
	// Resolve the record before validating the body so a missing id is
	// reported as not found rather than a validation failure.
	storeCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	_, err := s.store.FindByID(storeCtx, id)
	s.observeStore(start)
	if err != nil {
		return nil, wrapUserErr(err)
	}

	if cmd.BodyIDIncluded && (cmd.BodyID == nil || *cmd.BodyID != id) {
		return nil, dErrors.New(dErrors.CodeValidation, "id may not be changed")
	}
	if err := models.ValidateName(cmd.Name); err != nil {
		return nil, err
	}
	if err := models.ValidatePhone(cmd.Phone); err != nil {
		return nil, err
	}
	if err := models.ValidateAddress(cmd.Address); err != nil {
		return nil, err
	}

	u := &models.User{ID: id, Name: cmd.Name, Phone: cmd.Phone, Address: cmd.Address}

	updateCtx, cancelUpdate := s.withTimeout(ctx)
	defer cancelUpdate()
	start = time.Now()
	err = s.store.Update(updateCtx, u)
	s.observeStore(start)
	if err != nil {
		return nil, wrapUserErr(err)
	}

	s.cacheSave(ctx, u)
	s.emitAudit(ctx, audit.ActionUserReplaced, u.ID)
	s.logger.InfoContext(ctx, "user replaced", "user_id", u.ID)
	return u, nil
}

// PatchUser applies the supplied fields to an existing record. Supplying an
// id is rejected outright, even one matching the addressed record.
func (s *Service) PatchUser(ctx context.Context, id string, cmd PatchUserCommand) (*models.User, error) {
	// Resolve the record before validating the body so a missing id is
	// reported as not found rather than a validation failure.
	storeCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	u, err := s.store.FindByID(storeCtx, id)
	s.observeStore(start)
	if err != nil {
		return nil, wrapUserErr(err)
	}

	if cmd.IDIncluded {
		return nil, dErrors.New(dErrors.CodeValidation, "id may not be changed")
	}
	if cmd.Name != nil {
		if err := models.ValidateName(*cmd.Name); err != nil {
			return nil, err
		}
	}
	if cmd.Phone != nil {
		if err := models.ValidatePhone(*cmd.Phone); err != nil {
			return nil, err
		}
	}
	if cmd.Address != nil {
		if err := models.ValidateAddress(*cmd.Address); err != nil {
			return nil, err
		}
	}

	if cmd.Name != nil {
		u.Name = *cmd.Name
	}
	if cmd.Phone != nil {
		u.Phone = *cmd.Phone
	}
	if cmd.Address != nil {
		u.Address = *cmd.Address
	}

	start = time.Now()
	err = s.store.Update(storeCtx, u)
	s.observeStore(start)
	if err != nil {
		return nil, wrapUserErr(err)
	}

	s.cacheSave(ctx, u)
	s.emitAudit(ctx, audit.ActionUserPatched, u.ID)
	s.logger.InfoContext(ctx, "user patched", "user_id", u.ID)
	return u, nil
}

// DeleteUser removes a record. Deleting an absent id fails so repeated
// deletes surface the missing record instead of silently succeeding.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	storeCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	err := s.store.Delete(storeCtx, id)
	s.observeStore(start)
	if err != nil {
		return wrapUserErr(err)
	}

	if s.metrics != nil {
		s.metrics.IncrementUsersDeleted()
	}
	s.cacheInvalidate(ctx, id)
	s.emitAudit(ctx, audit.ActionUserDeleted, id)
	s.logger.InfoContext(ctx, "user deleted", "user_id", id)
	return nil
}
