package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"user-registry/internal/user/models"
	"user-registry/internal/user/service"
	"user-registry/pkg/platform/httputil"
	"user-registry/pkg/requestcontext"
)

// Service defines the interface for user operations.
type Service interface {
	CreateUser(ctx context.Context, cmd service.CreateUserCommand) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	ListUserIDs(ctx context.Context) ([]string, error)
	ReplaceUser(ctx context.Context, id string, cmd service.ReplaceUserCommand) (*models.User, error)
	PatchUser(ctx context.Context, id string, cmd service.PatchUserCommand) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// Handler wires user endpoints to the user service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a user handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts user endpoints on the router. Paths keep their trailing
// slash; clients address the collection as /users/ and a record as
// /users/{id}/.
func (h *Handler) Register(r chi.Router) {
	r.Get("/users/", h.HandleList)
	r.Post("/users/", h.HandleCreate)
	r.Get("/users/ids/", h.HandleListIDs)
	r.Get("/users/{id}/", h.HandleGet)
	r.Put("/users/{id}/", h.HandleReplace)
	r.Patch("/users/{id}/", h.HandlePatch)
	r.Delete("/users/{id}/", h.HandleDelete)
}

// HandleCreate handles POST /users/ requests.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateUserRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	u, err := h.service.CreateUser(ctx, service.CreateUserCommand{
		ID:      req.ID,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "user creation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, FromUser(u))
}

// HandleGet handles GET /users/{id}/ requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	u, err := h.service.GetUser(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromUser(u))
}

// HandleList handles GET /users/ requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.service.ListUsers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "user listing failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromUsers(users))
}

// HandleListIDs handles GET /users/ids/ requests.
func (h *Handler) HandleListIDs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ids, err := h.service.ListUserIDs(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "user id listing failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ids)
}

// HandleReplace handles PUT /users/{id}/ requests.
func (h *Handler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID := chi.URLParam(r, "id")

	req, ok := httputil.DecodeAndPrepare[ReplaceUserRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	u, err := h.service.ReplaceUser(ctx, userID, service.ReplaceUserCommand{
		BodyIDIncluded: req.IDIncluded,
		BodyID:         req.ID,
		Name:           req.Name,
		Phone:          req.Phone,
		Address:        req.Address,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "user replace failed",
			"request_id", requestID,
			"user_id", userID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromUser(u))
}

// HandlePatch handles PATCH /users/{id}/ requests.
func (h *Handler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID := chi.URLParam(r, "id")

	req, ok := httputil.DecodeAndPrepare[PatchUserRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	u, err := h.service.PatchUser(ctx, userID, service.PatchUserCommand{
		IDIncluded: req.IDIncluded,
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "user patch failed",
			"request_id", requestID,
			"user_id", userID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromUser(u))
}

// HandleDelete handles DELETE /users/{id}/ requests.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "id")

	if err := h.service.DeleteUser(ctx, userID); err != nil {
		h.logger.WarnContext(ctx, "user delete failed",
			"request_id", requestcontext.RequestID(ctx),
			"user_id", userID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
