// Package health provides HTTP health check endpoints for liveness and
// readiness probes.
package health

import (
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"user-registry/pkg/platform/httputil"
)

// CheckFunc is a function that checks the health of a dependency.
// It returns nil if healthy, or an error describing the issue.
type CheckFunc func() error

// Handler provides health check endpoints.
type Handler struct {
	startTime time.Time

	mu     sync.RWMutex
	checks map[string]CheckFunc
}

// New creates a new health handler.
func New() *Handler {
	return &Handler{
		startTime: time.Now(),
		checks:    make(map[string]CheckFunc),
	}
}

// RegisterCheck adds a named health check for the readiness probe.
func (h *Handler) RegisterCheck(name string, check CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = check
}

// Register mounts health check routes on the given router. These endpoints
// never require authentication.
func (h *Handler) Register(r chi.Router) {
	r.Get("/health/", h.HandleStatus)
	r.Get("/health/ready/", h.HandleReadiness)
}

// StatusResponse is the response for the plain health probe.
type StatusResponse struct {
	Status string `json:"status"`
}

// HandleStatus returns a simple liveness response. It always returns 200 OK
// while the process is serving requests.
func (h *Handler) HandleStatus(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, StatusResponse{
		Status: "ok",
	})
}

// ReadinessResponse is the response for the readiness probe.
type ReadinessResponse struct {
	Status        string            `json:"status"`
	UptimeSeconds int64             `json:"uptime_seconds"`
	Checks        map[string]string `json:"checks,omitempty"`
}

// HandleReadiness runs all registered dependency checks in parallel and
// returns 503 if any are unhealthy.
func (h *Handler) HandleReadiness(w http.ResponseWriter, _ *http.Request) {
	h.mu.RLock()
	checks := make(map[string]CheckFunc, len(h.checks))
	maps.Copy(checks, h.checks)
	h.mu.RUnlock()

	var resultsMu sync.Mutex
	results := make(map[string]string, len(checks))
	allHealthy := true

	var g errgroup.Group
	for name, check := range checks {
		name, check := name, check
		g.Go(func() error {
			err := check()
			resultsMu.Lock()
			defer resultsMu.Unlock()
			if err != nil {
				results[name] = "down: " + err.Error()
				allHealthy = false
			} else {
				results[name] = "up"
			}
			return nil
		})
	}
	g.Wait() //nolint:errcheck // checks report through the results map

	response := ReadinessResponse{
		Status:        "ready",
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		Checks:        results,
	}
	if !allHealthy {
		response.Status = "not_ready"
		httputil.WriteJSON(w, http.StatusServiceUnavailable, response)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, response)
}
