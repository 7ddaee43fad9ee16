package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/iho/budgetledger/internal/usecase"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	store usecase.EntryStore
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store usecase.EntryStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 if the ledger store can be read.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.store.Load(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "store unhealthy", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
		"store":  "ok",
	})
}
