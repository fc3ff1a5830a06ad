package handler

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"miniblog/internal/database"
	"miniblog/internal/httputil"
)

// HealthHandler reports service health, including an explicit database ping
// instead of a cached connected flag.
type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := database.HealthCheck(r.Context(), h.db); err != nil {
		httputil.WriteError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
