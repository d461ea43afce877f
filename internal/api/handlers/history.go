package handlers

import (
	"net/http"
	"strconv"

	"github.com/electa-app/electa/internal/history"
	"github.com/electa-app/electa/pkg/logger"
)

const defaultHistoryLimit = 20
const maxHistoryLimit = 100

// HistoryHandler serves persisted scans.
type HistoryHandler struct {
	repo   *history.Repository // nil when persistence is disabled
	logger *logger.Logger
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(repo *history.Repository, log *logger.Logger) *HistoryHandler {
	return &HistoryHandler{
		repo:   repo,
		logger: log,
	}
}

// Recent lists the latest persisted scans.
// GET /api/election/history?limit=20
func (h *HistoryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		respondError(w, http.StatusServiceUnavailable, "Scan history is not configured")
		return
	}

	limit := defaultHistoryLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := h.repo.RecentScans(r.Context(), limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list scan history")
		respondError(w, http.StatusInternalServerError, "Failed to list scan history")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(records),
		"scans": records,
	})
}
