package handlers

import (
	"net/http"

	"github.com/electa-app/electa/internal/rules"
	"github.com/electa-app/electa/pkg/logger"
)

// PolicyHandler exposes the rule table and its hash for reproducibility
// audits.
type PolicyHandler struct {
	logger *logger.Logger
}

// NewPolicyHandler creates a new policy handler.
func NewPolicyHandler(log *logger.Logger) *PolicyHandler {
	return &PolicyHandler{logger: log}
}

// Get returns the active scoring policy. ?format=yaml renders the YAML
// form for human review.
// GET /api/policy
func (h *PolicyHandler) Get(w http.ResponseWriter, r *http.Request) {
	policy := rules.Snapshot()

	hash, err := policy.Hash()
	if err != nil {
		h.logger.WithError(err).Error("Failed to hash policy")
		respondError(w, http.StatusInternalServerError, "Failed to render policy")
		return
	}

	if r.URL.Query().Get("format") == "yaml" {
		out, err := policy.YAML()
		if err != nil {
			h.logger.WithError(err).Error("Failed to render policy YAML")
			respondError(w, http.StatusInternalServerError, "Failed to render policy")
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.Header().Set("X-Policy-Hash", hash)
		w.Write(out)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"hash":   hash,
		"policy": policy,
	})
}
