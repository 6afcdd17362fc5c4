package admin

import (
	"net/http"

	"admissionsgateway/internal/api"
	"admissionsgateway/internal/history"
)

type Handlers struct {
	History *history.Repository
}

// Statistics returns applicant counts per latest observed phase, for the
// admissions dashboard.
func (h Handlers) Statistics(w http.ResponseWriter, r *http.Request) {
	counts, err := h.History.CountByPhase(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if counts == nil {
		counts = []history.PhaseCount{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"phases": counts})
}
