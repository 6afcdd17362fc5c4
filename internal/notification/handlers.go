package notification

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"admissionsgateway/internal/api"
)

type Handlers struct {
	Repo *Repository
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	applicantID := api.ApplicantIDFromContext(r.Context())
	if applicantID == "" {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing applicant identity")
		return
	}

	items, err := h.Repo.ListByApplicant(r.Context(), applicantID)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []Notification{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h Handlers) MarkRead(w http.ResponseWriter, r *http.Request) {
	applicantID := api.ApplicantIDFromContext(r.Context())
	if applicantID == "" {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing applicant identity")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing id")
		return
	}

	ok, err := h.Repo.MarkRead(r.Context(), applicantID, id)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if !ok {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "notification not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}
