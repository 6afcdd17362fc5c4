package registration

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"admissionsgateway/internal/api"
	"admissionsgateway/internal/history"
	"admissionsgateway/internal/notification"
	"admissionsgateway/internal/snapshot"
	"admissionsgateway/internal/status"
	"admissionsgateway/pkg/config"
	"admissionsgateway/pkg/db"
	"admissionsgateway/pkg/siakad"
)

const maxUploadBytes = 10 << 20

type Handlers struct {
	Cfg     config.Config
	DB      *pgxpool.Pool
	Client  siakad.Client
	Fetcher *snapshot.Fetcher
	History *history.Repository
}

type StatusResponse struct {
	Phase              status.Phase            `json:"phase"`
	Screen             status.Screen           `json:"screen"`
	AnyRejected        bool                    `json:"anyRejected"`
	Categories         []status.CategoryStatus `json:"categories"`
	RegistrationNumber string                  `json:"registrationNumber,omitempty"`
	Payment            *siakad.Payment         `json:"payment,omitempty"`
	Sources            snapshot.Sources        `json:"sources"`
}

// buildStatusResponse flattens the snapshot and report into the response the
// status screens render: the payment record rides along so the payment screen
// can show amount, expiry, and rejection reason without a second fetch.
func buildStatusResponse(snap status.Snapshot, sources snapshot.Sources, report status.Report) StatusResponse {
	resp := StatusResponse{
		Phase:       report.Phase,
		Screen:      report.Screen,
		AnyRejected: report.AnyRejected,
		Categories:  report.Categories,
		Payment:     snap.Payment,
		Sources:     sources,
	}
	if snap.Profile != nil {
		resp.RegistrationNumber = snap.Profile.RegistrationNumber
	}
	return resp
}

// Status is the one endpoint behind every status screen: fetch, aggregate,
// route. The frontend renders whatever screen comes back instead of deriving
// its own.
func (h Handlers) Status(w http.ResponseWriter, r *http.Request) {
	applicantID := api.ApplicantIDFromContext(r.Context())
	if applicantID == "" {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing applicant identity")
		return
	}

	snap, sources, err := h.Fetcher.Fetch(r.Context(), applicantID)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}

	report := status.Aggregate(snap, h.policy())

	// Record the transition out of band of the response contract: a hiccup in
	// the event log must not fail the status screen.
	if err := h.recordTransition(r, applicantID, report); err != nil {
		log.Printf("[registration] record transition for %s: %v", applicantID, err)
	}

	api.WriteJSON(w, http.StatusOK, buildStatusResponse(snap, sources, report))
}

func (h Handlers) policy() status.Policy {
	return status.Policy{
		AchievementRequired: h.Cfg.Status.AchievementRequired,
		AcademicStrict:      h.Cfg.Status.AcademicStrict,
	}
}

func (h Handlers) recordTransition(r *http.Request, applicantID string, report status.Report) error {
	now := time.Now()
	return db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		// Serialize per applicant: concurrent status requests landing after
		// the same coalesced fetch would otherwise both read the same latest
		// phase and insert duplicate events.
		if _, err := tx.Exec(r.Context(), `SELECT pg_advisory_xact_lock(hashtext($1))`, applicantID); err != nil {
			return err
		}

		last, found, err := history.LatestPhase(r.Context(), tx, applicantID)
		if err != nil {
			return err
		}
		if found && last == report.Phase {
			return nil
		}

		ev := history.Event{
			ApplicantID: applicantID,
			ToPhase:     report.Phase,
			Screen:      report.Screen,
			AnyRejected: report.AnyRejected,
			OccurredAt:  now,
		}
		if found {
			ev.FromPhase = last
		}
		if err := history.Insert(r.Context(), tx, ev); err != nil {
			return err
		}

		title, body := notificationFor(report)
		if title == "" {
			return nil
		}
		return notification.Insert(r.Context(), tx, applicantID, title, body, now)
	})
}

// notificationFor picks the message for a phase change. Phases with nothing
// actionable (draft, first submission) stay quiet.
func notificationFor(report status.Report) (title, body string) {
	switch report.Phase {
	case status.PhaseInReviewWithFeedback:
		if report.AnyRejected {
			return "Ada berkas yang ditolak", "Satu atau lebih berkas pendaftaran Anda ditolak. Silakan periksa dan unggah ulang."
		}
		return "Berkas sedang diperiksa", "Berkas pendaftaran Anda sedang diperiksa oleh panitia."
	case status.PhaseReviewed:
		return "Pemeriksaan selesai", "Seluruh berkas pendaftaran Anda telah selesai diperiksa."
	case status.PhaseApproved:
		return "Selamat, Anda diterima", "Pendaftaran Anda telah disetujui."
	case status.PhaseRejected:
		return "Pendaftaran ditolak", "Mohon maaf, pendaftaran Anda tidak dapat kami terima."
	default:
		return "", ""
	}
}

// HistoryList returns the recorded phase transitions for the current applicant.
func (h Handlers) HistoryList(w http.ResponseWriter, r *http.Request) {
	applicantID := api.ApplicantIDFromContext(r.Context())
	if applicantID == "" {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing applicant identity")
		return
	}

	items, err := h.History.ListByApplicant(r.Context(), applicantID)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []history.Event{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

// UploadDocument forwards a document (re-)upload to the upstream. The upstream
// resets the document to pending; the applicant then re-fetches status.
func (h Handlers) UploadDocument(w http.ResponseWriter, r *http.Request) {
	applicantID := api.ApplicantIDFromContext(r.Context())
	if applicantID == "" {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing applicant identity")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid multipart form")
		return
	}

	docType, ok := siakad.ParseDocumentType(strings.TrimSpace(r.FormValue("id_document_type")))
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "unknown document type")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "file is required")
		return
	}
	defer file.Close()

	doc, err := h.Client.UploadDocument(r.Context(), applicantID, docType, header.Filename, file)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusCreated, map[string]any{"document": doc})
}

func writeUpstreamError(w http.ResponseWriter, err error) {
	var nf siakad.NotFoundError
	if errors.As(err, &nf) {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", nf.Error())
		return
	}
	var ve siakad.ValidationError
	if errors.As(err, &ve) {
		api.WriteFieldError(w, http.StatusUnprocessableEntity, "VALIDATION_FAILED", ve.Message, ve.Fields)
		return
	}
	var ne siakad.NetworkError
	if errors.As(err, &ne) {
		api.WriteError(w, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "admissions service unavailable, try again")
		return
	}
	api.WriteError(w, http.StatusBadGateway, "UPSTREAM_ERROR", fmt.Sprintf("admissions service error: %v", err))
}
