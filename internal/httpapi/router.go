package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"admissionsgateway/internal/admin"
	"admissionsgateway/internal/api"
	"admissionsgateway/internal/history"
	"admissionsgateway/internal/notification"
	"admissionsgateway/internal/registration"
	"admissionsgateway/internal/snapshot"
	"admissionsgateway/pkg/config"
	"admissionsgateway/pkg/siakad"
)

type Dependencies struct {
	Cfg config.Config
	DB  *pgxpool.Pool
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	client := siakad.Client{
		HTTPClient:   &http.Client{Timeout: time.Duration(deps.Cfg.Admissions.TimeoutSeconds) * time.Second},
		BaseURL:      deps.Cfg.Admissions.BaseURL,
		ServiceToken: deps.Cfg.Admissions.ServiceToken,
	}

	historyRepo := history.NewRepository(deps.DB)
	registrationHandlers := registration.Handlers{
		Cfg:     deps.Cfg,
		DB:      deps.DB,
		Client:  client,
		Fetcher: &snapshot.Fetcher{Client: client},
		History: historyRepo,
	}
	notificationHandlers := notification.Handlers{
		Repo: notification.NewRepository(deps.DB),
	}
	adminHandlers := admin.Handlers{History: historyRepo}

	// v1
	r.Route("/v1", func(r chi.Router) {
		r.Use(api.CORSMiddleware(api.CORSOptions{
			AllowedOrigins: deps.Cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization", "X-Applicant-ID"},
			MaxAgeSeconds:  600,
		}))

		// Applicant APIs (session-scoped)
		r.Group(func(r chi.Router) {
			r.Use(api.ApplicantAuth(deps.Cfg))

			r.Get("/registration/status", registrationHandlers.Status)
			r.Get("/registration/status/history", registrationHandlers.HistoryList)
			r.Post("/registration/documents", registrationHandlers.UploadDocument)
			r.Post("/registration/payment-proof", registrationHandlers.UploadPaymentProof)

			r.Get("/notifications", notificationHandlers.List)
			r.Post("/notifications/{id}/read", notificationHandlers.MarkRead)
		})

		// Admin dashboard
		r.Group(func(r chi.Router) {
			r.Use(api.AdminAuth(deps.Cfg))

			r.Get("/admin/statistics", adminHandlers.Statistics)
		})
	})

	return r
}
