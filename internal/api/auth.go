package api

import (
	"net/http"
	"strings"
	"time"

	"admissionsgateway/pkg/config"
)

// ApplicantAuth validates applicant session tokens.
//
// Expected header:
// - Authorization: Bearer <JWT>
//
// In dev, if Authorization is missing, it falls back to X-Applicant-ID to keep
// local testing simple.
func ApplicantAuth(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := strings.TrimSpace(r.Header.Get("Authorization"))
			if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
				token := strings.TrimSpace(authz[7:])
				applicantID, err := VerifySessionToken(token, cfg.SessionSecret, time.Now())
				if err != nil {
					WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid session token")
					return
				}
				next.ServeHTTP(w, r.WithContext(WithApplicantID(r.Context(), applicantID)))
				return
			}

			if cfg.AppEnv != "prod" {
				if id := strings.TrimSpace(r.Header.Get("X-Applicant-ID")); id != "" {
					next.ServeHTTP(w, r.WithContext(WithApplicantID(r.Context(), id)))
					return
				}
			}

			WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing applicant identity")
		})
	}
}

// AdminAuth guards internal dashboard endpoints with a static API key.
func AdminAuth(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get("X-Admin-Key"))
			if cfg.AdminAPIKey == "" || key != cfg.AdminAPIKey {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid admin key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
