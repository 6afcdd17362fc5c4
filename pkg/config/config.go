package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MigrationsPath string

	// Hosted Postgres convenience:
	// - DATABASE_URL: runtime connection (often PgBouncer/pooler)
	// - DIRECT_URL: direct connection for migrations
	DatabaseURL string
	DirectURL   string

	DB DBConfig

	Admissions AdmissionsConfig

	Status StatusConfig

	// SessionSecret signs applicant session tokens (HS256).
	SessionSecret string

	// AdminAPIKey guards the admin statistics endpoint.
	AdminAPIKey string

	// AllowedOrigins is a comma-separated allowlist of origins allowed to call
	// the gateway from a browser context. Example:
	//   https://daftar.university.ac.id,http://localhost:5173
	AllowedOrigins []string
}

type DBConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

// AdmissionsConfig describes the upstream admissions API this gateway fronts.
type AdmissionsConfig struct {
	// BaseURL is the upstream root, e.g. https://sia.university.ac.id/api.
	BaseURL string

	// ServiceToken authenticates the gateway itself against the upstream.
	ServiceToken string

	// TimeoutSeconds bounds each upstream request. The mobile app this gateway
	// replaced relied on client defaults and could hang; here it is explicit.
	TimeoutSeconds int
}

// StatusConfig carries the aggregation policy knobs for the two rules the
// business owner has not settled yet (see DESIGN.md).
type StatusConfig struct {
	// AchievementRequired treats an empty achievement list as a rejection the
	// applicant must address. Default false: achievements are optional.
	AchievementRequired bool

	// AcademicStrict requires transcript plus either diploma or SKL. When
	// false any one academic document satisfies the category.
	AcademicStrict bool
}

func Load() Config {
	// Convenience for local dev: load variables from .env if present.
	// In production, rely on real environment variables.
	_ = godotenv.Load()

	// Cloud Run sets PORT. Prefer it when HTTP_ADDR isn't explicitly set.
	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			httpAddr = ":" + port
		} else {
			httpAddr = ":8081"
		}
	}

	return Config{
		AppEnv:         env("APP_ENV", "dev"),
		HTTPAddr:       httpAddr,
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DirectURL:      os.Getenv("DIRECT_URL"),
		DB: DBConfig{
			Host:     env("DB_HOST", "localhost"),
			Port:     env("DB_PORT", "5432"),
			Name:     env("DB_NAME", "admissions"),
			User:     env("DB_USER", "admissions"),
			Password: env("DB_PASSWORD", "admissions"),
			SSLMode:  env("DB_SSLMODE", "disable"),
		},
		Admissions: AdmissionsConfig{
			BaseURL:        os.Getenv("ADMISSIONS_BASE_URL"),
			ServiceToken:   os.Getenv("ADMISSIONS_SERVICE_TOKEN"),
			TimeoutSeconds: envInt("ADMISSIONS_TIMEOUT_SECONDS", 20),
		},
		Status: StatusConfig{
			AchievementRequired: envBool("STATUS_ACHIEVEMENT_REQUIRED", false),
			AcademicStrict:      envBool("STATUS_ACADEMIC_STRICT", true),
		},
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		AdminAPIKey:    os.Getenv("ADMIN_API_KEY"),
		AllowedOrigins: envList("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:4173"),
	}
}

func env(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func envList(key, fallbackCSV string) []string {
	v := os.Getenv(key)
	if v == "" {
		v = fallbackCSV
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
