package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig bundles everything the server needs at startup.
type AppConfig struct {
	ListenAddr         string
	Port               string
	DatabasePath       string
	SessionSecret      string
	GinMode            string
	JWTSecret          string
	JWTExpiration      time.Duration
	GithubClientID     string
	GithubClientSecret string
	GithubRedirectURI  string
	FrontendBaseURL    string
	SiteBaseURL        string
	StatsSyncInterval  time.Duration
}

// Load reads the application configuration from environment variables and
// fills in safe defaults for anything missing.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8000"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "gitcard.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "gitcard-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		jwtSecret = "gitcard-dev-jwt-secret"
	}

	jwtExpiration := 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("JWT_EXPIRATION_HOURS")); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			jwtExpiration = time.Duration(hours) * time.Hour
		}
	}

	frontendBaseURL := strings.TrimSpace(os.Getenv("FRONTEND_BASE_URL"))
	if frontendBaseURL == "" {
		frontendBaseURL = "http://localhost:5173"
	}

	siteBaseURL := strings.TrimSpace(os.Getenv("SITE_BASE_URL"))
	if siteBaseURL == "" {
		siteBaseURL = frontendBaseURL
	}

	statsSyncInterval := time.Hour
	if raw := strings.TrimSpace(os.Getenv("STATS_SYNC_INTERVAL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			statsSyncInterval = parsed
		}
	}

	return AppConfig{
		ListenAddr:         listenAddr,
		Port:               port,
		DatabasePath:       databasePath,
		SessionSecret:      sessionSecret,
		GinMode:            ginMode,
		JWTSecret:          jwtSecret,
		JWTExpiration:      jwtExpiration,
		GithubClientID:     strings.TrimSpace(os.Getenv("GITHUB_CLIENT_ID")),
		GithubClientSecret: strings.TrimSpace(os.Getenv("GITHUB_CLIENT_SECRET")),
		GithubRedirectURI:  strings.TrimSpace(os.Getenv("GITHUB_REDIRECT_URI")),
		FrontendBaseURL:    frontendBaseURL,
		SiteBaseURL:        siteBaseURL,
		StatsSyncInterval:  statsSyncInterval,
	}
}
