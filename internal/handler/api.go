package handler

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gitcard/internal/auth"
	"github.com/gitcard/internal/config"
	"github.com/gitcard/internal/export"
	"github.com/gitcard/internal/github"
	"github.com/gitcard/internal/service"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db       *gorm.DB
	cards    *service.CardService
	stats    *service.StatsService
	visitors *service.VisitorService
	github   *github.Client
	tokens   *auth.TokenIssuer
	exporter *export.ImageExporter
	oauth    github.OAuthConfig
	frontend string
	siteBase string
	log      *zap.SugaredLogger
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, cfg config.AppConfig, log *zap.SugaredLogger) *API {
	client := github.NewClient(log)

	return &API{
		db:       gdb,
		cards:    service.NewCardService(gdb),
		stats:    service.NewStatsService(gdb, client, log),
		visitors: service.NewVisitorService(gdb),
		github:   client,
		tokens:   auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiration),
		exporter: export.NewImageExporter(log),
		oauth: github.OAuthConfig{
			ClientID:     cfg.GithubClientID,
			ClientSecret: cfg.GithubClientSecret,
			RedirectURI:  cfg.GithubRedirectURI,
		},
		frontend: cfg.FrontendBaseURL,
		siteBase: cfg.SiteBaseURL,
		log:      log,
	}
}

// Stats exposes the stats service for the background sync loop.
func (a *API) Stats() *service.StatsService {
	return a.stats
}
