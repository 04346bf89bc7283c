package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gitcard/internal/config"
	"github.com/gitcard/internal/handler"
)

// Setup configures the Gin engine and all routes, returning the handler
// set alongside so the caller can start background work against it.
func Setup(gdb *gorm.DB, cfg config.AppConfig, log *zap.SugaredLogger) (*gin.Engine, *handler.API) {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("gitcard_session", store))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		cfg.FrontendBaseURL,
		"http://localhost:5173",
		"http://localhost:3000",
	}
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	api := handler.NewAPI(gdb, cfg, log)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "GitCard API",
			"version": "1.0.0",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.GET("/github/login", api.GithubLogin)
		authGroup.GET("/github/callback", api.GithubCallback)
	}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/catalog/stacks", api.GetStackCatalog)
		apiGroup.GET("/catalog/contacts", api.GetContactCatalog)

		// Public card read path, no authentication.
		apiGroup.GET("/profiles/public/:login/cards/:id", api.GetPublicCard)
		apiGroup.GET("/profiles/public/:login/cards/:id/render", api.RenderPublicCard)

		authed := apiGroup.Group("")
		authed.Use(api.AuthRequired())
		{
			authed.GET("/users/me", api.GetCurrentUser)
			authed.GET("/users/me/github-stats", api.GetGithubStats)
			authed.GET("/users/me/repositories", api.GetRepositories)

			authed.POST("/profiles", api.CreateCard)
			authed.GET("/profiles", api.ListCards)
			authed.GET("/profiles/:id", api.GetCard)
			authed.PUT("/profiles/:id", api.UpdateCard)
			authed.DELETE("/profiles/:id", api.DeleteCard)

			authed.GET("/profiles/:id/export/markdown", api.ExportMarkdown)
			authed.GET("/profiles/:id/export/badge", api.ExportBadge)
			authed.GET("/profiles/:id/export/embed", api.ExportEmbed)
			authed.GET("/profiles/:id/export/readme", api.ExportReadme)
			authed.GET("/profiles/:id/export/image", api.ExportImage)
		}
	}

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/stats", api.GetVisitorStats)
		dashboard.POST("/visit", api.RecordVisit)
	}

	return r, api
}
