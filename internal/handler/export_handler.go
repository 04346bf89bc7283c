package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gitcard/internal/db"
	"github.com/gitcard/internal/export"
)

// Image capture is timeout-bounded; a stuck browser must not hold the
// request open.
const imageCaptureTimeout = 30 * time.Second

// ExportMarkdown serves the card's README-ready markdown document. With
// ?html=1 the response is the sanitized HTML preview instead.
func (a *API) ExportMarkdown(c *gin.Context) {
	record, user, ok := a.ownedCard(c)
	if !ok {
		return
	}

	markdown := export.Markdown(record.Config(), user.GithubLogin, a.siteBase, record.ID)

	if c.Query("html") == "1" {
		html, err := export.MarkdownHTML(markdown)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to render preview")
			return
		}
		c.JSON(http.StatusOK, gin.H{"markdown": markdown, "html": html})
		return
	}

	c.JSON(http.StatusOK, gin.H{"markdown": markdown})
}

// ExportBadge serves the one-line markdown badge for the card.
func (a *API) ExportBadge(c *gin.Context) {
	record, user, ok := a.ownedCard(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"badge": export.Badge(user.GithubLogin, a.siteBase, record.ID)})
}

// ExportEmbed serves the embeddable HTML snippet for the card.
func (a *API) ExportEmbed(c *gin.Context) {
	record, user, ok := a.ownedCard(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"html": export.EmbedHTML(record.Config(), user.GithubLogin, a.siteBase, record.ID)})
}

// ExportReadme serves the full README template assembled from external
// badge generators.
func (a *API) ExportReadme(c *gin.Context) {
	record, user, ok := a.ownedCard(c)
	if !ok {
		return
	}

	cfg := record.Config()
	readme := export.ReadmeTemplate(user.GithubLogin, export.ReadmeOptions{
		HeaderText:   cfg.Name,
		Tagline:      cfg.Tagline,
		Stacks:       cfg.Stacks,
		ShowStats:    cfg.ShowGithubStats,
		BaekjoonID:   baekjoonIDFor(cfg.ShowBaekjoon, cfg.BaekjoonID),
		PrimaryColor: cfg.PrimaryColor,
	})

	if c.Query("html") == "1" {
		html, err := export.MarkdownHTML(readme)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to render preview")
			return
		}
		c.JSON(http.StatusOK, gin.H{"markdown": readme, "html": html})
		return
	}

	c.JSON(http.StatusOK, gin.H{"markdown": readme})
}

// ExportImage captures a PNG snapshot of the public card page. When the
// headless browser is unavailable the client is told to fall back to the
// markdown embed instead of getting a hard failure.
func (a *API) ExportImage(c *gin.Context) {
	record, user, ok := a.ownedCard(c)
	if !ok {
		return
	}

	width := 0
	if raw := c.Query("width"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			width = parsed
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), imageCaptureTimeout)
	defer cancel()

	publicURL := export.PublicCardURL(a.siteBase, user.GithubLogin, record.ID)
	image, err := a.exporter.Capture(ctx, publicURL, width)
	if err != nil {
		if errors.Is(err, export.ErrExporterUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "image export not available",
				"hint":  "use the markdown or HTML embed instead",
			})
			return
		}
		respondError(c, http.StatusGatewayTimeout, "image capture timed out")
		return
	}

	c.Data(http.StatusOK, "image/png", image)
}

func (a *API) ownedCard(c *gin.Context) (*db.ProfileCard, *db.User, bool) {
	u := currentUser(c)

	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid card id")
		return nil, nil, false
	}

	rec, err := a.cards.Get(id, u.ID)
	if err != nil {
		handleCardError(c, err)
		return nil, nil, false
	}
	return rec, u, true
}

func baekjoonIDFor(show bool, id string) string {
	if !show {
		return ""
	}
	return id
}
