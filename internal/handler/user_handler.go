package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetCurrentUser returns the authenticated account's profile data.
func (a *API) GetCurrentUser(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"github_id":     user.GithubID,
		"github_login":  user.GithubLogin,
		"name":          user.Name,
		"email":         user.Email,
		"avatar_url":    user.AvatarURL,
		"html_url":      user.HTMLURL,
		"created_at":    user.CreatedAt,
		"last_login_at": user.LastLoginAt,
	})
}

// GetGithubStats returns live GitHub statistics for the authenticated
// user, falling back to the cached copy when the API is unreachable.
func (a *API) GetGithubStats(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	stats, err := a.stats.Fetch(c.Request.Context(), user)
	if err != nil {
		respondError(c, http.StatusBadGateway, "failed to fetch GitHub statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetRepositories lists the user's recently updated repositories for the
// card editor's pin picker.
func (a *API) GetRepositories(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	max := 30
	if raw := c.Query("max"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			max = parsed
		}
	}

	repos, err := a.github.FetchRepositories(c.Request.Context(), user.GithubAccessToken, max)
	if err != nil {
		respondError(c, http.StatusBadGateway, "failed to fetch repositories")
		return
	}

	c.JSON(http.StatusOK, gin.H{"repositories": repos})
}
