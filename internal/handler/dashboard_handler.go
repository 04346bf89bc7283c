package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetVisitorStats returns today's and the all-time visitor counts.
func (a *API) GetVisitorStats(c *gin.Context) {
	stats, err := a.visitors.Stats()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load visitor stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RecordVisit increments today's visitor counter and returns the updated
// numbers.
func (a *API) RecordVisit(c *gin.Context) {
	if err := a.visitors.RecordVisit(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to record visit")
		return
	}

	stats, err := a.visitors.Stats()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load visitor stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
