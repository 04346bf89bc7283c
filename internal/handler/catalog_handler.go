package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gitcard/internal/catalog"
)

// GetStackCatalog serves the stack pick list for the card editor, grouped
// by the fixed category order.
func (a *API) GetStackCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": catalog.Categories(),
		"stacks":     catalog.AllStacks(),
	})
}

// GetContactCatalog serves the contact-type pick list for the card editor.
func (a *API) GetContactCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"contacts": catalog.AllContacts()})
}
