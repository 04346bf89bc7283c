package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gitcard/internal/card"
	"github.com/gitcard/internal/db"
	"github.com/gitcard/internal/service"
)

type cardRequest struct {
	CardTitle       *string                  `json:"card_title"`
	Name            *string                  `json:"name"`
	Title           *string                  `json:"title"`
	Tagline         *string                  `json:"tagline"`
	PrimaryColor    *string                  `json:"primary_color"`
	SecondaryColor  *string                  `json:"secondary_color"`
	Gradient        *string                  `json:"gradient"`
	ShowStacks      *bool                    `json:"show_stacks"`
	ShowContact     *bool                    `json:"show_contact"`
	ShowGithubStats *bool                    `json:"show_github_stats"`
	ShowBaekjoon    *bool                    `json:"show_baekjoon"`
	BaekjoonID      *string                  `json:"baekjoon_id"`
	StackLabelLang  *string                  `json:"stack_label_lang"`
	StackAlignment  *string                  `json:"stack_alignment"`
	Stacks          []card.StackEntry        `json:"stacks"`
	Contacts        []card.ContactEntry      `json:"contacts"`
	Repositories    []card.RepositorySummary `json:"repositories"`
}

func (r cardRequest) toInput() service.CardInput {
	return service.CardInput{
		CardTitle:       r.CardTitle,
		Name:            r.Name,
		Title:           r.Title,
		Tagline:         r.Tagline,
		PrimaryColor:    r.PrimaryColor,
		SecondaryColor:  r.SecondaryColor,
		Gradient:        r.Gradient,
		ShowStacks:      r.ShowStacks,
		ShowContact:     r.ShowContact,
		ShowGithubStats: r.ShowGithubStats,
		ShowBaekjoon:    r.ShowBaekjoon,
		BaekjoonID:      r.BaekjoonID,
		StackLabelLang:  r.StackLabelLang,
		StackAlignment:  r.StackAlignment,
		Stacks:          r.Stacks,
		Contacts:        r.Contacts,
		Repositories:    r.Repositories,
	}
}

// CreateCard stores a new profile card for the authenticated user.
func (a *API) CreateCard(c *gin.Context) {
	user := currentUser(c)

	var payload cardRequest
	if !bindJSON(c, &payload, "invalid card payload") {
		return
	}

	record, err := a.cards.Create(user.ID, payload.toInput())
	if err != nil {
		handleCardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cardPayload(record))
}

// ListCards returns the authenticated user's cards, newest first.
func (a *API) ListCards(c *gin.Context) {
	user := currentUser(c)

	cards, err := a.cards.ListByUser(user.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list cards")
		return
	}

	items := make([]gin.H, 0, len(cards))
	for i := range cards {
		items = append(items, cardPayload(&cards[i]))
	}
	c.JSON(http.StatusOK, items)
}

// GetCard returns one card owned by the authenticated user.
func (a *API) GetCard(c *gin.Context) {
	user := currentUser(c)

	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid card id")
		return
	}

	record, err := a.cards.Get(id, user.ID)
	if err != nil {
		handleCardError(c, err)
		return
	}

	c.JSON(http.StatusOK, cardPayload(record))
}

// UpdateCard applies the provided fields to a card. Concurrent edits are
// last-write-wins.
func (a *API) UpdateCard(c *gin.Context) {
	user := currentUser(c)

	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid card id")
		return
	}

	var payload cardRequest
	if !bindJSON(c, &payload, "invalid card payload") {
		return
	}

	record, err := a.cards.Update(id, user.ID, payload.toInput())
	if err != nil {
		handleCardError(c, err)
		return
	}

	c.JSON(http.StatusOK, cardPayload(record))
}

// DeleteCard removes a card the authenticated user owns.
func (a *API) DeleteCard(c *gin.Context) {
	user := currentUser(c)

	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid card id")
		return
	}

	if err := a.cards.Delete(id, user.ID); err != nil {
		handleCardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile card deleted successfully"})
}

// GetPublicCard serves a card by its owner's GitHub login without
// authentication. This is the projection behind the shareable page.
func (a *API) GetPublicCard(c *gin.Context) {
	record, _, ok := a.publicCard(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cardPayload(record))
}

// RenderPublicCard serves the rendered section list for a public card.
// A stats fetch failure degrades the stats section, never the response.
func (a *API) RenderPublicCard(c *gin.Context) {
	record, owner, ok := a.publicCard(c)
	if !ok {
		return
	}

	var stats *card.GithubStats
	if record.ShowGithubStats {
		if cached, err := a.stats.Cached(owner.ID); err == nil {
			stats = cached
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"github_login": owner.GithubLogin,
		"sections":     card.Render(record.Config(), stats),
	})
}

func (a *API) publicCard(c *gin.Context) (*db.ProfileCard, *db.User, bool) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid card id")
		return nil, nil, false
	}

	record, owner, err := a.cards.GetPublic(c.Param("login"), id)
	if err != nil {
		handleCardError(c, err)
		return nil, nil, false
	}
	return record, owner, true
}

func handleCardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCardNotFound):
		respondError(c, http.StatusNotFound, "Profile card not found")
	case errors.Is(err, service.ErrCardInvalidInput):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}

func cardPayload(record *db.ProfileCard) gin.H {
	cfg := record.Config()
	return gin.H{
		"id":                record.ID,
		"user_id":           record.UserID,
		"card_title":        cfg.CardTitle,
		"name":              cfg.Name,
		"title":             cfg.Title,
		"tagline":           cfg.Tagline,
		"primary_color":     cfg.PrimaryColor,
		"secondary_color":   cfg.SecondaryColor,
		"gradient":          cfg.Gradient,
		"show_stacks":       cfg.ShowStacks,
		"show_contact":      cfg.ShowContact,
		"show_github_stats": cfg.ShowGithubStats,
		"show_baekjoon":     cfg.ShowBaekjoon,
		"baekjoon_id":       cfg.BaekjoonID,
		"stack_label_lang":  cfg.StackLabelLang,
		"stack_alignment":   cfg.StackAlignment,
		"stacks":            cfg.Stacks,
		"contacts":          cfg.Contacts,
		"repositories":      cfg.Repositories,
		"created_at":        record.CreatedAt,
		"updated_at":        record.UpdatedAt,
	}
}
