package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/gitcard/internal/auth"
	"github.com/gitcard/internal/db"
)

// GithubLogin starts the OAuth flow: a random state goes into the cookie
// session and the browser is sent to GitHub's authorize page.
func (a *API) GithubLogin(c *gin.Context) {
	session := sessions.Default(c)
	state, err := auth.NewState(session)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to start login")
		return
	}

	c.Redirect(http.StatusFound, a.oauth.AuthorizeURL(state))
}

// GithubCallback finishes the OAuth flow: validate the one-shot state,
// trade the code for an access token, upsert the account and hand a JWT
// back to the frontend via redirect.
func (a *API) GithubCallback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		respondError(c, http.StatusBadRequest, "missing code or state")
		return
	}

	session := sessions.Default(c)
	if !auth.ConsumeState(session, state) {
		respondError(c, http.StatusBadRequest, "invalid or expired state parameter")
		return
	}

	ctx := c.Request.Context()

	accessToken, err := a.github.ExchangeCode(ctx, a.oauth, code)
	if err != nil {
		a.log.Warnw("oauth exchange failed", "err", err)
		respondError(c, http.StatusBadRequest, "failed to exchange authorization code")
		return
	}

	githubUser, err := a.github.FetchUser(ctx, accessToken)
	if err != nil {
		a.log.Warnw("github user fetch failed", "err", err)
		respondError(c, http.StatusBadRequest, "failed to fetch user information from GitHub")
		return
	}

	user, err := db.UpsertUser(a.db,
		githubUser.ID, githubUser.Login, githubUser.Name, githubUser.Email,
		githubUser.AvatarURL, githubUser.HTMLURL, accessToken)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save user")
		return
	}

	token, err := a.tokens.CreateToken(user.ID, user.GithubID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create session token")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("%s/auth/callback?token=%s", a.frontend, token))
}
