package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gitcard/internal/auth"
	"github.com/gitcard/internal/db"
)

const currentUserKey = "__current_user"

// AuthRequired validates the Bearer token and loads the account into the
// request context. Expired tokens get a distinct, user-actionable message
// so the frontend can redirect to login.
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			respondError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		claims, err := a.tokens.VerifyToken(strings.TrimSpace(token))
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				respondError(c, http.StatusUnauthorized, "session expired, please log in again")
			} else {
				respondError(c, http.StatusUnauthorized, "invalid token")
			}
			c.Abort()
			return
		}

		var user db.User
		if err := a.db.First(&user, claims.UserID).Error; err != nil {
			respondError(c, http.StatusUnauthorized, "unknown user, please log in again")
			c.Abort()
			return
		}

		c.Set(currentUserKey, &user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *db.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, _ := value.(*db.User)
	return user
}
