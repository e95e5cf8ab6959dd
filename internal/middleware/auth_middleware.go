package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lnbfans/courtside/internal/models"
	"github.com/lnbfans/courtside/internal/service"
)

// SessionCookie is the name of the session token cookie.
const SessionCookie = "session"

// userKey is the context key holding the resolved *models.User.
const userKey = "current_user"

// RequireAuth resolves the session cookie to a user row and stores it in
// the request context. Anonymous requests are redirected to the login
// page instead of receiving a bare 401.
func RequireAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		user, err := auth.CurrentUser(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve session"})
			c.Abort()
			return
		}
		if user == nil {
			// Stale or forged token.
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireRole gates a route group on the acting user's role, which
// RequireAuth re-read from the database for this request. Denied users
// land on the public landing page, not on an error response.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.Role != role {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireAuth, nil outside an
// authenticated route.
func CurrentUser(c *gin.Context) *models.User {
	val, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}
