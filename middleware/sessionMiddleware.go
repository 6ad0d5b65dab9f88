package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-foodie-storefront/session"
)

const (
	// SessionCookie identifies the browser session holding the three state
	// containers.
	SessionCookie = "foodie_session"

	sessionKey = "session"

	cookieMaxAge = 30 * 24 * 60 * 60
)

// Session resolves or creates the browser session and stashes it in the
// request context for everything downstream.
func Session(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(SessionCookie)
		sess := manager.GetOrCreate(id)
		if sess.ID != id {
			c.SetCookie(SessionCookie, sess.ID, cookieMaxAge, "/", "", false, true)
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// Current returns the session placed by the Session middleware.
func Current(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

// RequireAuth sends anonymous sessions to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := Current(c)
		if !sess.Auth.Authenticated() {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
