package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-foodie-storefront/helpers"
)

// RequireAdmin guards the admin console: signed-in admins only, everyone
// else goes back to the storefront. Super-admin-only screens do their own
// additional check via helpers.IsSuperAdmin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := Current(c)
		if !sess.Auth.Authenticated() {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		if !helpers.IsAdmin(sess.Auth.Profile()) {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
