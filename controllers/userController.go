package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-foodie-storefront/config"
	"go-foodie-storefront/middleware"
	"go-foodie-storefront/models"
)

// LoginPage renders the sign-in form; signed-in users are sent home.
func LoginPage(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		if sess.Auth.Authenticated() {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		c.HTML(http.StatusOK, "login.html", baseData(c, cfg, gin.H{}))
	}
}

func Login(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		var form models.LoginForm
		if err := c.ShouldBind(&form); err != nil {
			redirectWithErr(c, "/login", "Please fill in email and password")
			return
		}
		if err := validate.Struct(&form); err != nil {
			redirectWithErr(c, "/login", validationMessage(err))
			return
		}
		if err := sess.Auth.Login(c.Request.Context(), form); err != nil {
			redirectWithErr(c, "/login", sess.Auth.Err())
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func RegisterPage(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		if sess.Auth.Authenticated() {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		c.HTML(http.StatusOK, "register.html", baseData(c, cfg, gin.H{}))
	}
}

func Register(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		var form models.RegisterForm
		if err := c.ShouldBind(&form); err != nil {
			redirectWithErr(c, "/register", "Please fill in all required fields")
			return
		}
		if err := validate.Struct(&form); err != nil {
			redirectWithErr(c, "/register", validationMessage(err))
			return
		}
		if err := sess.Auth.Register(c.Request.Context(), form); err != nil {
			redirectWithErr(c, "/register", sess.Auth.Err())
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// Logout clears the credential (memory and both durable entries) and goes
// home. No backend call is involved.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		sess.Watch.Stop()
		sess.Auth.Logout()
		sess.Cart.ClearLocal()
		c.Redirect(http.StatusSeeOther, "/")
	}
}
