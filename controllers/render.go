package controllers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"go-foodie-storefront/config"
	"go-foodie-storefront/helpers"
	"go-foodie-storefront/middleware"
	"go-foodie-storefront/models"
)

var validate = validator.New()

// baseData carries what every page needs: the signed-in profile, the
// capability flags, the cart badge and any flash messages from the last
// redirect.
func baseData(c *gin.Context, cfg *config.AppConfig, data gin.H) gin.H {
	sess := middleware.Current(c)
	profile := sess.Auth.Profile()
	isAdmin := helpers.IsAdmin(profile)

	out := gin.H{
		"User":          profile,
		"Authenticated": sess.Auth.Authenticated(),
		"IsAdmin":       isAdmin,
		"IsSuperAdmin":  helpers.IsSuperAdmin(profile, cfg.SuperAdminEmail),
		"CartCount":     0,
		"DeliveryFee":   cfg.DeliveryFee,
		"PollSeconds":   int(cfg.PollInterval.Seconds()),
		"Flash":         c.Query("ok"),
		"Error":         c.Query("err"),
	}
	if sess.Auth.Authenticated() && !isAdmin {
		out["CartCount"] = sess.Cart.Count()
	}
	for k, v := range data {
		out[k] = v
	}
	return out
}

func redirectWithErr(c *gin.Context, path, msg string) {
	c.Redirect(http.StatusSeeOther, path+"?err="+url.QueryEscape(msg))
}

func redirectWithOK(c *gin.Context, path, msg string) {
	c.Redirect(http.StatusSeeOther, path+"?ok="+url.QueryEscape(msg))
}

// backTo resolves the page a cart intent should return to. Only local
// paths are honored.
func backTo(c *gin.Context) string {
	back := c.PostForm("back")
	if back == "" || !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") {
		return "/menu"
	}
	return back
}

func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Please enter a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "lowercase":
		return fe.Field() + " must be a lowercase slug"
	default:
		return fe.Field() + " is invalid"
	}
}

// stepView is one tracker cell plus the timestamp the status history holds
// for it, when the step has been reached.
type stepView struct {
	helpers.ProgressStep
	Timestamp *time.Time
}

// orderView decorates an order with everything the templates derive:
// progression cells, cancelled flag and the display total (server amount
// plus the delivery fee, added here and nowhere upstream).
type orderView struct {
	models.Order
	Steps        []stepView
	Cancelled    bool
	StatusText   string
	BadgeClass   string
	DisplayTotal float64
}

func buildOrderView(o models.Order, deliveryFee float64) orderView {
	view := orderView{
		Order:        o,
		Cancelled:    o.OrderStatus == helpers.StatusCancelled,
		StatusText:   helpers.StatusLabel(o.OrderStatus),
		BadgeClass:   helpers.StatusBadgeClass(o.OrderStatus),
		DisplayTotal: o.TotalAmount + deliveryFee,
	}
	for _, step := range helpers.ProgressSteps(o.OrderStatus) {
		sv := stepView{ProgressStep: step}
		if step.Active {
			for _, h := range o.StatusHistory {
				if h.Status == step.Key {
					t := h.Timestamp
					sv.Timestamp = &t
					break
				}
			}
		}
		view.Steps = append(view.Steps, sv)
	}
	return view
}

func buildOrderViews(orders []models.Order, deliveryFee float64) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, buildOrderView(o, deliveryFee))
	}
	return views
}
