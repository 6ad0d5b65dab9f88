package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-foodie-storefront/backend"
	"go-foodie-storefront/config"
	"go-foodie-storefront/middleware"
	"go-foodie-storefront/session"
)

const refreshTimeout = 10 * time.Second

// OrdersPage lists the customer's orders and keeps them fresh: the list is
// re-fetched on the poll interval for as long as this stays the active
// page.
func OrdersPage(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)

		refresh := myOrdersRefresh(sess)
		sess.Watch.Mount("orders", refresh)
		refresh()

		orders, fetchErr := sess.MyOrders()

		c.HTML(http.StatusOK, "orders.html", baseData(c, cfg, gin.H{
			"Orders":      buildOrderViews(orders, cfg.DeliveryFee),
			"OrdersError": fetchErr,
			"Refresh":     true,
		}))
	}
}

func myOrdersRefresh(sess *session.Session) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		orders, err := sess.API.MyOrders(ctx)
		if err != nil {
			sess.SetMyOrdersErr(backend.Message(err, "Failed to fetch orders"))
			return
		}
		sess.SetMyOrders(orders)
	}
}

// OrderDetailPage shows one order's progression tracker, polled while the
// page stays active.
func OrderDetailPage(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		id := c.Param("id")

		refresh := orderRefresh(sess, id)
		sess.Watch.Mount("order:"+id, refresh)
		refresh()

		order, fetchErr := sess.CurrentOrder(id)
		if order == nil {
			if fetchErr == "" {
				fetchErr = "Order not found"
			}
			redirectWithErr(c, "/orders", fetchErr)
			return
		}

		c.HTML(http.StatusOK, "order_detail.html", baseData(c, cfg, gin.H{
			"Order":      buildOrderView(*order, cfg.DeliveryFee),
			"OrderError": fetchErr,
			"Refresh":    true,
		}))
	}
}

func orderRefresh(sess *session.Session, id string) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		order, err := sess.API.Order(ctx, id)
		if err != nil {
			sess.SetCurrentOrderErr(id, backend.Message(err, "Failed to fetch order"))
			return
		}
		sess.SetCurrentOrder(id, order)
	}
}
