package controllers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-foodie-storefront/config"
	"go-foodie-storefront/middleware"
	"go-foodie-storefront/session"
	"go-foodie-storefront/storage"
)

// pageFixture runs the rendered pages against a fake backend with the real
// templates loaded.
type pageFixture struct {
	router  *gin.Engine
	manager *session.Manager
}

func newPageFixture(t *testing.T, backendHandler http.Handler) *pageFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backendSrv := httptest.NewServer(backendHandler)
	t.Cleanup(backendSrv.Close)

	creds, err := storage.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { creds.Close() })

	cfg := &config.AppConfig{
		BackendURL:      backendSrv.URL,
		SuperAdminEmail: "admin@foodie.com",
		DeliveryFee:     50,
		PollInterval:    30 * time.Second,
	}
	manager := session.NewManager(cfg, creds)

	router := gin.New()
	router.SetFuncMap(template.FuncMap{
		"mulf": func(price float64, qty int) float64 { return price * float64(qty) },
	})
	router.LoadHTMLGlob("../templates/*.html")
	router.Use(middleware.Session(manager))
	router.GET("/menu", MenuPage(cfg))
	router.POST("/login", Login(cfg))
	orders := router.Group("/orders", middleware.RequireAuth())
	orders.GET("/:id", OrderDetailPage(cfg))

	return &pageFixture{router: router, manager: manager}
}

func (f *pageFixture) get(t *testing.T, path, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: cookie})
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *pageFixture) login(t *testing.T) string {
	t.Helper()
	form := url.Values{"email": {"asha@example.com"}, "password": {"pw"}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	return sessionCookie(t, rec)
}

func TestOrderDetailDoesNotLeakPreviousOrderOnFailedFetch(t *testing.T) {
	f := newPageFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Write([]byte(`{"token":"tok-1","user":{"_id":"u1","name":"Asha","email":"asha@example.com","role":"user"}}`))
		case "/orders/AAA":
			w.Write([]byte(`{
				"_id":"ORDER-AAA","orderStatus":"pending","totalAmount":200,
				"items":[{"name":"Dosa","price":100,"quantity":2}],
				"deliveryAddress":"12 MG Road","phone":"9876543210",
				"createdAt":"2026-03-01T12:00:00Z"
			}`))
		case "/orders/BBB":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"boom"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	sid := f.login(t)

	rec := f.get(t, "/orders/AAA", sid)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "RDER-AAA")

	// A failed fetch for another order must not render the cached one under
	// the wrong URL.
	rec = f.get(t, "/orders/BBB", sid)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/orders?err=boom", rec.Header().Get("Location"))
	assert.NotContains(t, rec.Body.String(), "RDER-AAA")

	// The page for order A works again after the failure.
	rec = f.get(t, "/orders/AAA", sid)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "RDER-AAA")
}

func TestOrderDetailUnknownOrderRedirects(t *testing.T) {
	f := newPageFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Write([]byte(`{"token":"tok-1","user":{"_id":"u1","name":"Asha","email":"asha@example.com","role":"user"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Order not found"}`))
		}
	}))

	sid := f.login(t)
	rec := f.get(t, "/orders/nope", sid)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/orders?err="+url.QueryEscape("Order not found"), rec.Header().Get("Location"))
}
