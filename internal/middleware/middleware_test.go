package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Waleedanwar01/project-insurance-1/internal/lib/jwt"
	"github.com/Waleedanwar01/project-insurance-1/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheControl(t *testing.T) {
	e := echo.New()
	e.Use(CacheControl(PublicCacheControl))
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/missing", func(c echo.Context) error { return c.String(http.StatusNotFound, "nope") })
	e.POST("/ok", func(c echo.Context) error { return c.String(http.StatusCreated, "ok") })

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/ok", PublicCacheControl},
		{http.MethodGet, "/missing", ""},
		{http.MethodPost, "/ok", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Header().Get("Cache-Control"))
		})
	}
}

func TestAdminOnly(t *testing.T) {
	const secret = "test-secret"

	e := echo.New()
	e.GET("/admin", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get(AdminSubjectKey).(string))
	}, AdminOnly(slog.Default(), secret))

	valid, err := jwt.NewAdminToken("ops", secret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "no header", status: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer garbage", status: http.StatusForbidden},
		{name: "valid", header: "Bearer " + valid, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestPrometheusMetrics(t *testing.T) {
	e := echo.New()
	e.Use(PrometheusMetrics)
	e.GET("/api/faqs/:slug", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/metrics", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	serve := func(path string) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	routed := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/faqs/:slug", "200")
	scrape := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/metrics", "200")
	unmatched := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")

	beforeRouted := testutil.ToFloat64(routed)
	beforeUnmatched := testutil.ToFloat64(unmatched)

	serve("/api/faqs/one")
	serve("/api/faqs/two")
	serve("/metrics")
	serve("/nowhere")

	assert.Equal(t, beforeRouted+2, testutil.ToFloat64(routed))
	assert.Zero(t, testutil.ToFloat64(scrape))
	assert.Equal(t, beforeUnmatched+1, testutil.ToFloat64(unmatched))
}
