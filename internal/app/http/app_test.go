package httpapp

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	httprouters "github.com/Waleedanwar01/project-insurance-1/internal/transport/http"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_UsesJSONNames(t *testing.T) {
	type request struct {
		IsHelpful *bool  `json:"is_helpful" validate:"required"`
		Internal  string `json:"-" validate:"required"`
		Plain     string `validate:"required"`
	}

	err := NewValidator().Validate(&request{})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	var fields []string
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	assert.Contains(t, fields, "is_helpful")
	assert.Contains(t, fields, "Plain")
}

func newTestServer() *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(log, Options{AdminSecret: "secret"}, httprouters.NewRouter(log, httprouters.Services{}))
	s.BuildRouters()
	return s
}

func TestServer_Routes(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name   string
		method string
		target string
		want   int
	}{
		{name: "health", method: http.MethodGet, target: "/health", want: http.StatusOK},
		{name: "health trailing slash", method: http.MethodGet, target: "/health/", want: http.StatusOK},
		{name: "admin without token", method: http.MethodPost, target: "/api/admin/nav", want: http.StatusUnauthorized},
		{name: "admin contacts without token", method: http.MethodGet, target: "/api/admin/contacts", want: http.StatusUnauthorized},
		{name: "statsviz", method: http.MethodGet, target: "/debug/statsviz/", want: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, target: "/api/nope", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestServer_CORSPreflight(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
