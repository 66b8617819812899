package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guttosm/print-orders/internal/middleware"
	"github.com/guttosm/print-orders/internal/mocks"
	"github.com/guttosm/print-orders/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRouter_Routes(t *testing.T) {
	settingsRepo := new(mocks.MockSettingsRepositoryInterface)
	settingsRepo.On("Get", mock.Anything).Return(nil, nil)
	logsRepo := new(mocks.MockLogsRepositoryInterface)
	logsRepo.On("Query", mock.Anything, mock.Anything).Return(nil, nil)
	logsRepo.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)

	catalog := service.NewLayoutCatalog()
	catalog.Freeze()

	full := DefaultRouterConfig()
	full.Catalog = catalog
	full.Settings = service.NewSettingsService(settingsRepo)
	full.Logs = service.NewLoggingService(logsRepo)

	minimal := DefaultRouterConfig()

	handler := NewHandler(&stubPrinter{res: labelsResult(service.FormatHTML)})

	tests := []struct {
		name           string
		cfg            RouterConfig
		path           string
		expectedStatus int
	}{
		{name: "print", cfg: full, path: "/api/print?oid=1", expectedStatus: http.StatusOK},
		{name: "preview", cfg: full, path: "/api/print/preview?oid=1", expectedStatus: http.StatusOK},
		{name: "layouts", cfg: full, path: "/api/layouts", expectedStatus: http.StatusOK},
		{name: "store settings", cfg: full, path: "/api/settings/store", expectedStatus: http.StatusOK},
		{name: "print options", cfg: full, path: "/api/settings/options", expectedStatus: http.StatusOK},
		{name: "logs", cfg: full, path: "/api/logs", expectedStatus: http.StatusOK},
		{name: "liveness", cfg: full, path: "/healthz", expectedStatus: http.StatusOK},
		{name: "readiness", cfg: full, path: "/readyz", expectedStatus: http.StatusOK},
		{name: "metrics", cfg: full, path: "/metrics", expectedStatus: http.StatusOK},
		{name: "printing without database", cfg: minimal, path: "/api/print?oid=1", expectedStatus: http.StatusOK},
		{name: "no settings routes without service", cfg: minimal, path: "/api/settings/store", expectedStatus: http.StatusNotFound},
		{name: "no log routes without service", cfg: minimal, path: "/api/logs", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(handler, NewHealthHandler(), tt.cfg)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestNewRouter_APIKeyAuth(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.EnableAuth = true
	cfg.APIKeys = map[string]bool{"secret-key": true}
	router := NewRouter(NewHandler(&stubPrinter{res: labelsResult(service.FormatHTML)}), NewHealthHandler(), cfg)

	tests := []struct {
		name           string
		path           string
		header         string
		expectedStatus int
	}{
		{name: "missing key", path: "/api/print", expectedStatus: http.StatusUnauthorized},
		{name: "wrong key", path: "/api/print", header: "nope", expectedStatus: http.StatusUnauthorized},
		{name: "header key", path: "/api/print", header: "secret-key", expectedStatus: http.StatusOK},
		{name: "query key for browser links", path: "/api/print?api_key=secret-key", expectedStatus: http.StatusOK},
		{name: "health checks stay open", path: "/healthz", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(middleware.APIKeyHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestNewRouter_RateLimit(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 2
	cfg.RateWindow = time.Minute
	router := NewRouter(NewHandler(&stubPrinter{res: labelsResult(service.FormatHTML)}), NewHealthHandler(), cfg)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/print", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewRouter_PersistsFailedRequests(t *testing.T) {
	entries := &recordingEntries{}
	cfg := DefaultRouterConfig()
	cfg.Entries = entries
	router := NewRouter(NewHandler(&stubPrinter{}), NewHealthHandler(), cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/print?offset=x", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)

	logged := entries.all()
	require.Len(t, logged, 1)
	assert.Equal(t, http.StatusBadRequest, logged[0].StatusCode)
	assert.Equal(t, "/api/print", logged[0].Path)
	assert.NotEmpty(t, logged[0].Error)
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.CORSOrigins = []string{"https://loja.example.com"}
	router := NewRouter(NewHandler(&stubPrinter{}), NewHealthHandler(), cfg)

	req := httptest.NewRequest(http.MethodOptions, "/api/print", nil)
	req.Header.Set("Origin", "https://loja.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://loja.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

var _ service.PrintLogger = (*recordingEntries)(nil)
