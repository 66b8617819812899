//go:build !integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/print-orders/config"
	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/guttosm/print-orders/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: 5 * time.Second,
		},
		Cache: config.CacheConfig{
			BarcodeSize:   100,
			BarcodeTTL:    time.Hour,
			BarcodeShards: 2,
			SettingsTTL:   time.Second,
		},
		Store: config.StoreConfig{Name: "Loja Exemplo", City: "São Paulo", State: "SP", Postcode: "01001-000"},
	}
}

func serve(app *Application, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name     string
		cfg      func() config.Config
		validate func(*testing.T, *Application)
	}{
		{
			name: "prints without a database",
			cfg:  testConfig,
			validate: func(t *testing.T, app *Application) {
				w := serve(app, "/api/print?oid=1042")
				require.Equal(t, http.StatusOK, w.Code)
				assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
				assert.Contains(t, w.Body.String(), `data-order="1042"`)
			},
		},
		{
			name: "settings and logs routes are not registered without a database",
			cfg:  testConfig,
			validate: func(t *testing.T, app *Application) {
				assert.Equal(t, http.StatusNotFound, serve(app, "/api/settings/store").Code)
				assert.Equal(t, http.StatusNotFound, serve(app, "/api/logs").Code)
				assert.Equal(t, http.StatusOK, serve(app, "/api/layouts").Code)
			},
		},
		{
			name: "auth enabled rejects requests without a key",
			cfg: func() config.Config {
				cfg := testConfig()
				cfg.Auth = config.AuthConfig{Enabled: true, APIKeys: map[string]bool{"test-key": true}}
				return cfg
			},
			validate: func(t *testing.T, app *Application) {
				assert.Equal(t, http.StatusUnauthorized, serve(app, "/api/print?oid=1").Code)
				assert.Equal(t, http.StatusOK, serve(app, "/api/print?oid=1&api_key=test-key").Code)
				assert.Equal(t, http.StatusOK, serve(app, "/healthz").Code)
			},
		},
		{
			name: "cache disabled",
			cfg: func() config.Config {
				cfg := testConfig()
				cfg.Cache.BarcodeSize = 0
				return cfg
			},
			validate: func(t *testing.T, app *Application) {
				assert.Nil(t, app.services.BarcodeCache)
				assert.Equal(t, http.StatusOK, serve(app, "/api/print/preview?oid=1").Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := InitializeApp(tt.cfg())
			require.NotNil(t, app)
			require.NotNil(t, app.Router)
			t.Cleanup(func() { app.Close(context.Background()) })

			if tt.validate != nil {
				tt.validate(t, app)
			}
		})
	}
}

func TestInitializeAppWithHooks(t *testing.T) {
	hooks := service.Hooks{
		Layouts: func() []model.LayoutGroup {
			return []model.LayoutGroup{{
				Slug: "stickers",
				Name: "Adesivos",
				Items: map[string]model.LayoutDefinition{
					"1x1": {Paper: model.PaperA4.Name, SlotsPerPage: 1, PageMargins: "0 0 0 0", CellWidth: "100%", CellHeight: "100%", CellMargin: "0 0 0 0"},
				},
			}}
		},
		Config: func(cfg service.RenderConfig) service.RenderConfig {
			cfg.LayoutGroup = "stickers"
			cfg.LayoutItem = "1x1"
			return cfg
		},
	}

	app := InitializeAppWithHooks(testConfig(), hooks)
	t.Cleanup(func() { app.Close(context.Background()) })

	assert.False(t, app.services.Catalog.Register("late", "", "1x1", model.LayoutDefinition{}), "catalog must be frozen")

	w := serve(app, "/api/print/preview?oid=1,2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"layout":"stickers/1x1"`)

	w = serve(app, "/api/layouts")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"stickers"`)
}

func TestApplication_Close(t *testing.T) {
	app := InitializeApp(testConfig())

	assert.NotPanics(t, func() {
		app.Close(context.Background())
	})
	assert.NotPanics(t, func() {
		(&Application{}).Close(context.Background())
	})
}
