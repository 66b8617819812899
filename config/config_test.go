package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "percentage", cfg.Labels.LayoutGroup)
		assert.Equal(t, "2x2", cfg.Labels.LayoutItem)
		assert.Equal(t, "kg", cfg.Labels.WeightUnit)
		assert.Equal(t, 2, cfg.Labels.BarcodeWidthFactor)
		assert.Equal(t, 54, cfg.Labels.BarcodeHeight)
		assert.Equal(t, 5, cfg.Labels.InvoiceGroupEmptyRows)
		assert.False(t, cfg.Labels.ValidateAddresses)
		assert.Equal(t, "BR", cfg.Store.Country)
		assert.Equal(t, 2000, cfg.Cache.BarcodeSize)
		assert.Equal(t, 24*time.Hour, cfg.Cache.BarcodeTTL)
		assert.Equal(t, 30*time.Second, cfg.Cache.SettingsTTL)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, "print_orders", cfg.Database.DatabaseName)
		assert.False(t, cfg.Database.Enabled)
		assert.False(t, cfg.Redis.Enabled())
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("LOG_PRETTY", "true")
		_ = os.Setenv("LABEL_LAYOUT_GROUP", "pimaco")
		_ = os.Setenv("LABEL_LAYOUT_ITEM", "6082")
		_ = os.Setenv("WEIGHT_UNIT", "g")
		_ = os.Setenv("INVOICE_GROUP_ITEMS", "true")
		_ = os.Setenv("VALIDATE_ADDRESSES", "1")
		_ = os.Setenv("STORE_NAME", "Loja Exemplo")
		_ = os.Setenv("STORE_CPF_CNPJ", "12.345.678/0001-90")
		_ = os.Setenv("BARCODE_CACHE_SIZE", "500")
		_ = os.Setenv("BARCODE_CACHE_TTL", "10m")
		_ = os.Setenv("AUTH_ENABLED", "true")
		_ = os.Setenv("API_KEYS", "key1, key2,")
		_ = os.Setenv("MONGODB_ENABLED", "true")
		_ = os.Setenv("REDIS_URL", "redis://localhost:6379/0")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.True(t, cfg.Log.Pretty)
		assert.Equal(t, "pimaco", cfg.Labels.LayoutGroup)
		assert.Equal(t, "6082", cfg.Labels.LayoutItem)
		assert.Equal(t, "g", cfg.Labels.WeightUnit)
		assert.True(t, cfg.Labels.InvoiceGroupItems)
		assert.True(t, cfg.Labels.ValidateAddresses)
		assert.Equal(t, "Loja Exemplo", cfg.Store.Name)
		assert.Equal(t, "12.345.678/0001-90", cfg.Store.TaxID)
		assert.Equal(t, 500, cfg.Cache.BarcodeSize)
		assert.Equal(t, 10*time.Minute, cfg.Cache.BarcodeTTL)
		assert.True(t, cfg.Auth.Enabled)
		assert.Equal(t, map[string]bool{"key1": true, "key2": true}, cfg.Auth.APIKeys)
		assert.True(t, cfg.Database.Enabled)
		assert.True(t, cfg.Redis.Enabled())
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("AUTH_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("BARCODE_HEIGHT", "-10")
		_ = os.Setenv("INVOICE_GROUP_EMPTY_ROWS", "-1")
		_ = os.Setenv("BARCODE_CACHE_TTL", "0s")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 54, cfg.Labels.BarcodeHeight)
		assert.Equal(t, 5, cfg.Labels.InvoiceGroupEmptyRows)
		assert.Equal(t, 24*time.Hour, cfg.Cache.BarcodeTTL)
	})
}

func TestParseAPIKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]bool
	}{
		{"empty", "", nil},
		{"only separators", " , ,", nil},
		{"trims keys", " a ,b", map[string]bool{"a": true, "b": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseAPIKeys(tt.input))
		})
	}
}

func TestParseCORSOrigins(t *testing.T) {
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, parseCORSOrigins(""))
	assert.Equal(t,
		[]string{"http://localhost:3000", "http://127.0.0.1:3000", "https://admin.example.com"},
		parseCORSOrigins(" https://admin.example.com ,"))
}
