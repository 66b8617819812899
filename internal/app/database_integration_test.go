//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/print-orders/config"
	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/guttosm/print-orders/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()

	uri := getSharedContainerURI()
	dbConfig := func(name string) config.DatabaseConfig {
		return config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   name,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 2,
			CircuitBreakerSuccessThreshold: 1,
			CircuitBreakerTimeout:          100 * time.Millisecond,
		}
	}

	t.Run("initialize with enabled database", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(dbConfig(sanitizeDBNameForApp(t.Name())), service.NewLayoutCatalog())
		require.NotNil(t, components)
		t.Cleanup(func() { _ = components.DB.Close(context.Background()) })

		assert.NotNil(t, components.OrdersRepo)
		assert.NotNil(t, components.SettingsRepo)
		assert.NotNil(t, components.LoggingService)

		assert.Equal(t, "closed", components.OrdersCircuitBreaker.GetStats().State)
		assert.Equal(t, "closed", components.SettingsCircuitBreaker.GetStats().State)
		assert.True(t, components.LogsCircuitBreaker.GetStats().IsHealthy)
	})

	t.Run("settings round trip through the guarded repository", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		components := InitializeDatabase(dbConfig(sanitizeDBNameForApp(t.Name())), service.NewLayoutCatalog())
		require.NotNil(t, components)
		t.Cleanup(func() { _ = components.DB.Close(context.Background()) })

		stored, err := components.SettingsRepo.Get(ctx)
		require.NoError(t, err)
		assert.Nil(t, stored)

		_, err = components.SettingsRepo.UpdateStore(ctx, model.StoreInfo{Name: "Loja", Postcode: "01001-000"}, "admin")
		require.NoError(t, err)

		stored, err = components.SettingsRepo.Get(ctx)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Loja", stored.Store.Name)
		assert.Equal(t, "admin", stored.UpdatedBy)
	})
}
