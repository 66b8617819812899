//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("collections are bound", func(t *testing.T) {
		assert.Equal(t, CollectionOrders, db.Orders.Name())
		assert.Equal(t, CollectionSettings, db.Settings.Name())
		assert.Equal(t, CollectionLayouts, db.Layouts.Name())
		assert.Equal(t, CollectionLogs, db.Logs.Name())
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("set logs TTL twice", func(t *testing.T) {
		require.NoError(t, db.SetLogsTTL(ctx, 30))
		assert.NoError(t, db.SetLogsTTL(ctx, 60))
	})

	t.Run("order id index is unique", func(t *testing.T) {
		_, err := db.Orders.InsertOne(ctx, OrderDocument{OrderID: 77})
		require.NoError(t, err)
		_, err = db.Orders.InsertOne(ctx, OrderDocument{OrderID: 77})
		assert.Error(t, err)
	})
}
