//go:build !integration

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/print-orders/internal/circuitbreaker"
	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/guttosm/print-orders/internal/mocks"
	"github.com/guttosm/print-orders/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errMongo = errors.New("server selection timeout")

func tripBreaker(t *testing.T) *circuitbreaker.CircuitBreaker {
	t.Helper()
	cb := circuitbreaker.New(circuitbreaker.Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Hour, Name: t.Name()})
	_ = cb.Execute(context.Background(), func() error { return errMongo })
	require.True(t, cb.IsOpen())
	return cb
}

func TestOrderRepositoryWithCircuitBreaker(t *testing.T) {
	ctx := context.Background()

	t.Run("passes results through", func(t *testing.T) {
		repo := new(mocks.MockOrderRepositoryInterface)
		repo.On("FindByIDs", ctx, []int64{1, 2}).Return(map[int64]model.Order{1: {ID: 1}}, nil)

		w := repository.NewOrderRepositoryWithCircuitBreaker(repo, circuitbreaker.New(circuitbreaker.DefaultConfig()))
		got, err := w.FindByIDs(ctx, []int64{1, 2})

		require.NoError(t, err)
		assert.Len(t, got, 1)
		repo.AssertExpectations(t)
	})

	t.Run("open breaker surfaces error", func(t *testing.T) {
		repo := new(mocks.MockOrderRepositoryInterface)
		w := repository.NewOrderRepositoryWithCircuitBreaker(repo, tripBreaker(t))

		_, err := w.FindByIDs(ctx, []int64{1})
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
		assert.ErrorIs(t, w.Upsert(ctx, model.Order{ID: 1}), circuitbreaker.ErrCircuitOpen)
		repo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
	})
}

func TestSettingsRepositoryWithCircuitBreaker(t *testing.T) {
	ctx := context.Background()

	t.Run("open breaker reads as no settings", func(t *testing.T) {
		repo := new(mocks.MockSettingsRepositoryInterface)
		w := repository.NewSettingsRepositoryWithCircuitBreaker(repo, tripBreaker(t))

		got, err := w.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, got)

		_, err = w.UpdateStore(ctx, model.StoreInfo{Name: "Loja"}, "admin")
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	})

	t.Run("store errors propagate", func(t *testing.T) {
		repo := new(mocks.MockSettingsRepositoryInterface)
		repo.On("Get", ctx).Return(nil, errMongo)
		w := repository.NewSettingsRepositoryWithCircuitBreaker(repo, circuitbreaker.New(circuitbreaker.DefaultConfig()))

		_, err := w.Get(ctx)
		assert.ErrorIs(t, err, errMongo)
	})
}

func TestLogsRepositoryWithCircuitBreaker(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockLogsRepositoryInterface)
	w := repository.NewLogsRepositoryWithCircuitBreaker(repo, tripBreaker(t))

	assert.NoError(t, w.Create(ctx, &repository.LogEntryDocument{Message: "dropped"}))
	assert.NoError(t, w.CreateMany(ctx, []*repository.LogEntryDocument{{Message: "dropped"}}))

	_, err := w.Count(ctx, repository.LogQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLayoutRepositoryWithCircuitBreaker(t *testing.T) {
	ctx := context.Background()

	t.Run("lists stored groups", func(t *testing.T) {
		repo := new(mocks.MockLayoutRepositoryInterface)
		repo.On("List", ctx).Return([]model.LayoutGroup{{Slug: "pimaco", Name: "Pimaco"}}, nil)

		w := repository.NewLayoutRepositoryWithCircuitBreaker(repo, circuitbreaker.New(circuitbreaker.DefaultConfig()))
		got, err := w.List(ctx)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "pimaco", got[0].Slug)
	})

	t.Run("open breaker", func(t *testing.T) {
		repo := new(mocks.MockLayoutRepositoryInterface)
		w := repository.NewLayoutRepositoryWithCircuitBreaker(repo, tripBreaker(t))

		_, err := w.List(ctx)
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
		assert.ErrorIs(t, w.Upsert(ctx, repository.LayoutDocument{Group: "pimaco", Slug: "6180"}), circuitbreaker.ErrCircuitOpen)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}
