//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSettings counts Get calls and returns a fixed document.
type countingSettings struct {
	gets     int
	settings *model.PrintSettings
	err      error
}

func (s *countingSettings) Get(context.Context) (*model.PrintSettings, error) {
	s.gets++
	return s.settings, s.err
}

func (s *countingSettings) Store(context.Context) (model.StoreInfo, error) {
	return s.settings.Store, nil
}

func (s *countingSettings) UpdateStore(_ context.Context, store model.StoreInfo, updatedBy string) (*model.PrintSettings, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.settings = &model.PrintSettings{Store: store, UpdatedBy: updatedBy}
	return s.settings, nil
}

func (s *countingSettings) UpdateOptions(_ context.Context, opts model.PrintOptions, updatedBy string) (*model.PrintSettings, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.settings = &model.PrintSettings{Options: opts, UpdatedBy: updatedBy}
	return s.settings, nil
}

func TestCachedSettingsService_Get(t *testing.T) {
	ctx := context.Background()
	inner := &countingSettings{settings: &model.PrintSettings{Store: model.StoreInfo{Name: "Loja"}}}
	svc := NewCachedSettingsService(inner, time.Minute)

	clock := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	for i := 0; i < 3; i++ {
		got, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Loja", got.Store.Name)
	}
	assert.Equal(t, 1, inner.gets)

	clock = clock.Add(2 * time.Minute)
	_, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.gets)
}

func TestCachedSettingsService_UpdateInvalidates(t *testing.T) {
	ctx := context.Background()
	inner := &countingSettings{settings: &model.PrintSettings{}}
	svc := NewCachedSettingsService(inner, time.Hour)

	_, err := svc.Get(ctx)
	require.NoError(t, err)

	_, err = svc.UpdateStore(ctx, model.StoreInfo{Name: "Loja Nova"}, "admin")
	require.NoError(t, err)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Loja Nova", got.Store.Name)
	assert.Equal(t, 2, inner.gets)

	_, err = svc.UpdateOptions(ctx, model.PrintOptions{LayoutGroup: "percentage", LayoutItem: "2x2"}, "admin")
	require.NoError(t, err)
	got, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2x2", got.Options.LayoutItem)
	assert.Equal(t, 3, inner.gets)
}

func TestCachedSettingsService_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	inner := &countingSettings{err: errors.New("mongo down")}
	svc := NewCachedSettingsService(inner, time.Hour)

	_, err := svc.Get(ctx)
	assert.Error(t, err)

	inner.err = nil
	inner.settings = &model.PrintSettings{Store: model.StoreInfo{Name: "Loja"}}
	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Loja", got.Store.Name)
	assert.Equal(t, 2, inner.gets)
}

func TestCachedSettingsService_Disabled(t *testing.T) {
	inner := &countingSettings{settings: &model.PrintSettings{}}
	svc := NewCachedSettingsService(inner, 0)

	_, _ = svc.Get(context.Background())
	_, _ = svc.Get(context.Background())
	assert.Equal(t, 2, inner.gets)
}
