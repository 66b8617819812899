// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockSettingsRepositoryInterface struct {
	mock.Mock
}

func (m *MockSettingsRepositoryInterface) Get(ctx context.Context) (*model.PrintSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrintSettings), args.Error(1)
}

func (m *MockSettingsRepositoryInterface) UpdateStore(ctx context.Context, store model.StoreInfo, updatedBy string) (*model.PrintSettings, error) {
	args := m.Called(ctx, store, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrintSettings), args.Error(1)
}

func (m *MockSettingsRepositoryInterface) UpdateOptions(ctx context.Context, opts model.PrintOptions, updatedBy string) (*model.PrintSettings, error) {
	args := m.Called(ctx, opts, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrintSettings), args.Error(1)
}
