// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/guttosm/print-orders/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockLayoutRepositoryInterface struct {
	mock.Mock
}

func (m *MockLayoutRepositoryInterface) List(ctx context.Context) ([]model.LayoutGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LayoutGroup), args.Error(1)
}

func (m *MockLayoutRepositoryInterface) Upsert(ctx context.Context, doc repository.LayoutDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}
