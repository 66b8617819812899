// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepositoryInterface struct {
	mock.Mock
}

func (m *MockOrderRepositoryInterface) FindByIDs(ctx context.Context, ids []int64) (map[int64]model.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]model.Order), args.Error(1)
}

func (m *MockOrderRepositoryInterface) Upsert(ctx context.Context, o model.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
