package repository

import (
	"context"

	"github.com/guttosm/print-orders/internal/domain/model"
)

// OrderRepositoryInterface reads orders for the print pipeline.
type OrderRepositoryInterface interface {
	FindByIDs(ctx context.Context, ids []int64) (map[int64]model.Order, error)
	Upsert(ctx context.Context, o model.Order) error
}

// SettingsRepositoryInterface stores the print settings document.
type SettingsRepositoryInterface interface {
	Get(ctx context.Context) (*model.PrintSettings, error)
	UpdateStore(ctx context.Context, store model.StoreInfo, updatedBy string) (*model.PrintSettings, error)
	UpdateOptions(ctx context.Context, opts model.PrintOptions, updatedBy string) (*model.PrintSettings, error)
}

// LayoutRepositoryInterface stores extra label layouts.
type LayoutRepositoryInterface interface {
	List(ctx context.Context) ([]model.LayoutGroup, error)
	Upsert(ctx context.Context, doc LayoutDocument) error
}

// LogsRepositoryInterface writes and queries log entries.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
