package repository

import (
	"context"
	"errors"

	"github.com/guttosm/print-orders/internal/circuitbreaker"
	"github.com/guttosm/print-orders/internal/domain/model"
)

// OrderRepositoryWithCircuitBreaker guards an OrderRepositoryInterface.
// An open breaker surfaces as circuitbreaker.ErrCircuitOpen, which the print
// pipeline turns into per-order lookup failures.
type OrderRepositoryWithCircuitBreaker struct {
	repo           OrderRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOrderRepositoryWithCircuitBreaker wraps repo with cb.
func NewOrderRepositoryWithCircuitBreaker(repo OrderRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *OrderRepositoryWithCircuitBreaker {
	return &OrderRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// FindByIDs implements OrderRepositoryInterface.
func (r *OrderRepositoryWithCircuitBreaker) FindByIDs(ctx context.Context, ids []int64) (map[int64]model.Order, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (map[int64]model.Order, error) {
		return r.repo.FindByIDs(ctx, ids)
	})
}

// Upsert implements OrderRepositoryInterface.
func (r *OrderRepositoryWithCircuitBreaker) Upsert(ctx context.Context, o model.Order) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Upsert(ctx, o)
	})
}

// GetCircuitBreaker returns the breaker for health reporting.
func (r *OrderRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// SettingsRepositoryWithCircuitBreaker guards a SettingsRepositoryInterface.
type SettingsRepositoryWithCircuitBreaker struct {
	repo           SettingsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewSettingsRepositoryWithCircuitBreaker wraps repo with cb.
func NewSettingsRepositoryWithCircuitBreaker(repo SettingsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *SettingsRepositoryWithCircuitBreaker {
	return &SettingsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Get returns nil settings while the breaker is open so rendering falls back
// to the configured defaults.
func (r *SettingsRepositoryWithCircuitBreaker) Get(ctx context.Context) (*model.PrintSettings, error) {
	s, err := circuitbreaker.Call(ctx, r.circuitBreaker, func() (*model.PrintSettings, error) {
		return r.repo.Get(ctx)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, nil
	}
	return s, err
}

// UpdateStore implements SettingsRepositoryInterface.
func (r *SettingsRepositoryWithCircuitBreaker) UpdateStore(ctx context.Context, store model.StoreInfo, updatedBy string) (*model.PrintSettings, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (*model.PrintSettings, error) {
		return r.repo.UpdateStore(ctx, store, updatedBy)
	})
}

// UpdateOptions implements SettingsRepositoryInterface.
func (r *SettingsRepositoryWithCircuitBreaker) UpdateOptions(ctx context.Context, opts model.PrintOptions, updatedBy string) (*model.PrintSettings, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (*model.PrintSettings, error) {
		return r.repo.UpdateOptions(ctx, opts, updatedBy)
	})
}

// GetCircuitBreaker returns the breaker for health reporting.
func (r *SettingsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LayoutRepositoryWithCircuitBreaker guards a LayoutRepositoryInterface.
type LayoutRepositoryWithCircuitBreaker struct {
	repo           LayoutRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLayoutRepositoryWithCircuitBreaker wraps repo with cb.
func NewLayoutRepositoryWithCircuitBreaker(repo LayoutRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LayoutRepositoryWithCircuitBreaker {
	return &LayoutRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// List implements LayoutRepositoryInterface.
func (r *LayoutRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.LayoutGroup, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]model.LayoutGroup, error) {
		return r.repo.List(ctx)
	})
}

// Upsert implements LayoutRepositoryInterface.
func (r *LayoutRepositoryWithCircuitBreaker) Upsert(ctx context.Context, doc LayoutDocument) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Upsert(ctx, doc)
	})
}

// LogsRepositoryWithCircuitBreaker guards a LogsRepositoryInterface.
// Writes are dropped silently while the breaker is open.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps repo with cb.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create implements LogsRepositoryInterface.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany implements LogsRepositoryInterface.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query implements LogsRepositoryInterface.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]*LogEntryDocument, error) {
		return r.repo.Query(ctx, opts)
	})
}

// Count implements LogsRepositoryInterface.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

// GetCircuitBreaker returns the breaker for health reporting.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
