package service

import (
	"context"
	"errors"

	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/guttosm/print-orders/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the service runs without a database.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// SettingsService reads and updates the stored print settings.
type SettingsService interface {
	// Get returns the stored settings, nil when none exist or no database is configured.
	Get(ctx context.Context) (*model.PrintSettings, error)
	// Store returns the effective sender block: configured values overridden by stored ones.
	Store(ctx context.Context) (model.StoreInfo, error)
	UpdateStore(ctx context.Context, store model.StoreInfo, updatedBy string) (*model.PrintSettings, error)
	UpdateOptions(ctx context.Context, opts model.PrintOptions, updatedBy string) (*model.PrintSettings, error)
}

// SettingsServiceImpl implements SettingsService.
type SettingsServiceImpl struct {
	repo    repository.SettingsRepositoryInterface
	base    model.StoreInfo
	catalog *LayoutCatalog
}

// SettingsOption configures a SettingsServiceImpl.
type SettingsOption func(*SettingsServiceImpl)

// WithBaseStore sets the configured sender block stored values are merged onto.
func WithBaseStore(store model.StoreInfo) SettingsOption {
	return func(s *SettingsServiceImpl) {
		s.base = store
	}
}

// WithSettingsCatalog validates stored layout choices against catalog.
func WithSettingsCatalog(catalog *LayoutCatalog) SettingsOption {
	return func(s *SettingsServiceImpl) {
		s.catalog = catalog
	}
}

// NewSettingsService creates a settings service. repo may be nil.
func NewSettingsService(repo repository.SettingsRepositoryInterface, opts ...SettingsOption) SettingsService {
	s := &SettingsServiceImpl{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SettingsServiceImpl) Get(ctx context.Context) (*model.PrintSettings, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.Get(ctx)
}

func (s *SettingsServiceImpl) Store(ctx context.Context) (model.StoreInfo, error) {
	stored, err := s.Get(ctx)
	if err != nil {
		return s.base, err
	}
	if stored == nil {
		return s.base, nil
	}
	return s.base.Merge(stored.Store), nil
}

func (s *SettingsServiceImpl) UpdateStore(ctx context.Context, store model.StoreInfo, updatedBy string) (*model.PrintSettings, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.UpdateStore(ctx, store, updatedBy)
}

func (s *SettingsServiceImpl) UpdateOptions(ctx context.Context, opts model.PrintOptions, updatedBy string) (*model.PrintSettings, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := s.validateOptions(opts); err != nil {
		return nil, err
	}
	return s.repo.UpdateOptions(ctx, opts, updatedBy)
}

func (s *SettingsServiceImpl) validateOptions(opts model.PrintOptions) error {
	if opts.WeightUnit != "" {
		if _, err := model.ParseWeightUnit(opts.WeightUnit); err != nil {
			return err
		}
	}
	if (opts.LayoutGroup == "") != (opts.LayoutItem == "") {
		return model.NewConfigurationError("layout", opts.LayoutGroup+"/"+opts.LayoutItem, "layout group and item must be set together")
	}
	if opts.LayoutGroup != "" && s.catalog != nil {
		if _, err := s.catalog.Resolve(opts.LayoutGroup, opts.LayoutItem); err != nil {
			return err
		}
	}
	if opts.InvoiceGroupEmptyRows != nil && *opts.InvoiceGroupEmptyRows < 0 {
		return model.NewConfigurationError("invoice_group_empty_rows", "", "must not be negative")
	}
	if opts.BarcodeWidthFactor < 0 || opts.BarcodeHeight < 0 {
		return model.NewConfigurationError("barcode", "", "size must not be negative")
	}
	return nil
}
