// Package app provides service initialization.
package app

import (
	"context"
	"time"

	"github.com/guttosm/print-orders/config"
	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/guttosm/print-orders/internal/service"
	"github.com/guttosm/print-orders/internal/service/cache"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds the database-independent print components.
type ServiceComponents struct {
	Base         service.RenderConfig
	Catalog      *service.LayoutCatalog
	Barcodes     *service.BarcodeGenerator
	BarcodeCache cache.Cache
	Redis        *redis.Client
}

// InitializeServices builds the base render configuration, the layout catalog
// with the hook layouts registered, and the barcode generator with its cache.
// The catalog is left open so stored layouts can still be added.
func InitializeServices(cfg config.Config, hooks service.Hooks) *ServiceComponents {
	catalog := service.NewLayoutCatalog()
	if extra := hooks.ExtraLayouts(); len(extra) > 0 {
		added := catalog.RegisterGroups(extra)
		log.Info().Int("layouts", added).Msg("Registered extension layouts")
	}

	base := baseRenderConfig(cfg)

	barcodeCache, client := initializeBarcodeCache(cfg.Cache, cfg.Redis)
	barcodes := service.NewBarcodeGenerator(
		service.WithBarcodeSize(base.BarcodeWidthFactor, base.BarcodeHeight),
		service.WithBarcodeCache(barcodeCache),
	)

	return &ServiceComponents{
		Base:         base,
		Catalog:      catalog,
		Barcodes:     barcodes,
		BarcodeCache: barcodeCache,
		Redis:        client,
	}
}

// baseRenderConfig maps the label and store configuration onto the built-in defaults.
func baseRenderConfig(cfg config.Config) service.RenderConfig {
	base := service.DefaultRenderConfig()

	if cfg.Labels.LayoutGroup != "" && cfg.Labels.LayoutItem != "" {
		base.LayoutGroup = cfg.Labels.LayoutGroup
		base.LayoutItem = cfg.Labels.LayoutItem
	}
	if cfg.Labels.WeightUnit != "" {
		unit, err := model.ParseWeightUnit(cfg.Labels.WeightUnit)
		if err != nil {
			log.Warn().Err(err).Str("weight_unit", cfg.Labels.WeightUnit).Msg("Invalid weight unit, using default")
		} else {
			base.WeightUnit = unit
		}
	}
	if cfg.Labels.BarcodeWidthFactor > 0 {
		base.BarcodeWidthFactor = cfg.Labels.BarcodeWidthFactor
	}
	if cfg.Labels.BarcodeHeight > 0 {
		base.BarcodeHeight = cfg.Labels.BarcodeHeight
	}
	if cfg.Labels.InvoiceGroupName != "" {
		base.InvoiceGroupName = cfg.Labels.InvoiceGroupName
	}
	base.InvoiceGroupItems = cfg.Labels.InvoiceGroupItems
	base.InvoiceGroupEmptyRows = cfg.Labels.InvoiceGroupEmptyRows
	base.ValidateAddresses = cfg.Labels.ValidateAddresses

	base.Store = model.StoreInfo{
		Name:     cfg.Store.Name,
		Address:  cfg.Store.Address,
		Address2: cfg.Store.Address2,
		City:     cfg.Store.City,
		State:    cfg.Store.State,
		Country:  cfg.Store.Country,
		Postcode: cfg.Store.Postcode,
		TaxID:    cfg.Store.TaxID,
		LogoURL:  cfg.Store.LogoURL,
	}
	return base
}

// initializeBarcodeCache returns a Redis cache when Redis is configured and
// reachable, and an in-process sharded cache otherwise.
func initializeBarcodeCache(cfg config.CacheConfig, redisCfg config.RedisConfig) (cache.Cache, *redis.Client) {
	if redisCfg.Enabled() {
		client, err := newRedisClient(redisCfg)
		if err == nil {
			log.Info().Msg("Using Redis barcode cache")
			return service.NewRedisCache(client, cfg.BarcodeTTL, service.WithRedisOpTimeout(redisCfg.OpTimeout)), client
		}
		log.Warn().Err(err).Msg("Redis unavailable - falling back to in-process barcode cache")
	}

	if cfg.BarcodeSize <= 0 {
		return nil, nil
	}
	return service.NewShardedCache(cfg.BarcodeSize, cfg.BarcodeTTL, cfg.BarcodeShards), nil
}

func newRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
