package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/print-orders/internal/domain/model"
)

// settingsSnapshot is one cached read; settings may be nil when nothing is stored.
type settingsSnapshot struct {
	settings  *model.PrintSettings
	expiresAt time.Time
}

// CachedSettingsService serves Get from memory for ttl and drops the cached
// value on every successful update. Every print request reads the settings,
// updates are rare.
type CachedSettingsService struct {
	inner    SettingsService
	ttl      time.Duration
	snapshot atomic.Pointer[settingsSnapshot]
	mu       sync.Mutex
	now      func() time.Time
}

// NewCachedSettingsService wraps inner. A non-positive ttl disables caching.
func NewCachedSettingsService(inner SettingsService, ttl time.Duration) *CachedSettingsService {
	return &CachedSettingsService{inner: inner, ttl: ttl, now: time.Now}
}

func (s *CachedSettingsService) Get(ctx context.Context) (*model.PrintSettings, error) {
	if s.ttl <= 0 {
		return s.inner.Get(ctx)
	}
	if snap := s.snapshot.Load(); snap != nil && s.now().Before(snap.expiresAt) {
		return snap.settings, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have refreshed while we waited.
	if snap := s.snapshot.Load(); snap != nil && s.now().Before(snap.expiresAt) {
		return snap.settings, nil
	}
	settings, err := s.inner.Get(ctx)
	if err != nil {
		return nil, err
	}
	s.snapshot.Store(&settingsSnapshot{settings: settings, expiresAt: s.now().Add(s.ttl)})
	return settings, nil
}

func (s *CachedSettingsService) Store(ctx context.Context) (model.StoreInfo, error) {
	return s.inner.Store(ctx)
}

func (s *CachedSettingsService) UpdateStore(ctx context.Context, store model.StoreInfo, updatedBy string) (*model.PrintSettings, error) {
	settings, err := s.inner.UpdateStore(ctx, store, updatedBy)
	if err == nil {
		s.Invalidate()
	}
	return settings, err
}

func (s *CachedSettingsService) UpdateOptions(ctx context.Context, opts model.PrintOptions, updatedBy string) (*model.PrintSettings, error) {
	settings, err := s.inner.UpdateOptions(ctx, opts, updatedBy)
	if err == nil {
		s.Invalidate()
	}
	return settings, err
}

// Invalidate drops the cached settings.
func (s *CachedSettingsService) Invalidate() {
	s.snapshot.Store(nil)
}
