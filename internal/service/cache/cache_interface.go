// Package cache defines the store used by the barcode generator.
package cache

// Cache stores rendered barcode images by key. Implementations are safe for
// concurrent use and report failures as misses.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Stop()
}

// Usage is the fill level of a bounded cache.
type Usage struct {
	Entries  int
	Capacity int
}

// Bounded is a Cache with a fixed entry limit.
type Bounded interface {
	Cache
	Usage() Usage
}
