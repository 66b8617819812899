package service

import (
	"container/list"
	"hash/fnv"
	"sync"
	"time"

	"github.com/guttosm/print-orders/internal/metrics"
	"github.com/guttosm/print-orders/internal/service/cache"
)

const (
	defaultBarcodeShards = 16
	barcodeSweepInterval = time.Minute
)

// ShardedCache keeps rendered barcode images in memory. Keys are spread by
// hash over a power-of-two number of LRU shards; every entry lives for ttl.
type ShardedCache struct {
	shards   []*lruShard
	mask     uint32
	stop     chan struct{}
	stopOnce sync.Once
}

type lruShard struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	order    *list.List // front is the most recently used image
	entries  map[string]*list.Element
}

type barcodeEntry struct {
	key       string
	png       []byte
	expiresAt time.Time
}

// NewShardedCache creates a cache holding about capacity images for ttl each.
// numShards is rounded up to a power of two; zero or less selects 16.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = defaultBarcodeShards
	}
	n := 1
	for n < numShards {
		n <<= 1
	}
	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	c := &ShardedCache{
		shards: make([]*lruShard, n),
		mask:   uint32(n - 1),
		stop:   make(chan struct{}),
	}
	for i := range c.shards {
		c.shards[i] = &lruShard{
			capacity: perShard,
			ttl:      ttl,
			order:    list.New(),
			entries:  make(map[string]*list.Element, perShard),
		}
	}
	go c.sweep(barcodeSweepInterval)
	return c
}

func (c *ShardedCache) shard(key string) *lruShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return c.shards[h.Sum32()&c.mask]
}

// Get returns the image stored under key unless it has expired.
func (c *ShardedCache) Get(key string) ([]byte, bool) {
	png, result := c.shard(key).get(key, time.Now())
	metrics.RecordCacheOperation("get", result)
	return png, result == "hit"
}

// Set stores png under key, evicting the shard's least recently used image when full.
func (c *ShardedCache) Set(key string, png []byte) {
	if c.shard(key).set(key, png, time.Now()) {
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

// Usage sums entries and capacity over all shards.
func (c *ShardedCache) Usage() cache.Usage {
	var u cache.Usage
	for _, s := range c.shards {
		s.mu.Lock()
		u.Entries += s.order.Len()
		u.Capacity += s.capacity
		s.mu.Unlock()
	}
	return u
}

// Stop ends the expiry sweep. It is safe to call more than once.
func (c *ShardedCache) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *ShardedCache) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			for _, s := range c.shards {
				s.expire(now)
			}
		case <-c.stop:
			return
		}
	}
}

// get reports "hit", "miss" or "expired"; an expired entry is dropped.
func (s *lruShard) get(key string, now time.Time) ([]byte, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.entries[key]
	if !ok {
		return nil, "miss"
	}
	e := el.Value.(*barcodeEntry)
	if now.After(e.expiresAt) {
		s.remove(el)
		return nil, "expired"
	}
	s.order.MoveToFront(el)
	return e.png, "hit"
}

// set reports whether an image was evicted to make room.
func (s *lruShard) set(key string, png []byte, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt := now.Add(s.ttl)
	if el, ok := s.entries[key]; ok {
		e := el.Value.(*barcodeEntry)
		e.png, e.expiresAt = png, expiresAt
		s.order.MoveToFront(el)
		return false
	}

	s.entries[key] = s.order.PushFront(&barcodeEntry{key: key, png: png, expiresAt: expiresAt})
	if s.order.Len() <= s.capacity {
		return false
	}
	s.remove(s.order.Back())
	return true
}

func (s *lruShard) expire(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for el := s.order.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*barcodeEntry).expiresAt) {
			s.remove(el)
		}
		el = prev
	}
}

func (s *lruShard) remove(el *list.Element) {
	s.order.Remove(el)
	delete(s.entries, el.Value.(*barcodeEntry).key)
}
