package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-orders/internal/domain/dto"
	"github.com/guttosm/print-orders/internal/i18n"
)

const limiterShards = 16

// quota is the request allowance left to one print client in its window.
type quota struct {
	left    int
	resetAt time.Time
}

type quotaShard struct {
	mu     sync.Mutex
	quotas map[string]*quota
}

// ClientLimiter caps print API requests per client. Clients are keyed by the
// API key APIKeyAuth resolved, or by IP when the route is unauthenticated.
type ClientLimiter struct {
	shards []*quotaShard
	rate   int
	window time.Duration
	now    func() time.Time
	stopCh chan struct{}
	once   sync.Once
}

// NewClientLimiter allows rate requests per client every window and starts
// the background sweep of idle clients.
func NewClientLimiter(rate int, window time.Duration) *ClientLimiter {
	l := &ClientLimiter{
		shards: make([]*quotaShard, limiterShards),
		rate:   rate,
		window: window,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	for i := range l.shards {
		l.shards[i] = &quotaShard{quotas: make(map[string]*quota)}
	}

	go l.sweepLoop()
	return l
}

func (l *ClientLimiter) shard(client string) *quotaShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(client))
	return l.shards[h.Sum32()%uint32(len(l.shards))]
}

// take spends one request from the client's quota.
func (l *ClientLimiter) take(client string) (allowed bool, remaining int) {
	s := l.shard(client)
	now := l.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quotas[client]
	if !ok || !now.Before(q.resetAt) {
		s.quotas[client] = &quota{left: l.rate - 1, resetAt: now.Add(l.window)}
		return true, l.rate - 1
	}
	if q.left <= 0 {
		return false, 0
	}
	q.left--
	return true, q.left
}

// Middleware rejects a client over its quota with 429 and a Retry-After of
// one window.
func (l *ClientLimiter) Middleware() gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(math.Ceil(l.window.Seconds())))

	return func(c *gin.Context) {
		client := GetAPIClient(c)
		if client == "" {
			client = "ip:" + c.ClientIP()
		}

		allowed, remaining := l.take(client)
		c.Header("X-RateLimit-Limit", strconv.Itoa(l.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", retryAfter)
			errorResp := dto.NewError(dto.ErrCodeRateLimit, i18n.T(i18n.ErrKeyRateLimitExceeded)).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResp)
			return
		}

		c.Next()
	}
}

func (l *ClientLimiter) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-l.stopCh:
			return
		}
	}
}

// sweep forgets clients whose window ended at least one window ago.
func (l *ClientLimiter) sweep() {
	cutoff := l.now().Add(-l.window)
	for _, s := range l.shards {
		s.mu.Lock()
		for client, q := range s.quotas {
			if q.resetAt.Before(cutoff) {
				delete(s.quotas, client)
			}
		}
		s.mu.Unlock()
	}
}

// Stop ends the sweep. It is safe to call more than once.
func (l *ClientLimiter) Stop() {
	l.once.Do(func() { close(l.stopCh) })
}
