package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/httpx"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/metrics"
)

const (
	window = time.Minute

	// Counter TTL outlives the window to cover clock skew across the
	// minute boundary.
	counterTTL = 90 * time.Second
)

// Store is the counter backend. Incr atomically increments key, applies
// ttl, and returns the counter value after the increment.
type Store interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// Limiter enforces a fixed-window per-client request quota.
type Limiter struct {
	store  Store
	max    int64
	logger *zap.Logger
	now    func() time.Time
}

// New creates a limiter allowing maxPerMinute requests per key per
// wall-clock minute.
func New(store Store, maxPerMinute int, logger *zap.Logger) *Limiter {
	if maxPerMinute <= 0 {
		maxPerMinute = 60
	}
	return &Limiter{
		store:  store,
		max:    int64(maxPerMinute),
		logger: logger,
		now:    time.Now,
	}
}

// Check counts one request against key's current window. A non-nil return
// means the caller must reject the request with that error. When the
// counter store is unreachable the limiter fails open: the request
// proceeds and the failure is logged and counted.
func (l *Limiter) Check(ctx context.Context, key string) *httpx.APIError {
	bucket := l.now().UnixMilli() / window.Milliseconds()
	compositeKey := fmt.Sprintf("%s:%d", key, bucket)

	count, err := l.store.Incr(ctx, compositeKey, counterTTL)
	if err != nil {
		metrics.RateLimitStoreErrors.Inc()
		l.logger.Warn("rate limit store unavailable, allowing request",
			zap.String("key", key),
			zap.Error(err),
		)
		return nil
	}

	if count > l.max {
		metrics.RateLimited.WithLabelValues(scope(key)).Inc()
		return httpx.RateLimited()
	}
	return nil
}

// scope reduces a limiter key like "mlb:203.0.113.9" to its sport prefix
// for metric labels, keeping client addresses out of label values.
func scope(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
