package cache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/metrics"
)

// Entry is a stored upstream response.
type Entry struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// Store is the cached-response backend. Get returns (nil, nil) on a miss.
type Store interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key string, entry *Entry, ttl time.Duration) error
}

// Client performs upstream GETs through a TTL-bounded response cache.
// Responses are keyed by the absolute URL exactly as the caller built it.
type Client struct {
	store      Store
	httpClient *http.Client
	ttl        time.Duration
	logger     *zap.Logger
}

// New creates a caching client. A nil httpClient gets a 15s-timeout default.
func New(store Store, httpClient *http.Client, ttl time.Duration, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if ttl <= 0 {
		ttl = 90 * time.Second
	}
	return &Client{
		store:      store,
		httpClient: httpClient,
		ttl:        ttl,
		logger:     logger,
	}
}

// Get serves url from the cache when a fresh copy exists, fetching and
// storing it otherwise. Non-2xx upstream responses are returned to the
// caller but never cached, so errors are retried on the next request.
// Cache store failures degrade to a plain fetch.
func (c *Client) Get(ctx context.Context, url string) (*Entry, error) {
	cached, err := c.store.Get(ctx, url)
	if err != nil {
		c.logger.Warn("cache read failed", zap.String("url", url), zap.Error(err))
	} else if cached != nil {
		metrics.CacheHits.Inc()
		return cached, nil
	}
	metrics.CacheMisses.Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building upstream request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching upstream: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading upstream body: %w", err)
	}

	entry := &Entry{
		Status: resp.StatusCode,
		Header: resp.Header.Clone(),
		Body:   body,
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entry, nil
	}

	entry.Header.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(c.ttl.Seconds())))
	if err := c.store.Set(ctx, url, entry, c.ttl); err != nil {
		c.logger.Warn("cache write failed", zap.String("url", url), zap.Error(err))
	}
	return entry, nil
}
