package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProviderRequests counts provider data requests by response status.
	// MLB requests may be answered from cache; NFL/NBA always hit upstream.
	ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "edge_api_provider_requests_total",
		Help: "Provider data requests by provider and response status.",
	}, []string{"provider", "status"})

	// CacheHits counts responses served from the edge cache.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "edge_api_cache_hits_total",
		Help: "Upstream responses served from cache.",
	})

	// CacheMisses counts cache lookups that required an upstream fetch.
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "edge_api_cache_misses_total",
		Help: "Cache lookups that fell through to upstream.",
	})

	// RateLimited counts rejected requests by sport scope.
	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "edge_api_rate_limited_total",
		Help: "Requests rejected by the per-client rate limit.",
	}, []string{"scope"})

	// RateLimitStoreErrors counts limiter store failures (requests fail open).
	RateLimitStoreErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "edge_api_rate_limit_store_errors_total",
		Help: "Rate limit counter store failures.",
	})
)
