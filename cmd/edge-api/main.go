package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/cache"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/config"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/logger"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/metrics"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/providers/mlb"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/providers/sportsdataio"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/providers/track"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/ratelimit"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New("edge-api", cfg.Env)
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	// Connect to Redis (rate-limit counters + response cache)
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal("invalid REDIS_URL", zap.Error(err))
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		cancel()
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}
	cancel()
	log.Info("connected to Redis", zap.String("url", cfg.RedisURL))

	// Wire the pipeline: limiter and cache on Redis, providers on top
	limiter := ratelimit.New(ratelimit.NewRedisStore(redisClient), cfg.RateLimitPerMinute, log)
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cachedClient := cache.New(cache.NewRedisStore(redisClient), nil, cacheTTL, log)

	handlers := server.Handlers{
		MLB: mlb.NewHandler(mlb.NewClient("", cachedClient), limiter, log),
		NFL: sportsdataio.NewNFLHandler(sportsdataio.NFLConfig{
			SportsDataKey: cfg.SportsDataNFLKey,
			SportradarKey: cfg.SportradarNFLKey,
			Limiter:       limiter,
			Logger:        log,
		}),
		NBA: sportsdataio.NewNBAHandler(sportsdataio.NBAConfig{
			SportsDataKey: cfg.SportsDataNBAKey,
			SportradarKey: cfg.SportradarNBAKey,
			Limiter:       limiter,
			Logger:        log,
		}),
		Track: track.NewHandler(cfg.TrackProviderKey, limiter),
	}

	router := server.NewRouter(cfg, log, handlers)

	// Metrics and health on a dedicated port
	metricsSrv := metrics.StartServer(cfg.MetricsPort, func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})

	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("edge API listening",
			zap.String("addr", cfg.Port),
			zap.String("metrics_port", cfg.MetricsPort),
			zap.Int("rate_limit_per_minute", cfg.RateLimitPerMinute),
			zap.Int("cache_ttl_seconds", cfg.CacheTTLSeconds),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal("server error", zap.Error(err))

	case sig := <-shutdown:
		log.Info("shutting down", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Warn("graceful shutdown failed", zap.Error(err))
			_ = srv.Close()
		}
		_ = metricsSrv.Shutdown(ctx)
	}

	log.Info("shutdown complete")
}
