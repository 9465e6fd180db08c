package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cvrdex/internal/config"
	logpkg "github.com/kailas-cloud/cvrdex/internal/logger"
	"github.com/kailas-cloud/cvrdex/internal/metrics"
	"github.com/kailas-cloud/cvrdex/internal/ratelimit"
	chiTransport "github.com/kailas-cloud/cvrdex/internal/transport/chi"
	"github.com/kailas-cloud/cvrdex/internal/transport/virk"
	healthuc "github.com/kailas-cloud/cvrdex/internal/usecase/health"
	lookupuc "github.com/kailas-cloud/cvrdex/internal/usecase/lookup"
	"github.com/kailas-cloud/cvrdex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting cvrdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("registry_url", cfg.Registry.URL),
		zap.String("rate_limit_driver", cfg.RateLimit.Driver),
	)

	// Register registry metrics explicitly (no init())
	metrics.RegisterRegistryMetrics()

	// Registry client for the company index
	registry := virk.NewClient(&virk.Config{
		URL:      cfg.Registry.URL,
		Username: cfg.Registry.Username,
		Password: cfg.Registry.Password,
		Timeout:  time.Duration(cfg.Registry.TimeoutSec) * time.Second,
		Logger:   logger,
	})

	// Probe the registry once at boot. The API still starts when the index
	// is briefly down; /health keeps reporting until it recovers.
	ctx := context.Background()
	pingCtx, cancelPing := context.WithTimeout(ctx, time.Duration(cfg.Registry.TimeoutSec)*time.Second)
	if err := registry.Ping(pingCtx); err != nil {
		logger.Warn("Registry not reachable at startup", zap.Error(err))
	} else {
		logger.Info("Connected to registry")
	}
	cancelPing()

	// Create rate limit store based on driver.
	// Pass nil interface (not typed nil pointer!) if the store has no health
	// probe. Go gotcha: (*RedisStore)(nil) wrapped in StorePinger != nil.
	var limiterStore ratelimit.Store
	var storePinger healthuc.StorePinger
	switch cfg.RateLimit.Driver {
	case "memory":
		limiterStore = ratelimit.NewMemoryStore()
	case "redis":
		redisStore, err := ratelimit.NewRedisStore(ratelimit.RedisConfig{
			Addrs:    cfg.RateLimit.Addrs,
			Password: cfg.RateLimit.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create rate limit store", zap.Error(err))
		}
		defer redisStore.Close()
		limiterStore = redisStore
		storePinger = redisStore
	default:
		logger.Fatal("Unknown rate limit driver", zap.String("driver", cfg.RateLimit.Driver))
	}
	limiter := ratelimit.New(
		limiterStore,
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.WindowSec)*time.Second,
	)

	// Create use case services
	lookupSvc := lookupuc.New(registry)
	healthSvc := healthuc.New(registry, storePinger)

	// Create chi server
	server := chiTransport.NewServer(lookupSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.CORSMiddleware(cfg.CORS.Origins))
	r.Use(chiTransport.APIKeyAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(chiTransport.RateLimitMiddleware(limiter, logger))
	r.Use(metrics.Middleware())
	server.Mount(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
