package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"user-registry/internal/jwttoken"
	"user-registry/internal/platform/config"
	"user-registry/internal/platform/database"
	"user-registry/internal/platform/health"
	"user-registry/internal/platform/httpserver"
	"user-registry/internal/platform/logger"
	platformmetrics "user-registry/internal/platform/metrics"
	platformredis "user-registry/internal/platform/redis"
	userhandler "user-registry/internal/user/handler"
	usermetrics "user-registry/internal/user/metrics"
	userservice "user-registry/internal/user/service"
	userstore "user-registry/internal/user/store"
	"user-registry/migrations"
	"user-registry/pkg/platform/audit"
	"user-registry/pkg/platform/audit/publisher"
	auditmemory "user-registry/pkg/platform/audit/store/memory"
	auditpostgres "user-registry/pkg/platform/audit/store/postgres"
	authmw "user-registry/pkg/platform/middleware/auth"
	requestmw "user-registry/pkg/platform/middleware/request"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal service
// packages.
func main() {
	serverCfg, dbCfg, redisCfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing user-registry",
		"addr", serverCfg.Addr,
		"environment", serverCfg.Environment,
		"auth_disabled", serverCfg.AuthDisabled,
	)

	pool, err := database.New(dbCfg, log)
	if err != nil {
		log.Error("database init failed", "error", err)
		os.Exit(1)
	}

	var store userservice.UserStore
	var auditStore audit.Store
	if pool != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := migrations.Apply(ctx, pool.DB()); err != nil {
			cancel()
			log.Error("migrations failed", "error", err)
			os.Exit(1)
		}
		cancel()
		store = userstore.NewPostgres(pool.DB())
		auditStore = auditpostgres.New(pool.DB())
		log.Info("using postgres store", "host", dbCfg.Host)
	} else {
		store = userstore.NewInMemory()
		auditStore = auditmemory.NewInMemoryStore()
		log.Warn("no database configured, using in-memory store")
	}

	redisClient, err := platformredis.New(redisCfg)
	if err != nil {
		log.Error("redis init failed", "error", err)
		os.Exit(1)
	}

	auditPublisher := publisher.NewPublisher(auditStore,
		publisher.WithAsyncBuffer(256),
		publisher.WithPublisherLogger(log),
	)

	serviceOpts := []userservice.Option{
		userservice.WithLogger(log),
		userservice.WithMetrics(usermetrics.New()),
		userservice.WithAuditPublisher(auditPublisher),
	}
	if redisClient != nil {
		serviceOpts = append(serviceOpts,
			userservice.WithCache(userstore.NewRedisCache(redisClient.Client, redisCfg.CacheTTL)),
		)
		log.Info("user read cache enabled", "ttl", redisCfg.CacheTTL)
	}
	userSvc := userservice.New(store, serviceOpts...)

	jwtSvc := jwttoken.NewService(serverCfg.JWTSigningKey, "user-registry", "user-registry-client")

	healthHandler := health.New()
	if pool != nil {
		healthHandler.RegisterCheck("database", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Health(ctx)
		})
	}
	if redisClient != nil {
		healthHandler.RegisterCheck("redis", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Health(ctx)
		})
	}

	httpMetrics := platformmetrics.New()

	router := chi.NewRouter()
	router.Use(requestmw.Recovery(log))
	router.Use(requestmw.RequestID)
	router.Use(requestmw.Logger(log))
	router.Use(httpMetrics.Middleware)

	// Health and metrics stay outside the authenticated group.
	healthHandler.Register(router)
	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		if !serverCfg.AuthDisabled {
			r.Use(authmw.RequireBearerToken(jwtSvc, log))
		}
		userhandler.New(userSvc, log).Register(r)
	})

	srv := httpserver.New(serverCfg, router)

	log.Info("starting http server", "addr", serverCfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	auditPublisher.Close()
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Warn("redis close failed", "error", err)
		}
	}
	if err := pool.Close(); err != nil {
		log.Warn("database close failed", "error", err)
	}

	log.Info("server stopped")
}
