// Package bootstrap wires runtime dependencies for the application's
// entry points.
package bootstrap

import (
	"context"
	"fmt"

	"wayfarer/internal/cache"
	"wayfarer/internal/config"
	"wayfarer/internal/database"
	"wayfarer/internal/observability"
	"wayfarer/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoData bool
}

// Runtime holds the initialized shared dependencies.
type Runtime struct {
	DB    *gorm.DB
	Redis *redis.Client
	// ShutdownTracing flushes pending spans; nil when tracing is disabled.
	ShutdownTracing func(context.Context) error
}

// InitRuntime connects to the database and Redis, starts tracing when
// enabled, and optionally seeds demo data.
func InitRuntime(cfg *config.Config, opts Options) (*Runtime, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// May leave a nil client when Redis is unreachable; callers degrade
	// gracefully.
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	rt := &Runtime{DB: db, Redis: r}

	if cfg.TracingEnabled {
		shutdown, err := observability.InitTracing(observability.TracingConfig{
			ServiceName:    "wayfarer-api",
			ServiceVersion: "1.0.0",
			Environment:    cfg.Env,
			Enabled:        true,
			Exporter:       cfg.TracingExport,
			OTLPEndpoint:   cfg.OTLPEndpoint,
			SamplerRatio:   cfg.TraceSampler,
		})
		if err != nil {
			return nil, fmt.Errorf("tracing initialization failed: %w", err)
		}
		rt.ShutdownTracing = shutdown
	}

	if opts.SeedDemoData {
		if err := seed.Seed(db, seed.Options{}); err != nil {
			return nil, fmt.Errorf("demo data seeding failed: %w", err)
		}
	}

	return rt, nil
}
