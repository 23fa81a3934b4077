package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/khadihouse/pos-backend/internal/bootstrap"
	"github.com/khadihouse/pos-backend/internal/settings"
	"github.com/khadihouse/pos-backend/pkg/config"
	"github.com/khadihouse/pos-backend/pkg/db"
	pkgerrors "github.com/khadihouse/pos-backend/pkg/errors"
	"github.com/khadihouse/pos-backend/pkg/logger"
	"github.com/khadihouse/pos-backend/pkg/metrics"
	"github.com/khadihouse/pos-backend/pkg/redis"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "bootstrap"})

	_ = godotenv.Load()

	demo := flag.Bool("demo", false, "seed one demonstration sale when none exist")
	async := flag.Bool("async", false, "run the schema check off the main goroutine")
	flag.Parse()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "bootstrap",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx = logg.WithField(context.Background(), "env", cfg.App.Env)

	dbClient, err := db.New(ctx, cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer dbClient.Close()

	boot := bootstrap.New(dbClient, cfg, logg, metrics.NewBootstrapMetrics(prometheus.DefaultRegisterer))

	if *async {
		err = <-boot.EnsureSchemaAsync(ctx)
	} else {
		err = boot.EnsureSchema(ctx)
	}
	requireResource(ctx, logg, "schema", err)

	requireResource(ctx, logg, "seed dataset", boot.ApplySeed(ctx))

	if *demo || cfg.FeatureFlags.DemoSale {
		requireResource(ctx, logg, "demo sale", boot.SeedDemoSale(ctx))
	}

	var cache settings.Cache
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			logg.Warn(ctx, "redis unavailable, settings cache disabled")
		} else {
			defer redisClient.Close()
			cache = redisClient
		}
	}

	storeName, err := settings.NewService(dbClient.DB(), cache, cfg.Store.SettingsCacheTTL, logg).
		Value(ctx, "store_name")
	requireResource(ctx, logg, "settings", err)

	logg.Info(logg.WithField(ctx, "store", storeName), "bootstrap complete")
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	if fields := pkgerrors.Dump(err).Fields(); len(fields) > 0 {
		ctx = logg.WithFields(ctx, fields)
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
