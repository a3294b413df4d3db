package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/storage/redis/v3"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"linkrotator/internal/cache"
	"linkrotator/internal/config"
	"linkrotator/internal/db"
	"linkrotator/internal/handlers"
	"linkrotator/internal/jobs"
	"linkrotator/internal/metrics"
	"linkrotator/internal/models"
	"linkrotator/internal/provider"
	"linkrotator/internal/rotation"
	"linkrotator/internal/server"
	"linkrotator/internal/target"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := config.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := buildProvider(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize %s provider: %v", cfg.DataSource, err)
	}
	defer closeSource()

	var staticRows []models.MappingRow
	if cfg.DataSource != config.SourceStatic {
		staticRows, err = provider.LoadStaticRows(cfg.StaticRowsFile)
		if err != nil {
			log.Fatalf("Failed to load static rows: %v", err)
		}
	}

	rowCache := cache.New(source, cache.Options{
		TTL:        cfg.CacheTTL,
		StaticRows: staticRows,
		Logger:     logger,
	})

	metrics.Init(prometheus.DefaultRegisterer)

	srv := server.New(cfg, logger)
	srv.RegisterRoutes(server.Routes{
		Redirect: handlers.NewRedirectHandler(
			rowCache,
			rotation.NewSelector(rotation.DefaultSource, cfg.MaxKeywords),
			target.NewBuilder(cfg.StaticFBID, cfg.StaticFBClick),
			cfg.RedirectKeyParam,
			logger,
		),
		Health:   handlers.NewHealthHandler(rowCache),
		Gatherer: prometheus.DefaultGatherer,
	})

	if cfg.CacheWarmInterval > 0 {
		go jobs.NewCacheWarmer(rowCache, cfg.CacheWarmInterval, logger).Start(ctx)
	}

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	logger.Info("configuration loaded",
		"addr", cfg.ServerAddr,
		"source", cfg.DataSource,
		"ttl", cfg.CacheTTL,
		"shared_snapshot", cfg.UsesSharedSnapshot(),
		"static_rows", len(staticRows))

	<-ctx.Done()

	logger.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	logger.Info("server exited")
}

// buildProvider wires the configured table source, optionally behind the
// shared redis snapshot. The returned func releases its resources.
func buildProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (provider.TableProvider, func(), error) {
	var (
		source  provider.TableProvider
		closers []func()
	)

	switch cfg.DataSource {
	case config.SourceSheets:
		p, err := provider.NewSheetsProvider(ctx, provider.SheetsConfig{
			ServiceAccountEmail: cfg.GoogleServiceAccountEmail,
			PrivateKey:          cfg.GooglePrivateKey,
			SpreadsheetID:       cfg.SheetID,
			Range:               cfg.SheetRange,
		})
		if err != nil {
			return nil, nil, err
		}
		source = p

	case config.SourcePostgres:
		if cfg.DatabaseURL == "" {
			logger.Error("DATABASE_URL is not set, postgres provider disabled")
			source = provider.NewPostgresProvider(nil, cfg.DatabaseTable)
			break
		}
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, database.Close)

		if cfg.RunMigrations {
			if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
				database.Close()
				return nil, nil, err
			}
			logger.Info("migrations completed successfully")
			if cfg.IsDev() {
				if err := database.SeedDevRows(ctx); err != nil {
					logger.Warn("failed to seed development rows", "error", err)
				}
			}
		}
		source = provider.NewPostgresProvider(database.Pool, cfg.DatabaseTable)

	case config.SourceStatic:
		source = provider.NewStaticProvider(cfg.StaticRowsFile)

	default:
		return nil, nil, fmt.Errorf("unknown DATA_SOURCE %q", cfg.DataSource)
	}

	if cfg.UsesSharedSnapshot() {
		store := redis.New(redis.Config{URL: cfg.RedisURL})
		closers = append(closers, func() { _ = store.Close() })
		source = provider.NewSharedProvider(source, store, cfg.RedisKey, cfg.CacheTTL, logger)
	}

	return source, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}, nil
}
