// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Lingopress HTTP API server.
//
// # Startup Sequence
//
//  1. Load .env (optional) and configuration from environment variables.
//  2. Initialize the structured logger and metrics exporter.
//  3. Open the configured document store (postgres, mongo or memory).
//  4. Connect to Redis when a public read cache is configured.
//  5. Wire services and HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/taibuivan/lingopress/internal/api"
	"github.com/taibuivan/lingopress/internal/content/post"
	"github.com/taibuivan/lingopress/internal/content/tag"
	"github.com/taibuivan/lingopress/internal/platform/config"
	"github.com/taibuivan/lingopress/internal/platform/constants"
	"github.com/taibuivan/lingopress/internal/platform/metrics"
	"github.com/taibuivan/lingopress/internal/platform/migration"
	mongostore "github.com/taibuivan/lingopress/internal/platform/mongo"
	pgstore "github.com/taibuivan/lingopress/internal/platform/postgres"
	redisstore "github.com/taibuivan/lingopress/internal/platform/redis"
	"github.com/taibuivan/lingopress/internal/platform/sec"
	"github.com/taibuivan/lingopress/internal/users/account"
)

// stores bundles the repositories of one storage driver.
type stores struct {
	posts    post.Repository
	tags     tag.Repository
	accounts account.Repository
	check    api.Check
	close    func()
}

func main() {
	// ── 1. Configuration ──────────────────────────────────────────────────
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	level := slog.LevelInfo
	cfg, err := config.Load()
	if err == nil && cfg.Debug {
		level = slog.LevelDebug
	}

	// ── 2. Logger ─────────────────────────────────────────────────────────
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	must(log, err, "load configuration")

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store_driver", cfg.StoreDriver),
	)

	instruments, metricsHandler, err := metrics.Setup(constants.AppName)
	must(log, err, "initialize metrics")

	// Root context for startup. The deadline surfaces misconfiguration
	// quickly instead of hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Document Store ─────────────────────────────────────────────────
	store, err := openStores(startupCtx, cfg, log)
	must(log, err, "open store")
	defer store.close()

	checks := []api.Check{store.check}

	// ── 4. Public Read Cache ──────────────────────────────────────────────
	postOptions := []post.Option{post.WithMetrics(instruments)}

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()

		postOptions = append(postOptions, post.WithCache(post.NewRedisCache(rdb, cfg.PublicCacheTTL)))
		checks = append(checks, api.Check{
			Name:  "redis",
			Probe: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
		})
	}

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	tokens, err := sec.LoadTokenService(cfg.JWTPubKeyPath, cfg.AuthIssuer)
	must(log, err, "load token verifier")

	accountService := account.NewService(store.accounts, log)
	postService := post.NewService(store.posts, accountService, log, postOptions...)
	tagService := tag.NewService(store.tags, log)

	liveness, readiness := api.NewHealthHandlers(checks, log)

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	server := api.NewServer(rootCtx, cfg, log, tokens, instruments, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Metrics:   metricsHandler,
		Post:      post.NewHandler(postService),
		Tag:       tag.NewHandler(tagService),
		Account:   account.NewHandler(accountService),
	})

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
	}

	log.Info("server_stopped_cleanly")
}

// openStores connects the storage driver selected by STORE_DRIVER.
func openStores(ctx context.Context, cfg *config.Config, log *slog.Logger) (*stores, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		if cfg.MigrationAuto {
			if err := migration.RunUp(cfg.DatabaseURL, log); err != nil {
				return nil, err
			}
		}

		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		return postgresStores(pool, log), nil

	case config.DriverMongo:
		client, err := mongostore.NewClient(ctx, cfg.MongoURL, log)
		if err != nil {
			return nil, err
		}

		db := client.Database(cfg.MongoDatabase)
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return mongoStores(client, db, log), nil

	default:
		log.Warn("memory_store_enabled")
		return &stores{
			posts:    post.NewMemoryRepository(),
			tags:     tag.NewMemoryRepository(),
			accounts: account.NewMemoryRepository(),
			check:    api.Check{Name: "memory", Probe: func(context.Context) error { return nil }},
			close:    func() {},
		}, nil
	}
}

func postgresStores(pool *pgxpool.Pool, log *slog.Logger) *stores {
	return &stores{
		posts:    post.NewPostgresRepository(pool),
		tags:     tag.NewPostgresRepository(pool),
		accounts: account.NewPostgresRepository(pool),
		check: api.Check{
			Name:  "postgres",
			Probe: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		},
		close: func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		},
	}
}

func mongoStores(client *mongo.Client, db *mongo.Database, log *slog.Logger) *stores {
	return &stores{
		posts:    post.NewMongoRepository(db),
		tags:     tag.NewMongoRepository(db),
		accounts: account.NewMongoRepository(db),
		check: api.Check{
			Name:  "mongo",
			Probe: func(ctx context.Context) error { return mongostore.Ping(ctx, client) },
		},
		close: func() {
			log.Info("closing_mongo_client")
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("mongo_disconnect_error", slog.Any("error", err))
			}
		},
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
