// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package testenv connects integration tests to real backing services.

Each helper reads a LINGOPRESS_TEST_* variable and skips the test when it is
unset, so `go test ./...` stays hermetic on a laptop and exercises the real
stores in CI:

	LINGOPRESS_TEST_DATABASE_URL  postgres://...
	LINGOPRESS_TEST_MONGO_URL     mongodb://...
	LINGOPRESS_TEST_REDIS_URL     redis://...
*/
package testenv

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/taibuivan/lingopress/internal/platform/migration"
	platformmongo "github.com/taibuivan/lingopress/internal/platform/mongo"
	"github.com/taibuivan/lingopress/internal/platform/postgres"
	"github.com/taibuivan/lingopress/internal/platform/redis"
)

const (
	EnvDatabaseURL = "LINGOPRESS_TEST_DATABASE_URL"
	EnvMongoURL    = "LINGOPRESS_TEST_MONGO_URL"
	EnvRedisURL    = "LINGOPRESS_TEST_REDIS_URL"

	mongoDatabase = "lingopress_test"
)

func lookup(t *testing.T, name string) string {
	t.Helper()
	value := os.Getenv(name)
	if value == "" {
		t.Skipf("%s not set", name)
	}
	return value
}

func logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Postgres migrates the database, empties the given tables and returns a pool
// that is closed when the test ends.
func Postgres(t *testing.T, truncate ...string) *pgxpool.Pool {
	t.Helper()
	dsn := lookup(t, EnvDatabaseURL)

	require.NoError(t, migration.RunUp(dsn, logger()))

	pool, err := postgres.NewPool(context.Background(), dsn, logger())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	for _, table := range truncate {
		_, err := pool.Exec(context.Background(), "TRUNCATE "+table)
		require.NoError(t, err)
	}
	return pool
}

// Mongo returns a test database with the given collections dropped and the
// indexes in place.
func Mongo(t *testing.T, drop ...string) *mongo.Database {
	t.Helper()
	uri := lookup(t, EnvMongoURL)
	ctx := context.Background()

	client, err := platformmongo.NewClient(ctx, uri, logger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database(mongoDatabase)
	for _, collection := range drop {
		require.NoError(t, db.Collection(collection).Drop(ctx))
	}
	require.NoError(t, platformmongo.EnsureIndexes(ctx, db))
	return db
}

// Redis returns a client on a flushed database.
func Redis(t *testing.T) *goredis.Client {
	t.Helper()
	url := lookup(t, EnvRedisURL)
	ctx := context.Background()

	client, err := redis.NewClient(ctx, url, logger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.FlushDB(ctx).Err())
	return client
}
