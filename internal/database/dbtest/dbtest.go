// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package dbtest provides a migrated PostgreSQL database for integration
// tests. Tests are skipped unless TEST_DATABASE_URL points at a server or
// TEST_INTEGRATION is set, in which case a container is started.
package dbtest

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"contentdesk/internal/database"
)

var (
	once     sync.Once
	shared   string
	startErr error
)

// DSN returns the connection string of the test server, starting one
// container per test binary when needed.
func DSN(t *testing.T) string {
	t.Helper()

	if url := os.Getenv("TEST_DATABASE_URL"); url != "" {
		return url
	}
	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("skipping integration test: set TEST_INTEGRATION or TEST_DATABASE_URL")
	}

	once.Do(func() {
		ctx := context.Background()
		container, err := postgres.Run(ctx,
			"docker.io/postgres:17-alpine",
			postgres.WithDatabase("contentdesk_test"),
			postgres.WithUsername("contentdesk"),
			postgres.WithPassword("test-password"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			startErr = err
			return
		}
		// The container lives until the test binary exits; the reaper
		// removes it.
		shared, startErr = container.ConnectionString(ctx, "sslmode=disable")
	})
	if startErr != nil {
		t.Fatalf("start postgres container: %v", startErr)
	}
	return shared
}

// Open connects to the test database and applies migrations. The
// connection is closed when the test finishes.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Connect(context.Background(), database.Options{DSN: DSN(t)})
	if err != nil {
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// Truncate empties the given tables. Call it at the start of a test that
// counts rows.
func Truncate(t *testing.T, db *sql.DB, tables ...string) {
	t.Helper()
	for _, table := range tables {
		if _, err := db.Exec("TRUNCATE " + table); err != nil {
			t.Fatalf("truncate %s: %v", table, err)
		}
	}
}
