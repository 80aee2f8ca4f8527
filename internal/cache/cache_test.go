// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_ADDR", "localhost:6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "contentdesk:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	client, err := ConnectValkey(context.Background(), ValkeyOptions{Addr: envOr("VALKEY_ADDR", "localhost:6379")})
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestValkeySetAndGet(t *testing.T) {
	vc := NewValkey(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	data, ok := vc.Get(ctx, Key("news", 0, "/api/news"))
	if ok {
		t.Error("expected cache miss")
	}
	if data != nil {
		t.Error("expected nil data on miss")
	}

	body := []byte(`[{"slug":"hello"}]`)
	vc.Set(ctx, Key("news", 0, "/api/news"), body)

	data, ok = vc.Get(ctx, Key("news", 0, "/api/news"))
	if !ok {
		t.Error("expected cache hit")
	}
	if string(data) != string(body) {
		t.Errorf("data mismatch: got %q, want %q", data, body)
	}
}

func TestValkeyInvalidate(t *testing.T) {
	vc := NewValkey(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	vc.Set(ctx, Key("news", 0, "/api/news"), []byte("a"))
	vc.Set(ctx, Key("news", 0, "/api/news/slug/x"), []byte("b"))
	vc.Set(ctx, Key("reports", 0, "/api/reports"), []byte("c"))

	vc.Invalidate(ctx, "news")

	for _, key := range []string{Key("news", 0, "/api/news"), Key("news", 0, "/api/news/slug/x")} {
		if _, ok := vc.Get(ctx, key); ok {
			t.Errorf("expected miss for %q after invalidation", key)
		}
	}
	if _, ok := vc.Get(ctx, Key("reports", 0, "/api/reports")); !ok {
		t.Error("other resources must survive invalidation")
	}

	gen, err := vc.Generation(ctx, "news")
	if err != nil {
		t.Fatalf("Generation: %v", err)
	}
	if gen != 1 {
		t.Errorf("news generation: got %d, want 1", gen)
	}
	if gen, _ := vc.Generation(ctx, "reports"); gen != 0 {
		t.Errorf("reports generation: got %d, want 0", gen)
	}
}

func TestNewValkeyDefaultTTL(t *testing.T) {
	vc := NewValkey(testValkeyClient(t), 0)
	if vc.ttl != DefaultTTL {
		t.Errorf("expected DefaultTTL (%v), got %v", DefaultTTL, vc.ttl)
	}
}

func TestKey(t *testing.T) {
	if got := Key("webinars", 3, "/api/webinars/upcoming?limit=5"); got != "webinars:3:/api/webinars/upcoming?limit=5" {
		t.Errorf("Key: got %q", got)
	}
	if got := ResourcePrefix("webinars"); got != "webinars:" {
		t.Errorf("ResourcePrefix: got %q", got)
	}
}
