// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key namespaces of every key this service writes.
const (
	valkeyKeyPrefix = "contentdesk:resp:"
	valkeyGenPrefix = "contentdesk:gen:"
)

// ValkeyOptions configures the Valkey connection.
type ValkeyOptions struct {
	Addr     string
	Password string
	DB       int
}

// ConnectValkey creates a Valkey client and verifies the connection with a ping.
func ConnectValkey(ctx context.Context, opts ValkeyOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("valkey ping: %w", err)
	}

	slog.Info("valkey connected", "addr", opts.Addr, "db", opts.DB)
	return client, nil
}

// Valkey is a Cache shared by every instance of the service.
type Valkey struct {
	client *redis.Client
	ttl    time.Duration
}

// NewValkey creates a cache backed by client. A zero ttl means DefaultTTL.
func NewValkey(client *redis.Client, ttl time.Duration) *Valkey {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Valkey{client: client, ttl: ttl}
}

// Get returns the cached value for key.
func (v *Valkey) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := v.client.Get(ctx, valkeyKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		observe("valkey", false)
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "key", key, "error", err)
		observe("valkey", false)
		return nil, false
	}
	observe("valkey", true)
	return val, true
}

// Set stores val under key with the configured TTL.
func (v *Valkey) Set(ctx context.Context, key string, val []byte) {
	if err := v.client.Set(ctx, valkeyKeyPrefix+key, val, v.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "key", key, "error", err)
	}
}

// Generation reads the generation counter of resource. A missing counter
// is generation zero.
func (v *Valkey) Generation(ctx context.Context, resource string) (uint64, error) {
	gen, err := v.client.Get(ctx, valkeyGenPrefix+resource).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		slog.Warn("response cache generation error", "resource", resource, "error", err)
		return 0, err
	}
	return gen, nil
}

// Invalidate increments the generation counter of resource, then scans for
// its entries and deletes them in batches.
func (v *Valkey) Invalidate(ctx context.Context, resource string) {
	if err := v.client.Incr(ctx, valkeyGenPrefix+resource).Err(); err != nil {
		slog.Error("response cache generation bump failed", "resource", resource, "error", err)
	}

	prefix := ResourcePrefix(resource)
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := v.client.Scan(ctx, cursor, valkeyKeyPrefix+prefix+"*", 100).Result()
		if err != nil {
			slog.Warn("response cache scan error", "prefix", prefix, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := v.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("response cache delete error", "prefix", prefix, "error", err)
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	slog.Debug("response cache invalidated", "resource", resource, "deleted", deleted)
}
