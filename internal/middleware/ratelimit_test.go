// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contentdesk/internal/apierr"
)

const viewPath = "/api/news/00000000-0000-0000-0000-000000000001/view"

func newLimiter(t *testing.T, limit int, window time.Duration, trustProxy bool) *RateLimiter {
	t.Helper()
	rl := NewRateLimiter(limit, window, trustProxy)
	t.Cleanup(rl.Stop)
	return rl
}

func TestRateLimiterAllow(t *testing.T) {
	rl := newLimiter(t, 3, time.Second, false)

	for i := range 3 {
		ok, _ := rl.allow("203.0.113.7")
		require.True(t, ok, "request %d", i+1)
	}

	ok, wait := rl.allow("203.0.113.7")
	assert.False(t, ok)
	assert.Greater(t, wait, time.Duration(0))
	assert.LessOrEqual(t, wait, time.Second)

	ok, _ = rl.allow("198.51.100.2")
	assert.True(t, ok, "clients are limited independently")
}

func TestRateLimiterWindowSlides(t *testing.T) {
	rl := newLimiter(t, 2, 50*time.Millisecond, false)

	rl.allow("c")
	rl.allow("c")
	ok, _ := rl.allow("c")
	require.False(t, ok)

	assert.Eventually(t, func() bool {
		ok, _ := rl.allow("c")
		return ok
	}, time.Second, 10*time.Millisecond)
}

func TestRateLimiterConcurrent(t *testing.T) {
	rl := newLimiter(t, 25, time.Minute, false)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int64
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := rl.allow("same"); ok {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 25, allowed.Load())
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := newLimiter(t, 5, 20*time.Millisecond, false)
	rl.allow("idle")

	time.Sleep(40 * time.Millisecond)
	rl.cleanup()

	rl.mu.RLock()
	defer rl.mu.RUnlock()
	assert.Empty(t, rl.clients)
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := newLimiter(t, 2, time.Minute, false)
	var served int
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served++
		w.WriteHeader(http.StatusOK)
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, viewPath, nil)
		req.RemoteAddr = "192.0.2.10:51234"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, send().Code)
	assert.Equal(t, http.StatusOK, send().Code)

	rr := send()
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, 2, served)

	retry, err := strconv.Atoi(rr.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, retry, 1)
	assert.LessOrEqual(t, retry, 60)

	var body apierr.Body
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, apierr.CodeRateLimited, body.Error.Code)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remote     string
		xff        string
		realIP     string
		trustProxy bool
		want       string
	}{
		{"remote addr", "192.0.2.1:4000", "", "", false, "192.0.2.1"},
		{"remote without port", "192.0.2.1", "", "", false, "192.0.2.1"},
		{"forwarded ignored when untrusted", "192.0.2.1:4000", "203.0.113.9", "", false, "192.0.2.1"},
		{"first forwarded hop", "10.0.0.1:4000", "203.0.113.9, 10.0.0.2", "", true, "203.0.113.9"},
		{"real ip", "10.0.0.1:4000", "", " 198.51.100.4 ", true, "198.51.100.4"},
		{"trusted without headers", "10.0.0.1:4000", "", "", true, "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			assert.Equal(t, tt.want, ClientIP(req, tt.trustProxy))
		})
	}
}

func TestRateLimiterStopTwice(t *testing.T) {
	rl := NewRateLimiter(1, time.Second, false)
	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}
