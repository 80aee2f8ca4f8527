// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
)

// TotalHeader carries the unpaged result count of a listing.
const TotalHeader = "X-Total-Count"

// entry is what Responses stores for one request.
type entry struct {
	ContentType string `json:"content_type"`
	Total       string `json:"total,omitempty"`
	Body        []byte `json:"body"`
}

// recorder buffers a response while passing it through.
type recorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (r *recorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}

// Responses serves successful GET responses of resource from c and stores
// fresh ones. Only the public routes of a resource are wrapped with it.
//
// The generation is read before the handler runs. A write that lands while
// the handler is reading the store advances it, so the response is stored
// under a key no later request looks up.
func Responses(c Cache, resource string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			gen, err := c.Generation(r.Context(), resource)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			key := Key(resource, gen, r.URL.RequestURI())
			if raw, ok := c.Get(r.Context(), key); ok {
				var e entry
				if err := json.Unmarshal(raw, &e); err == nil {
					if e.Total != "" {
						w.Header().Set(TotalHeader, e.Total)
					}
					w.Header().Set("Content-Type", e.ContentType)
					w.Header().Set("X-Cache", "HIT")
					w.WriteHeader(http.StatusOK)
					w.Write(e.Body)
					return
				}
				slog.Warn("response cache entry unreadable", "key", key)
			}

			w.Header().Set("X-Cache", "MISS")
			rec := &recorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			if rec.status != http.StatusOK {
				return
			}

			raw, err := json.Marshal(entry{
				ContentType: w.Header().Get("Content-Type"),
				Total:       w.Header().Get(TotalHeader),
				Body:        rec.buf.Bytes(),
			})
			if err != nil {
				return
			}
			c.Set(r.Context(), key, raw)
		})
	}
}
