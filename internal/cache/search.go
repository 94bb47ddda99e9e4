// Package cache provides an optional Redis-backed response cache for the
// item search endpoint.
package cache

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const searchKeyPrefix = "chimichangapp:search:"

// SearchCache caches serialized search responses keyed by query string.
// A nil SearchCache (or one built from a nil client) is valid and always
// misses, so callers do not need to branch on whether Redis is configured.
type SearchCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSearchCache creates a SearchCache over the given client. Returns nil
// when client is nil so the handler path stays cache-free.
func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	if client == nil {
		return nil
	}
	return &SearchCache{rdb: client, ttl: ttl}
}

// Get returns the cached response body for query, or false on a miss.
func (c *SearchCache) Get(ctx context.Context, query string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	body, err := c.rdb.Get(ctx, searchKeyPrefix+query).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Search cache: error reading key for query %q: %v", query, err)
		}
		return nil, false
	}
	return body, true
}

// Set stores the response body for query. Cache write failures are logged
// and otherwise ignored; the response has already been built.
func (c *SearchCache) Set(ctx context.Context, query string, body []byte) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, searchKeyPrefix+query, body, c.ttl).Err(); err != nil {
		log.Printf("Search cache: error writing key for query %q: %v", query, err)
	}
}
