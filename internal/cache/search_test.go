package cache_test

import (
	"context"
	"testing"
	"time"

	"chimichangapp/internal/cache"

	"github.com/stretchr/testify/assert"
)

func TestNewSearchCache_NilClient(t *testing.T) {
	assert.Nil(t, cache.NewSearchCache(nil, time.Minute))
}

func TestSearchCache_NilIsSafe(t *testing.T) {
	var c *cache.SearchCache

	body, ok := c.Get(context.Background(), "wand")
	assert.False(t, ok)
	assert.Nil(t, body)

	// Set on a nil cache is a no-op, not a panic.
	c.Set(context.Background(), "wand", []byte(`{}`))
}
