package main

import (
	"testing"

	ecache "github.com/dgryski/go-expirecache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExpireCache(t *testing.T) {
	c := expireCache{ec: ecache.New(0)}

	_, ok := c.get("http://example.com/a.jpg")
	assert.False(t, ok)

	c.set("http://example.com/a.jpg", []byte("jpeg"), 60)
	v, ok := c.get("http://example.com/a.jpg")
	require.True(t, ok)
	assert.Equal(t, []byte("jpeg"), v)

	c.set("http://example.com/expired.jpg", []byte("gone"), -1)
	_, ok = c.get("http://example.com/expired.jpg")
	assert.False(t, ok)
}

func TestNullCache(t *testing.T) {
	var c bytesCache = nullCache{}
	c.set("k", []byte("v"), 60)
	_, ok := c.get("k")
	assert.False(t, ok)
}

func TestMemcachedKey(t *testing.T) {
	k := memcachedKey("s3:cat_jpg")
	assert.Len(t, k, 40)
	assert.Equal(t, k, memcachedKey("s3:cat_jpg"))
	assert.NotEqual(t, k, memcachedKey("s3:dog_jpg"))
}

func TestOpenUpstreamCache(t *testing.T) {
	cfg, err := parseConfig(newTestFlagSet(), []string{"-maxUpstreamCacheSize", "0"})
	require.NoError(t, err)
	assert.IsType(t, nullCache{}, openUpstreamCache(cfg, zap.NewNop()))

	cfg.MaxUpstreamCacheSize = 1 << 20
	assert.IsType(t, expireCache{}, openUpstreamCache(cfg, zap.NewNop()))

	cfg.MemcachedServers = serverList{"127.0.0.1:1"}
	c := openUpstreamCache(cfg, zap.NewNop())
	require.IsType(t, &memcachedCache{}, c)

	// nothing listens there, so lookups miss
	_, ok := c.get("s3:cat_jpg")
	assert.False(t, ok)
}
