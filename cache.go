package main

import (
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	ecache "github.com/dgryski/go-expirecache"
	"go.uber.org/zap"
)

// bytesCache holds images loaded from upstream servers.
type bytesCache interface {
	get(k string) ([]byte, bool)
	set(k string, v []byte, expire int32)
}

type nullCache struct{}

func (nullCache) get(string) ([]byte, bool) { return nil, false }
func (nullCache) set(string, []byte, int32) {}

type expireCache struct {
	ec *ecache.Cache
}

func (ec expireCache) get(k string) ([]byte, bool) {
	v, ok := ec.ec.Get(k)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

func (ec expireCache) set(k string, v []byte, expire int32) {
	ec.ec.Set(k, v, uint64(len(v)), expire)
}

const memcachedTimeout = 50 * time.Millisecond

type memcachedCache struct {
	client *memcache.Client
	logger *zap.Logger
}

// memcached limits keys to 250 bytes, so image urls are hashed.
func memcachedKey(k string) string {
	key := sha1.Sum([]byte(k))
	return hex.EncodeToString(key[:])
}

func (m *memcachedCache) get(k string) ([]byte, bool) {
	hk := memcachedKey(k)
	done := make(chan struct{})

	var err error
	var item *memcache.Item

	go func() {
		item, err = m.client.Get(hk)
		close(done)
	}()

	select {
	case <-time.After(memcachedTimeout):
		m.logger.Warn("memcached get timed out", zap.String("key", k))
		return nil, false
	case <-done:
	}

	if err != nil {
		if err != memcache.ErrCacheMiss {
			m.logger.Warn("memcached get failed", zap.String("key", k), zap.Error(err))
		}
		return nil, false
	}
	return item.Value, true
}

func (m *memcachedCache) set(k string, v []byte, expire int32) {
	hk := memcachedKey(k)
	go func() {
		if err := m.client.Set(&memcache.Item{Key: hk, Value: v, Expiration: expire}); err != nil {
			m.logger.Warn("memcached set failed", zap.String("key", k), zap.Error(err))
		}
	}()
}

// openUpstreamCache picks memcached when servers are configured, the
// in-memory cache when it has a size, and no cache otherwise.
func openUpstreamCache(cfg *config, logger *zap.Logger) bytesCache {
	switch {
	case len(cfg.MemcachedServers) > 0:
		logger.Info("using memcached for upstream images", zap.Strings("servers", cfg.MemcachedServers))
		return &memcachedCache{client: memcache.New(cfg.MemcachedServers...), logger: logger}
	case cfg.MaxUpstreamCacheSize > 0:
		logger.Info("using in-memory cache for upstream images", zap.Stringer("size", cfg.MaxUpstreamCacheSize))
		c := expireCache{ec: ecache.New(uint64(cfg.MaxUpstreamCacheSize))}
		go c.ec.ApproximateCleaner(10 * time.Second)
		return c
	default:
		return nullCache{}
	}
}
