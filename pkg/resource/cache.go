package resource

import (
	"github.com/nyan233/karte/pkg/common/logger"
	"github.com/nyan233/karte/pkg/container"
)

const defaultBaseSize = 32

type Config struct {
	// BaseSize seeds the backing table, the real slot count is the next
	// prime up.
	BaseSize int
	Logger   logger.LLogger
}

type Option func(*Config)

func WithBaseSize(n int) Option {
	return func(c *Config) {
		c.BaseSize = n
	}
}

func WithLogger(l logger.LLogger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// Cache is a keyed store for loaded resources (textures, fonts, any
// value carrying state that outlives plain memory). The release
// callback is invoked whenever a resource leaves the cache: overwrite,
// eviction and Reset. Not goroutine safe.
type Cache[V any] struct {
	store  *container.HashMap[V]
	logger logger.LLogger
}

func NewCache[V any](release func(V), opts ...Option) *Cache[V] {
	cfg := &Config{
		BaseSize: defaultBaseSize,
		Logger:   logger.DefaultLogger,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Cache[V]{
		store:  container.NewHashMap(cfg.BaseSize, release),
		logger: cfg.Logger,
	}
}

// Store registers a resource under key. Ownership of value transfers to
// the cache, a previous resource under the same key is released first.
func (c *Cache[V]) Store(key string, value V) {
	c.store.Store(key, value)
}

func (c *Cache[V]) Load(key string) V {
	value, _ := c.LoadOk(key)
	return value
}

func (c *Cache[V]) LoadOk(key string) (V, bool) {
	return c.store.LoadOk(key)
}

// Evict releases the resource under key and removes it.
func (c *Cache[V]) Evict(key string) bool {
	if !c.store.Delete(key) {
		c.logger.Warn("resource: evict of unknown key %s", key)
		return false
	}
	return true
}

func (c *Cache[V]) Len() int {
	return c.store.Len()
}

// Reset releases every cached resource.
func (c *Cache[V]) Reset() {
	c.store.Reset(true)
}

func (c *Cache[V]) Range(fn func(key string, value V) (next bool)) {
	c.store.Range(fn)
}
