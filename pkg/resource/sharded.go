package resource

import (
	"strconv"

	"github.com/lafikl/consistent"
	"github.com/nyan233/karte/pkg/common/logger"
)

// ShardedCache partitions keys over several independent caches through
// a consistent-hash ring. Each shard rehashes on its own, so a resize
// pause is bounded by the shard size instead of the whole key space.
// Like Cache it is single-goroutine only, the ring is pure routing.
type ShardedCache[V any] struct {
	ring     *consistent.Consistent
	shards   map[string]*Cache[V]
	fallback *Cache[V]
}

func NewShardedCache[V any](nShards int, release func(V), opts ...Option) *ShardedCache[V] {
	if nShards < 1 {
		nShards = 1
	}
	sc := &ShardedCache[V]{
		ring:   consistent.New(),
		shards: make(map[string]*Cache[V], nShards),
	}
	for i := 0; i < nShards; i++ {
		name := "shard-" + strconv.Itoa(i)
		shard := NewCache(release, opts...)
		sc.ring.Add(name)
		sc.shards[name] = shard
		if sc.fallback == nil {
			sc.fallback = shard
		}
	}
	return sc
}

func (sc *ShardedCache[V]) shardFor(key string) *Cache[V] {
	name, err := sc.ring.Get(key)
	if err != nil {
		// Only possible on an empty ring, which construction rules out.
		logger.DefaultLogger.Error("resource: shard lookup for key %s: %v", key, err)
		return sc.fallback
	}
	return sc.shards[name]
}

func (sc *ShardedCache[V]) Store(key string, value V) {
	sc.shardFor(key).Store(key, value)
}

func (sc *ShardedCache[V]) Load(key string) V {
	value, _ := sc.LoadOk(key)
	return value
}

func (sc *ShardedCache[V]) LoadOk(key string) (V, bool) {
	return sc.shardFor(key).LoadOk(key)
}

func (sc *ShardedCache[V]) Evict(key string) bool {
	return sc.shardFor(key).Evict(key)
}

func (sc *ShardedCache[V]) Len() int {
	var total int
	for _, shard := range sc.shards {
		total += shard.Len()
	}
	return total
}

func (sc *ShardedCache[V]) Reset() {
	for _, shard := range sc.shards {
		shard.Reset()
	}
}

func (sc *ShardedCache[V]) Range(fn func(key string, value V) (next bool)) {
	next := true
	for _, shard := range sc.shards {
		if !next {
			return
		}
		shard.Range(func(key string, value V) bool {
			next = fn(key, value)
			return next
		})
	}
}
