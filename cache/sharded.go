package cache

import (
	"sync"
	"sync/atomic"
)

const (
	// DefaultShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	DefaultShardCount = 16

	shardMask = DefaultShardCount - 1
)

// Hasher is a function that computes a hash for a key.
// Used by Sharded for shard selection only; it need not be collision free,
// but equal keys must hash equally.
type Hasher[K any] func(K) uint64

// Sharded is a thread-safe bounded memo.
//
// Storing a key that is already present replaces its value (last writer
// wins); a key is never present twice. The entry count may temporarily
// exceed the limit until ClearIfOver is called.
type Sharded[K comparable, V any] struct {
	shards [DefaultShardCount]*shard[K, V]
	hasher Hasher[K]
	limit  int
	count  atomic.Int64

	hits   atomic.Uint64
	misses atomic.Uint64
	clears atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// NewSharded creates a memo that holds at most limit entries between
// calls to ClearIfOver. A limit <= 0 means unbounded.
func NewSharded[K comparable, V any](limit int, hasher Hasher[K]) *Sharded[K, V] {
	c := &Sharded[K, V]{
		hasher: hasher,
		limit:  limit,
	}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{entries: make(map[K]V)}
	}
	return c
}

func (c *Sharded[K, V]) shardFor(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get returns the value stored for key. A stored zero value is a hit.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	v, ok := c.shardFor(key).get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

func (s *shard[K, V]) get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[key]
	return v, ok
}

// Set stores value for key.
func (c *Sharded[K, V]) Set(key K, value V) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; !exists {
		c.count.Add(1)
	}
	s.entries[key] = value
}

// CompareAndDelete removes key only if its current value satisfies match.
// It reports whether an entry was removed.
func (c *Sharded[K, V]) CompareAndDelete(key K, match func(V) bool) bool {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.entries[key]
	if !ok || !match(v) {
		return false
	}
	delete(s.entries, key)
	c.count.Add(-1)
	return true
}

// Clear removes all entries.
func (c *Sharded[K, V]) Clear() {
	for _, s := range c.shards {
		c.count.Add(-int64(s.clear()))
	}
	c.clears.Add(1)
}

// clear empties the shard and returns the number of entries removed.
func (s *shard[K, V]) clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries)
	clear(s.entries)
	return n
}

// ClearIfOver clears the memo when it holds more than its limit and
// reports whether it did.
func (c *Sharded[K, V]) ClearIfOver() bool {
	if c.limit <= 0 || c.count.Load() <= int64(c.limit) {
		return false
	}
	c.Clear()
	return true
}

// Len returns the number of entries.
func (c *Sharded[K, V]) Len() int {
	return int(c.count.Load())
}

// Limit returns the configured limit.
func (c *Sharded[K, V]) Limit() int {
	return c.limit
}

// Stats returns current statistics. Counters are read atomically but not
// as one snapshot.
func (c *Sharded[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return Stats{
		Len:     c.Len(),
		Limit:   c.limit,
		Hits:    hits,
		Misses:  misses,
		HitRate: hitRate,
		Clears:  c.clears.Load(),
	}
}
