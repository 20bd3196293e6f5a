package cache

import (
	"sync"
	"weak"
)

// Resource is a native object owned by an Owned cache.
// Release must be idempotent; Valid reports whether the object is still
// usable.
type Resource interface {
	Valid() bool
	Release()
}

// Owned caches one resource per source object identity, validated by a
// signature of the source's state.
//
// A single mutex covers lookup, eviction, build, store and trim, so a
// resource is built at most once per (identity, signature) and a stored
// resource is released exactly once, never while it is the live entry
// being returned.
type Owned[T any, S comparable, R Resource] struct {
	mu        sync.Mutex
	entries   map[weak.Pointer[T]]*ownedEntry[S, R]
	threshold int
	nextTrim  int

	hits     uint64
	misses   uint64
	builds   uint64
	releases uint64
	trims    uint64
}

type ownedEntry[S comparable, R Resource] struct {
	sig S
	res R
}

// NewOwned creates an owned cache that sweeps dead entries once it holds
// more than threshold entries.
func NewOwned[T any, S comparable, R Resource](threshold int) *Owned[T, S, R] {
	return &Owned[T, S, R]{
		entries:   make(map[weak.Pointer[T]]*ownedEntry[S, R]),
		threshold: threshold,
		nextTrim:  threshold,
	}
}

// GetOrBuild returns the resource cached for src when its signature equals
// sig and it is still valid. Otherwise the stale resource is released and
// build is called; a successful result is stored and returned. When build
// reports failure nothing is cached and ok is false.
//
// build runs under the cache lock and must not call back into c.
func (c *Owned[T, S, R]) GetOrBuild(src *T, sig S, build func() (R, bool)) (res R, ok bool) {
	if src == nil {
		return res, false
	}
	key := weak.Make(src)

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, found := c.entries[key]; found {
		if e.sig == sig && e.res.Valid() {
			c.hits++
			return e.res, true
		}
		delete(c.entries, key)
		c.release(e.res)
	}
	c.misses++

	res, ok = build()
	if !ok {
		return res, false
	}
	c.entries[key] = &ownedEntry[S, R]{sig: sig, res: res}
	c.builds++

	if len(c.entries) > c.nextTrim {
		c.trim()
	}
	return res, true
}

// Remove releases and drops the entry for src, reporting whether one existed.
func (c *Owned[T, S, R]) Remove(src *T) bool {
	if src == nil {
		return false
	}
	key := weak.Make(src)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	delete(c.entries, key)
	c.release(e.res)
	return true
}

// Clear releases every stored resource and empties the cache.
func (c *Owned[T, S, R]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		delete(c.entries, key)
		c.release(e.res)
	}
	c.nextTrim = c.threshold
}

// Trim sweeps entries whose source was garbage collected or whose resource
// is no longer valid, regardless of the threshold.
func (c *Owned[T, S, R]) Trim() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.trim()
}

// trim drops dead entries and raises the next trim mark so that a cache
// full of live entries is not swept on every insert. Caller must hold c.mu.
func (c *Owned[T, S, R]) trim() {
	for key, e := range c.entries {
		switch {
		case key.Value() == nil:
			delete(c.entries, key)
			c.release(e.res)
		case !e.res.Valid():
			delete(c.entries, key)
		}
	}
	c.trims++
	c.nextTrim = max(c.threshold, 2*len(c.entries))
}

// release releases a resource that was stored in the cache. Caller must
// hold c.mu.
func (c *Owned[T, S, R]) release(r R) {
	if !r.Valid() {
		return
	}
	r.Release()
	c.releases++
}

// Len returns the number of entries, live or not yet swept.
func (c *Owned[T, S, R]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Stats returns current statistics.
func (c *Owned[T, S, R]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	var hitRate float64
	if total := c.hits + c.misses; total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}
	return Stats{
		Len:      len(c.entries),
		Limit:    c.threshold,
		Hits:     c.hits,
		Misses:   c.misses,
		HitRate:  hitRate,
		Builds:   c.builds,
		Releases: c.releases,
		Trims:    c.trims,
	}
}
