// Package cache provides the two caching primitives behind resource
// resolution.
//
// # Sharded[K, V]
//
// A bounded memo for pure lookups such as typeface resolution. Keys are
// spread over 16 shards, each behind its own RWMutex. When the number of
// entries exceeds the limit, ClearIfOver drops everything at once.
//
//	c := cache.NewSharded[Key, Typeface](4096, Key.Hash)
//	c.Set(k, tf)
//	c.ClearIfOver()
//
// # Owned[T, S, R]
//
// An identity-keyed cache that owns releasable resources built from a
// mutable source object. Entries are keyed by a weak pointer to the source,
// so the cache never keeps a source alive, and validated by a comparable
// signature of the source's state. Every resource the cache stores is
// released exactly once: when it is replaced, cleared, or swept after its
// source has been garbage collected.
//
//	c := cache.NewOwned[model.Paint, Signature, *native.Paint](1024)
//	p, ok := c.GetOrBuild(src, sig, build)
//
// # Thread Safety
//
// Both types are safe for concurrent use and must not be copied after
// creation.
package cache
