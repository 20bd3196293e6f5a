// Package cache provides a small soft-limit memo used for font style
// matching.
//
// Cache[K, V] stores values by comparable key and, once it grows past its
// soft limit, drops the least recently used quarter of its entries.
//
//	styles := cache.New[Descriptor, Typeface](512)
//	tf := styles.GetOrCreate(d, func() Typeface { return match(d) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
