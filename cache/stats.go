package cache

// Stats contains cache statistics. Fields that do not apply to a cache
// type are left zero.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Limit is the entry limit.
	Limit int
	// Hits is the number of lookups answered from the cache.
	Hits uint64
	// Misses is the number of lookups not answered from the cache.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), or 0 before any lookup.
	HitRate float64
	// Clears is the number of times a Sharded cache was cleared.
	Clears uint64
	// Builds is the number of resources an Owned cache built.
	Builds uint64
	// Releases is the number of resources an Owned cache released.
	Releases uint64
	// Trims is the number of sweeps an Owned cache ran.
	Trims uint64
}
