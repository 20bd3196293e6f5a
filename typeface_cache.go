package ggsvg

import (
	"reflect"

	"github.com/gogpu/ggsvg/cache"
	"github.com/gogpu/ggsvg/native"
	"github.com/gogpu/ggsvg/provider"
)

// Cache bounds. A typeface cache whose entry count exceeds its bound after
// an insertion is cleared; the owned caches sweep dead entries once they
// hold more than their threshold.
const (
	MatchCharacterCacheLimit   = 4096
	ProviderTypefaceCacheLimit = 512
	PaintCacheTrimThreshold    = 1024
	TextBlobCacheTrimThreshold = 1024
)

// Catalog is the platform font catalog consulted when no provider supplies
// a typeface. native.FontManager implements it.
type Catalog interface {
	// MatchStyle returns the closest typeface for d, or nil.
	MatchStyle(d native.Descriptor) native.Typeface

	// MatchCharacter returns a typeface in the style of d that has a glyph
	// for r, or nil.
	MatchCharacter(d native.Descriptor, r rune) native.Typeface
}

// TypefaceCache memoizes typeface resolutions per character and per
// provider family lookup.
//
// Both "found" and "no match" outcomes are cached; a cached typeface that
// became invalid is treated as a miss.
//
// TypefaceCache is safe for concurrent use.
type TypefaceCache struct {
	catalog   Catalog
	providers func() []provider.Provider

	chars  *cache.Sharded[MatchCharacterKey, native.Typeface]
	family *cache.Sharded[ProviderTypefaceKey, native.Typeface]
}

// NewTypefaceCache creates a cache resolving through catalog after the
// providers returned by providers. Either may be nil.
func NewTypefaceCache(catalog Catalog, providers func() []provider.Provider) *TypefaceCache {
	return &TypefaceCache{
		catalog:   catalog,
		providers: providers,
		chars:     cache.NewSharded[MatchCharacterKey, native.Typeface](MatchCharacterCacheLimit, MatchCharacterKey.Hash),
		family:    cache.NewSharded[ProviderTypefaceKey, native.Typeface](ProviderTypefaceCacheLimit, ProviderTypefaceKey.Hash),
	}
}

// ResolveByStyle returns the catalog typeface closest to d, or nil.
func (c *TypefaceCache) ResolveByStyle(d native.Descriptor) native.Typeface {
	if c.catalog == nil {
		return nil
	}
	return valid(c.catalog.MatchStyle(d))
}

// ResolveByCharacter returns a typeface in the style of d that can render
// r, or nil when none can.
//
// Providers are asked first, in order, for the requested family (or
// provider.DefaultFamily when d names none); the first typeface covering r
// wins. The catalog is the fallback.
func (c *TypefaceCache) ResolveByCharacter(d native.Descriptor, r rune) native.Typeface {
	key := NewMatchCharacterKey(d, r)
	if t, ok := c.chars.Get(key); ok {
		if t == nil {
			return nil
		}
		if t.Valid() {
			return t
		}
		c.chars.CompareAndDelete(key, func(v native.Typeface) bool { return v == t })
	}

	t := c.lookupCharacter(d, r)
	c.chars.Set(key, t)
	c.trim()
	return t
}

func (c *TypefaceCache) lookupCharacter(d native.Descriptor, r rune) native.Typeface {
	family := d.Family
	if family == "" {
		family = provider.DefaultFamily
	}
	if c.providers != nil {
		for _, p := range c.providers() {
			if t := c.resolveProviderFamily(p, family, d); t != nil && t.HasGlyph(r) {
				return t
			}
		}
	}
	if c.catalog == nil {
		return nil
	}
	return valid(c.catalog.MatchCharacter(d, r))
}

// ResolveProviderFamily returns the typeface p supplies for family in the
// style of d, or nil. Nil and incomparable providers resolve to nil.
func (c *TypefaceCache) ResolveProviderFamily(p provider.Provider, family string, d native.Descriptor) native.Typeface {
	if !provider.Comparable(p) {
		return nil
	}
	return c.resolveProviderFamily(p, family, d)
}

// resolveProviderFamily assumes p is comparable.
func (c *TypefaceCache) resolveProviderFamily(p provider.Provider, family string, d native.Descriptor) native.Typeface {
	key := NewProviderTypefaceKey(p, family, d)
	if t, ok := c.family.Get(key); ok && (t == nil || t.Valid()) {
		return t
	}

	want := d
	want.Family = family
	t := valid(p.LookupFamily(want))
	c.family.Set(key, t)
	c.trim()
	return t
}

func (c *TypefaceCache) trim() {
	if c.chars.ClearIfOver() {
		Logger().Debug("ggsvg: character typeface cache over limit, cleared", "limit", MatchCharacterCacheLimit)
	}
	if c.family.ClearIfOver() {
		Logger().Debug("ggsvg: provider typeface cache over limit, cleared", "limit", ProviderTypefaceCacheLimit)
	}
}

// Clear drops every cached resolution.
func (c *TypefaceCache) Clear() {
	c.chars.Clear()
	c.family.Clear()
}

// Len returns the number of cached character and provider resolutions.
func (c *TypefaceCache) Len() (chars, families int) {
	return c.chars.Len(), c.family.Len()
}

// Stats returns statistics of the character and provider caches.
func (c *TypefaceCache) Stats() (chars, families cache.Stats) {
	return c.chars.Stats(), c.family.Stats()
}

// valid normalizes invalid, typed-nil and incomparable typefaces to nil.
func valid(t native.Typeface) native.Typeface {
	if !native.IsValid(t) || !reflect.ValueOf(t).Comparable() {
		return nil
	}
	return t
}
