package provider

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/ggsvg/native"
)

// Custom serves one bound typeface. It answers for its family only, or
// for every family when bound without one. When bound with Unicode ranges
// the typeface only claims glyphs inside them, so characters outside fall
// through to later providers and the catalog.
//
// Custom is safe for concurrent use.
type Custom struct {
	mu       sync.RWMutex
	folded   string
	typeface native.Typeface
	version  atomic.Uint64
}

// NewCustom binds t to family. An empty family serves every request.
func NewCustom(family string, t native.Typeface, ranges ...native.UnicodeRange) *Custom {
	c := &Custom{}
	c.Bind(family, t, ranges...)
	return c
}

// Bind replaces the bound typeface and bumps the version. Non-empty ranges
// restrict the glyphs t claims.
func (c *Custom) Bind(family string, t native.Typeface, ranges ...native.UnicodeRange) {
	if t != nil && len(ranges) > 0 {
		t = native.NewFilteredTypeface(t, ranges...)
	}
	c.mu.Lock()
	c.folded = foldFamily(family)
	c.typeface = t
	c.mu.Unlock()
	c.version.Add(1)
}

// LookupFamily implements Provider. The style of d is ignored: the bound
// typeface is the only one available.
func (c *Custom) LookupFamily(d native.Descriptor) native.Typeface {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.typeface == nil {
		return nil
	}
	if c.folded != "" && c.folded != foldFamily(d.Family) {
		return nil
	}
	return c.typeface
}

// Version implements Versioned.
func (c *Custom) Version() uint64 {
	return c.version.Load()
}
