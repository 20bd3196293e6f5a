package ggsvg

import (
	"github.com/gogpu/ggsvg/cache"
	"github.com/gogpu/ggsvg/model"
	"github.com/gogpu/ggsvg/native"
)

// PaintBuilder translates document paints into native paints.
// native.Translator implements it.
type PaintBuilder interface {
	// BuildPaint returns a new native paint owned by the caller, or nil
	// when p cannot be translated.
	BuildPaint(p *model.Paint) *native.Paint
}

// PaintCache owns the native paints built for document paints, one per
// source paint identity.
//
// A cached paint is reused while the source paint's signature is unchanged
// and the native paint is valid. The cache does not keep source paints
// alive: once a source paint is garbage collected its native paint is
// released by the next trim.
//
// PaintCache is safe for concurrent use. Returned paints are borrowed and
// must not be released by the caller.
type PaintCache struct {
	builder PaintBuilder
	tracker *ProviderTracker
	owned   *cache.Owned[model.Paint, PaintSignature, *native.Paint]
}

// NewPaintCache creates a paint cache building through b. tracker may be
// nil; otherwise provider drift is checked before every lookup.
func NewPaintCache(b PaintBuilder, tracker *ProviderTracker) *PaintCache {
	return &PaintCache{
		builder: b,
		tracker: tracker,
		owned:   cache.NewOwned[model.Paint, PaintSignature, *native.Paint](PaintCacheTrimThreshold),
	}
}

// GetOrBuild returns the native paint for p, building it on first use or
// after p changed. It returns nil for a nil paint or one that cannot be
// built; failures are not cached.
func (c *PaintCache) GetOrBuild(p *model.Paint) *native.Paint {
	if p == nil {
		return nil
	}
	c.refresh()
	return c.getOrBuild(p)
}

func (c *PaintCache) refresh() {
	if c.tracker != nil {
		c.tracker.RefreshIfChanged()
	}
}

// getOrBuild is GetOrBuild for callers that already refreshed the tracker.
func (c *PaintCache) getOrBuild(p *model.Paint) *native.Paint {
	if p == nil {
		return nil
	}
	sig := NewPaintSignature(p)
	np, ok := c.owned.GetOrBuild(p, sig, func() (*native.Paint, bool) {
		np := c.builder.BuildPaint(p)
		return np, np != nil
	})
	if !ok {
		Logger().Debug("ggsvg: paint could not be built", "style", p.Style, "textSize", p.TextSize)
		return nil
	}
	return np
}

// Remove releases the paint cached for p, if any.
func (c *PaintCache) Remove(p *model.Paint) bool {
	return c.owned.Remove(p)
}

// Trim releases paints whose source paint was garbage collected.
func (c *PaintCache) Trim() {
	c.owned.Trim()
}

// Clear releases every cached paint.
func (c *PaintCache) Clear() {
	c.owned.Clear()
}

// Len returns the number of cached paints.
func (c *PaintCache) Len() int {
	return c.owned.Len()
}

// Stats returns cache statistics.
func (c *PaintCache) Stats() cache.Stats {
	return c.owned.Stats()
}
