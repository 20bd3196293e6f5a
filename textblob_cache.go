package ggsvg

import (
	"github.com/gogpu/ggsvg/cache"
	"github.com/gogpu/ggsvg/model"
	"github.com/gogpu/ggsvg/native"
)

// TextBlobCache owns the text blobs laid out for text draw commands, one
// per command identity. A blob is reused while the command's text,
// position and the font state of its native paint are unchanged.
//
// TextBlobCache is safe for concurrent use. Returned blobs are borrowed.
type TextBlobCache struct {
	paints *PaintCache
	owned  *cache.Owned[model.TextCommand, BlobSignature, *native.TextBlob]
}

// NewTextBlobCache creates a blob cache resolving paints through paints.
func NewTextBlobCache(paints *PaintCache) *TextBlobCache {
	return &TextBlobCache{
		paints: paints,
		owned:  cache.NewOwned[model.TextCommand, BlobSignature, *native.TextBlob](TextBlobCacheTrimThreshold),
	}
}

// GetOrBuild returns the blob for cmd, or nil when cmd is nil, its paint
// cannot be built or nothing can be laid out.
func (c *TextBlobCache) GetOrBuild(cmd *model.TextCommand) *native.TextBlob {
	if cmd == nil {
		return nil
	}
	c.paints.refresh()
	return c.getOrBuild(cmd)
}

// getOrBuild is GetOrBuild for callers that already refreshed the tracker.
func (c *TextBlobCache) getOrBuild(cmd *model.TextCommand) *native.TextBlob {
	if cmd == nil {
		return nil
	}
	p := c.paints.getOrBuild(cmd.Paint)
	if p == nil {
		return nil
	}

	sig := NewBlobSignature(cmd, p)
	b, ok := c.owned.GetOrBuild(cmd, sig, func() (*native.TextBlob, bool) {
		b := p.TextBlob(cmd.Text, cmd.X, cmd.Y)
		return b, b != nil
	})
	if !ok {
		return nil
	}
	return b
}

// Trim releases blobs whose command was garbage collected.
func (c *TextBlobCache) Trim() {
	c.owned.Trim()
}

// Clear releases every cached blob.
func (c *TextBlobCache) Clear() {
	c.owned.Clear()
}

// Len returns the number of cached blobs.
func (c *TextBlobCache) Len() int {
	return c.owned.Len()
}

// Stats returns cache statistics.
func (c *TextBlobCache) Stats() cache.Stats {
	return c.owned.Stats()
}
