package native

import (
	"sync/atomic"

	"github.com/gogpu/ggsvg/model"
)

// GlyphPosition is a positioned rune inside a TextBlob.
type GlyphPosition struct {
	Rune rune
	X, Y float32
}

// TextBlob is an immutable run of positioned glyphs ready for drawing.
// Like Paint it owns backend resources and is released exactly once.
type TextBlob struct {
	id       uint64
	text     string
	glyphs   []GlyphPosition
	bounds   model.Rect
	typeface Typeface
	size     float32
	hooks    *releaseHooks
	released atomic.Bool
}

// TextBlob lays out text at (x, y) with the paint's typeface, size and
// alignment. It returns nil when the paint has no usable typeface or text
// is empty.
func (p *Paint) TextBlob(text string, x, y float32) *TextBlob {
	if !p.Valid() || !IsValid(p.typeface) || text == "" {
		return nil
	}
	width, bounds := p.MeasureText(text)
	x += p.alignOffset(width)

	b := &TextBlob{
		id:       nextID.Add(1),
		text:     text,
		glyphs:   make([]GlyphPosition, 0, len(text)),
		typeface: p.typeface,
		size:     p.TextSize,
		hooks:    p.hooks,
	}
	pen := x
	for _, r := range text {
		b.glyphs = append(b.glyphs, GlyphPosition{Rune: r, X: pen, Y: y})
		pen += p.advance(r)
	}
	b.bounds = model.Rect{
		Left:   x + bounds.Left,
		Top:    y + bounds.Top,
		Right:  x + bounds.Right,
		Bottom: y + bounds.Bottom,
	}
	return b
}

// ID returns the unique identity of the blob.
func (b *TextBlob) ID() uint64 { return b.id }

// Text returns the source text.
func (b *TextBlob) Text() string { return b.text }

// Glyphs returns the positioned glyphs. The slice must not be modified.
func (b *TextBlob) Glyphs() []GlyphPosition { return b.glyphs }

// Bounds returns the conservative bounds of the blob.
func (b *TextBlob) Bounds() model.Rect { return b.bounds }

// Typeface returns the typeface the blob was laid out with.
func (b *TextBlob) Typeface() Typeface { return b.typeface }

// Size returns the em size the blob was laid out at.
func (b *TextBlob) Size() float32 { return b.size }

// Valid reports whether the blob has not been released.
func (b *TextBlob) Valid() bool {
	return b != nil && !b.released.Load()
}

// Release frees the blob. Only the first call has an effect.
func (b *TextBlob) Release() {
	if b == nil || !b.released.CompareAndSwap(false, true) {
		return
	}
	if b.hooks != nil && b.hooks.blob != nil {
		b.hooks.blob(b)
	}
}
