package native

import (
	"bytes"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/ggsvg/model"
)

// Typeface is a loaded font that can be measured and drawn.
//
// A Typeface may become invalid, for example when the font manager that
// owns it is closed. Callers treat an invalid typeface as absent.
// Typefaces are compared with ==, so implementations must be comparable.
type Typeface interface {
	// Descriptor returns the family and style this typeface provides.
	Descriptor() Descriptor

	// HasGlyph reports whether the typeface maps r to a glyph.
	HasGlyph(r rune) bool

	// Advance returns the horizontal advance of r at the given em size.
	// Runes without a glyph advance by the width of the missing glyph.
	Advance(r rune, size float32) float32

	// Metrics returns vertical metrics at the given em size.
	Metrics(size float32) model.FontMetrics

	// Valid reports whether the typeface is still usable.
	Valid() bool
}

// GlyphOutliner is implemented by typefaces that can produce vector
// glyph outlines.
type GlyphOutliner interface {
	// AppendOutline appends the outline of r, drawn at em size with its
	// origin at (x, y), to p. Y grows downwards. It returns the advance.
	AppendOutline(p *model.Path, r rune, size, x, y float32) float32
}

// IsValid reports whether t is non-nil and valid.
func IsValid(t Typeface) bool {
	return t != nil && t.Valid()
}

// SameDescriptor reports whether a and b are both absent or both present
// with equal descriptors.
func SameDescriptor(a, b Typeface) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Descriptor() == b.Descriptor()
}

// FontTypeface is a Typeface backed by a parsed go-text font.
//
// The underlying *font.Font is safe for concurrent use; *font.Face is not,
// so faces are pooled.
type FontTypeface struct {
	font     *font.Font
	desc     Descriptor
	upem     float32
	faces    sync.Pool
	coverage *RuneCoverage
	closed   atomic.Bool
}

// NewTypeface parses a single TrueType/OpenType font.
func NewTypeface(data []byte) (*FontTypeface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("native: failed to parse font: %w", err)
	}
	desc := face.Describe()
	return newFontTypeface(face.Font, desc.Family, desc.Aspect), nil
}

// NewTypefaceCollection parses every font in a TrueType collection.
// A plain font file yields one typeface.
func NewTypefaceCollection(data []byte) ([]*FontTypeface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("native: failed to parse font collection: %w", err)
	}
	out := make([]*FontTypeface, 0, len(faces))
	for _, face := range faces {
		desc := face.Describe()
		out = append(out, newFontTypeface(face.Font, desc.Family, desc.Aspect))
	}
	return out, nil
}

func newFontTypeface(f *font.Font, family string, aspect font.Aspect) *FontTypeface {
	t := &FontTypeface{
		font:     f,
		desc:     descriptorFromAspect(family, aspect),
		upem:     float32(f.Upem()),
		coverage: NewRuneCoverage(),
	}
	if t.upem == 0 {
		t.upem = 1000
	}
	t.faces.New = func() any { return font.NewFace(f) }
	return t
}

// Font returns the underlying go-text font.
func (t *FontTypeface) Font() *font.Font {
	return t.font
}

// Descriptor implements Typeface.
func (t *FontTypeface) Descriptor() Descriptor {
	return t.desc
}

// HasGlyph implements Typeface.
func (t *FontTypeface) HasGlyph(r rune) bool {
	return t.coverage.Lookup(r, func(r rune) bool {
		_, ok := t.font.NominalGlyph(r)
		return ok
	})
}

// Advance implements Typeface.
func (t *FontTypeface) Advance(r rune, size float32) float32 {
	gid, _ := t.font.NominalGlyph(r)
	face := t.acquire()
	adv := face.HorizontalAdvance(gid)
	t.faces.Put(face)
	return adv * size / t.upem
}

// Metrics implements Typeface.
func (t *FontTypeface) Metrics(size float32) model.FontMetrics {
	face := t.acquire()
	ext, ok := face.FontHExtents()
	t.faces.Put(face)

	scale := size / t.upem
	if !ok {
		// Typical Latin proportions when the font carries no hhea/OS2 data.
		return model.FontMetrics{Ascent: -0.8 * size, Descent: 0.2 * size}
	}
	return model.FontMetrics{
		Ascent:  -ext.Ascender * scale,
		Descent: -ext.Descender * scale,
		Leading: ext.LineGap * scale,
	}
}

// AppendOutline implements GlyphOutliner.
func (t *FontTypeface) AppendOutline(p *model.Path, r rune, size, x, y float32) float32 {
	gid, _ := t.font.NominalGlyph(r)
	face := t.acquire()
	data := face.GlyphData(gid)
	adv := face.HorizontalAdvance(gid)
	t.faces.Put(face)

	scale := size / t.upem
	outline, ok := data.(font.GlyphOutline)
	if !ok {
		return adv * scale
	}

	px := func(pt ot.SegmentPoint) float32 { return x + pt.X*scale }
	py := func(pt ot.SegmentPoint) float32 { return y - pt.Y*scale }
	open := false
	for _, seg := range outline.Segments {
		a := seg.Args
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(px(a[0]), py(a[0]))
			open = true
		case ot.SegmentOpLineTo:
			p.LineTo(px(a[0]), py(a[0]))
		case ot.SegmentOpQuadTo:
			p.QuadTo(px(a[0]), py(a[0]), px(a[1]), py(a[1]))
		case ot.SegmentOpCubeTo:
			p.CubicTo(px(a[0]), py(a[0]), px(a[1]), py(a[1]), px(a[2]), py(a[2]))
		}
	}
	if open {
		p.Close()
	}
	return adv * scale
}

// Valid implements Typeface.
func (t *FontTypeface) Valid() bool {
	return t != nil && !t.closed.Load()
}

// Close invalidates the typeface. It is idempotent.
func (t *FontTypeface) Close() {
	if t.closed.CompareAndSwap(false, true) {
		t.coverage.Clear()
	}
}

func (t *FontTypeface) acquire() *font.Face {
	return t.faces.Get().(*font.Face)
}
