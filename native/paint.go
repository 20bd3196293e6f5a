package native

import (
	"math"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggsvg/model"
)

// nextID hands out object identities for paints and text blobs.
var nextID atomic.Uint64

// Paint is the native draw state translated from a model.Paint.
//
// A Paint owns backend resources and must be released exactly once with
// Release. Paints returned by caches are borrowed and are released by the
// cache that owns them.
type Paint struct {
	id uint64

	Style       model.PaintStyle
	Antialias   bool
	StrokeWidth float32
	StrokeCap   model.StrokeCap
	StrokeJoin  model.StrokeJoin
	StrokeMiter float32

	TextSize      float32
	TextScaleX    float32
	TextSkewX     float32
	TextAlign     model.TextAlign
	TextEncoding  model.TextEncoding
	LcdRenderText bool
	SubpixelText  bool
	FakeBoldText  bool

	Color         gputypes.Color
	Blend         gputypes.BlendState
	BlendMode     model.BlendMode
	FilterQuality model.FilterQuality

	Shader      *model.Shader
	ColorFilter *model.ColorFilter
	ImageFilter *model.ImageFilter
	PathEffect  *model.PathEffect

	typeface Typeface
	hooks    *releaseHooks
	released atomic.Bool
}

// releaseHooks are observers invoked when a native object is released.
type releaseHooks struct {
	paint func(*Paint)
	blob  func(*TextBlob)
}

func newPaint(hooks *releaseHooks) *Paint {
	return &Paint{
		id:         nextID.Add(1),
		TextScaleX: 1,
		hooks:      hooks,
	}
}

// ID returns the unique identity of the paint.
func (p *Paint) ID() uint64 {
	return p.id
}

// Typeface returns the typeface used for text, or nil for none.
func (p *Paint) Typeface() Typeface {
	return p.typeface
}

// SetTypeface sets the typeface used for text. Nil clears it.
func (p *Paint) SetTypeface(t Typeface) {
	p.typeface = t
}

// Valid reports whether the paint has not been released.
func (p *Paint) Valid() bool {
	return p != nil && !p.released.Load()
}

// Release frees the paint. Only the first call has an effect.
func (p *Paint) Release() {
	if p == nil || !p.released.CompareAndSwap(false, true) {
		return
	}
	if p.hooks != nil && p.hooks.paint != nil {
		p.hooks.paint(p)
	}
}

// advance returns the advance of r under the paint's text settings.
func (p *Paint) advance(r rune) float32 {
	return p.typeface.Advance(r, p.TextSize) * p.TextScaleX
}

// MeasureText returns the advance width of text and its bounds relative
// to the origin. Without subpixel positioning each glyph advance is
// rounded to whole pixels.
func (p *Paint) MeasureText(text string) (float32, model.Rect) {
	if !p.Valid() || !IsValid(p.typeface) || text == "" {
		return 0, model.Rect{}
	}
	var width fixed.Int26_6
	for _, r := range text {
		a := fixed.Int26_6(math.Round(float64(p.advance(r)) * 64))
		if !p.SubpixelText {
			a = fixed.I(a.Round())
		}
		width += a
	}
	w := float32(width) / 64
	m := p.FontMetrics()
	return w, model.Rect{Left: 0, Top: m.Ascent, Right: w, Bottom: m.Descent}
}

// MeasureBytes decodes b according to TextEncoding and measures it.
func (p *Paint) MeasureBytes(b []byte) (float32, model.Rect, error) {
	text, err := DecodeText(b, p.TextEncoding)
	if err != nil {
		return 0, model.Rect{}, err
	}
	w, bounds := p.MeasureText(text)
	return w, bounds, nil
}

// FontMetrics returns the vertical metrics of the paint's typeface at its
// text size, or zero metrics without a typeface.
func (p *Paint) FontMetrics() model.FontMetrics {
	if !p.Valid() || !IsValid(p.typeface) {
		return model.FontMetrics{}
	}
	return p.typeface.Metrics(p.TextSize)
}

// alignOffset returns the x shift applied to an origin for TextAlign.
func (p *Paint) alignOffset(width float32) float32 {
	switch p.TextAlign {
	case model.TextAlignCenter:
		return -width / 2
	case model.TextAlignRight:
		return -width
	}
	return 0
}

// TextPath returns the glyph outlines of text with the baseline origin at
// (x, y), honoring TextAlign. It returns nil when the typeface cannot
// produce outlines.
func (p *Paint) TextPath(text string, x, y float32) *model.Path {
	if !p.Valid() || !IsValid(p.typeface) {
		return nil
	}
	o, ok := p.typeface.(GlyphOutliner)
	if !ok {
		return nil
	}
	width, _ := p.MeasureText(text)
	x += p.alignOffset(width)

	path := model.NewPath()
	for _, r := range text {
		x += o.AppendOutline(path, r, p.TextSize, x, y) * p.TextScaleX
	}
	return path
}

// SetColor sets Color from a straight-alpha document color.
func (p *Paint) SetColor(c model.Color) {
	p.Color = premultiplied(c)
}
