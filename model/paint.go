package model

// Paint represents the styling information for drawing geometry and text.
//
// Paint is mutable. Reference fields (Typeface, Color, Shader and the
// filters) are shared by Clone for the effect types and copied for the
// value-like Typeface and Color.
type Paint struct {
	Style       PaintStyle
	IsAntialias bool

	// StrokeWidth is the width of strokes. Zero means hairline.
	StrokeWidth float32
	StrokeCap   StrokeCap
	StrokeJoin  StrokeJoin
	StrokeMiter float32

	// TextSize is the em size in user units.
	TextSize      float32
	TextAlign     TextAlign
	TextEncoding  TextEncoding
	LcdRenderText bool
	SubpixelText  bool

	BlendMode     BlendMode
	FilterQuality FilterQuality

	// Typeface is the requested font. Nil means the default typeface.
	Typeface *Typeface
	// Color is the flat paint color. Nil means opaque black.
	Color *Color

	Shader      *Shader
	ColorFilter *ColorFilter
	ImageFilter *ImageFilter
	PathEffect  *PathEffect
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	return &Paint{
		Style:        PaintStyleFill,
		IsAntialias:  true,
		StrokeWidth:  0,
		StrokeCap:    StrokeCapButt,
		StrokeJoin:   StrokeJoinMiter,
		StrokeMiter:  4,
		TextSize:     12,
		TextAlign:    TextAlignLeft,
		TextEncoding: TextEncodingUTF8,
		BlendMode:    BlendModeSrcOver,
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	c := *p
	c.Typeface = p.Typeface.Clone()
	if p.Color != nil {
		col := *p.Color
		c.Color = &col
	}
	return &c
}

// SetColor sets the flat paint color.
func (p *Paint) SetColor(c Color) {
	p.Color = &c
}

// EffectiveColor returns the paint color, defaulting to opaque black.
func (p *Paint) EffectiveColor() Color {
	if p.Color == nil {
		return Black
	}
	return *p.Color
}
