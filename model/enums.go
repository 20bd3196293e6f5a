package model

// PaintStyle selects whether geometry is filled, stroked, or both.
type PaintStyle uint8

const (
	// PaintStyleFill fills the interior of geometry.
	PaintStyleFill PaintStyle = iota
	// PaintStyleStroke strokes the outline of geometry.
	PaintStyleStroke
	// PaintStyleStrokeAndFill fills and strokes.
	PaintStyleStrokeAndFill
)

// StrokeCap specifies the shape of line endpoints.
type StrokeCap uint8

const (
	// StrokeCapButt specifies a flat line cap.
	StrokeCapButt StrokeCap = iota
	// StrokeCapRound specifies a rounded line cap.
	StrokeCapRound
	// StrokeCapSquare specifies a square line cap.
	StrokeCapSquare
)

// StrokeJoin specifies the shape of line joins.
type StrokeJoin uint8

const (
	// StrokeJoinMiter specifies a sharp (mitered) join.
	StrokeJoinMiter StrokeJoin = iota
	// StrokeJoinRound specifies a rounded join.
	StrokeJoinRound
	// StrokeJoinBevel specifies a beveled join.
	StrokeJoinBevel
)

// TextAlign is the horizontal alignment of text relative to its origin.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextEncoding describes how the bytes handed to a paint encode text.
type TextEncoding uint8

const (
	TextEncodingUTF8 TextEncoding = iota
	TextEncodingUTF16
	TextEncodingUTF32
	TextEncodingGlyphID
)

// String returns the encoding name.
func (e TextEncoding) String() string {
	switch e {
	case TextEncodingUTF8:
		return "UTF-8"
	case TextEncodingUTF16:
		return "UTF-16"
	case TextEncodingUTF32:
		return "UTF-32"
	case TextEncodingGlyphID:
		return "GlyphID"
	default:
		return "Unknown"
	}
}

// BlendMode is the compositing operator applied when drawing.
type BlendMode uint8

// Porter-Duff operators first, then separable blend modes.
const (
	BlendModeSrcOver BlendMode = iota
	BlendModeClear
	BlendModeSrc
	BlendModeDst
	BlendModeDstOver
	BlendModeSrcIn
	BlendModeDstIn
	BlendModeSrcOut
	BlendModeDstOut
	BlendModeSrcATop
	BlendModeDstATop
	BlendModeXor
	BlendModePlus
	BlendModeModulate
	BlendModeScreen
	BlendModeMultiply
	BlendModeDarken
	BlendModeLighten
)

// FilterQuality controls image sampling quality.
type FilterQuality uint8

const (
	FilterQualityNone FilterQuality = iota
	FilterQualityLow
	FilterQualityMedium
	FilterQualityHigh
)

// FontWeight is a CSS-style font weight in the range 100..1000.
type FontWeight int

const (
	FontWeightInvisible  FontWeight = 0
	FontWeightThin       FontWeight = 100
	FontWeightExtraLight FontWeight = 200
	FontWeightLight      FontWeight = 300
	FontWeightNormal     FontWeight = 400
	FontWeightMedium     FontWeight = 500
	FontWeightSemiBold   FontWeight = 600
	FontWeightBold       FontWeight = 700
	FontWeightExtraBold  FontWeight = 800
	FontWeightBlack      FontWeight = 900
	FontWeightExtraBlack FontWeight = 1000
)

// FontWidth is a font stretch class, 1 (ultra condensed) to 9 (ultra expanded).
type FontWidth int

const (
	FontWidthUltraCondensed FontWidth = iota + 1
	FontWidthExtraCondensed
	FontWidthCondensed
	FontWidthSemiCondensed
	FontWidthNormal
	FontWidthSemiExpanded
	FontWidthExpanded
	FontWidthExtraExpanded
	FontWidthUltraExpanded
)

// FontSlant is the posture of a font.
type FontSlant uint8

const (
	FontSlantUpright FontSlant = iota
	FontSlantItalic
	FontSlantOblique
)

// String returns the CSS keyword for the slant.
func (s FontSlant) String() string {
	switch s {
	case FontSlantUpright:
		return "normal"
	case FontSlantItalic:
		return "italic"
	case FontSlantOblique:
		return "oblique"
	default:
		return "unknown"
	}
}
