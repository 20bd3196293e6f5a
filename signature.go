package ggsvg

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/gogpu/ggsvg/model"
	"github.com/gogpu/ggsvg/native"
	"github.com/gogpu/ggsvg/provider"
)

// Cache keys and signatures compare with ==. Float fields are stored as
// IEEE 754 bit patterns so equality is exact and reflexive, NaN included.
// Pointer fields compare by identity.
//
// Hash methods feed only value fields into FNV-1a; pointer identities are
// left out, which keeps equal keys hashing equally.

// TypefaceKey identifies a typeface request by family and style.
type TypefaceKey struct {
	Family string
	Weight model.FontWeight
	Width  model.FontWidth
	Slant  model.FontSlant
}

// NewTypefaceKey creates the key of d.
func NewTypefaceKey(d native.Descriptor) TypefaceKey {
	return TypefaceKey{Family: d.Family, Weight: d.Weight, Width: d.Width, Slant: d.Slant}
}

// Descriptor returns the descriptor k was created from.
func (k TypefaceKey) Descriptor() native.Descriptor {
	return native.Descriptor{Family: k.Family, Weight: k.Weight, Width: k.Width, Slant: k.Slant}
}

func (k TypefaceKey) appendBytes(buf []byte) []byte {
	buf = append(buf, k.Family...)
	buf = append(buf, 0)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(k.Weight))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(k.Width))
	return append(buf, byte(k.Slant))
}

// Hash returns an FNV-1a hash of k.
func (k TypefaceKey) Hash() uint64 {
	var scratch [64]byte
	return hashBytes(k.appendBytes(scratch[:0]))
}

// MatchCharacterKey identifies a per-character typeface resolution.
type MatchCharacterKey struct {
	TypefaceKey
	Char rune
}

// NewMatchCharacterKey creates the key for resolving r in the style of d.
func NewMatchCharacterKey(d native.Descriptor, r rune) MatchCharacterKey {
	return MatchCharacterKey{TypefaceKey: NewTypefaceKey(d), Char: r}
}

// Hash returns an FNV-1a hash of k.
func (k MatchCharacterKey) Hash() uint64 {
	var scratch [64]byte
	buf := k.TypefaceKey.appendBytes(scratch[:0])
	return hashBytes(binary.LittleEndian.AppendUint32(buf, uint32(k.Char)))
}

// ProviderTypefaceKey identifies a family lookup on one provider.
// Providers compare by identity, so implementations must be comparable;
// pointer types are.
type ProviderTypefaceKey struct {
	Provider provider.Provider
	TypefaceKey
}

// NewProviderTypefaceKey creates the key for asking p for family in the
// style of d. The family in d is ignored.
func NewProviderTypefaceKey(p provider.Provider, family string, d native.Descriptor) ProviderTypefaceKey {
	k := ProviderTypefaceKey{Provider: p, TypefaceKey: NewTypefaceKey(d)}
	k.Family = family
	return k
}

// Hash returns an FNV-1a hash of k without the provider identity.
func (k ProviderTypefaceKey) Hash() uint64 {
	return k.TypefaceKey.Hash()
}

// PaintSignature is a flattened snapshot of every model.Paint field that
// affects the native paint built from it.
type PaintSignature struct {
	Style         model.PaintStyle
	IsAntialias   bool
	StrokeWidth   uint32
	StrokeCap     model.StrokeCap
	StrokeJoin    model.StrokeJoin
	StrokeMiter   uint32
	TextSize      uint32
	TextAlign     model.TextAlign
	TextEncoding  model.TextEncoding
	LcdRenderText bool
	SubpixelText  bool
	BlendMode     model.BlendMode
	FilterQuality model.FilterQuality

	HasTypeface bool
	Typeface    TypefaceKey

	HasColor bool
	Color    model.Color

	Shader      *model.Shader
	ColorFilter *model.ColorFilter
	ImageFilter *model.ImageFilter
	PathEffect  *model.PathEffect
}

// NewPaintSignature snapshots p. A nil paint yields the zero signature.
func NewPaintSignature(p *model.Paint) PaintSignature {
	if p == nil {
		return PaintSignature{}
	}
	s := PaintSignature{
		Style:         p.Style,
		IsAntialias:   p.IsAntialias,
		StrokeWidth:   math.Float32bits(p.StrokeWidth),
		StrokeCap:     p.StrokeCap,
		StrokeJoin:    p.StrokeJoin,
		StrokeMiter:   math.Float32bits(p.StrokeMiter),
		TextSize:      math.Float32bits(p.TextSize),
		TextAlign:     p.TextAlign,
		TextEncoding:  p.TextEncoding,
		LcdRenderText: p.LcdRenderText,
		SubpixelText:  p.SubpixelText,
		BlendMode:     p.BlendMode,
		FilterQuality: p.FilterQuality,
		Shader:        p.Shader,
		ColorFilter:   p.ColorFilter,
		ImageFilter:   p.ImageFilter,
		PathEffect:    p.PathEffect,
	}
	if p.Typeface != nil {
		s.HasTypeface = true
		s.Typeface = NewTypefaceKey(native.DescriptorOf(p.Typeface))
	}
	if p.Color != nil {
		s.HasColor = true
		s.Color = *p.Color
	}
	return s
}

// Hash returns an FNV-1a hash of the value fields of s.
func (s PaintSignature) Hash() uint64 {
	var scratch [96]byte
	buf := scratch[:0]
	buf = append(buf,
		byte(s.Style), b2u(s.IsAntialias), byte(s.StrokeCap), byte(s.StrokeJoin),
		byte(s.TextAlign), byte(s.TextEncoding), b2u(s.LcdRenderText), b2u(s.SubpixelText),
		byte(s.BlendMode), byte(s.FilterQuality), b2u(s.HasTypeface), b2u(s.HasColor),
		s.Color.R, s.Color.G, s.Color.B, s.Color.A,
	)
	buf = binary.LittleEndian.AppendUint32(buf, s.StrokeWidth)
	buf = binary.LittleEndian.AppendUint32(buf, s.StrokeMiter)
	buf = binary.LittleEndian.AppendUint32(buf, s.TextSize)
	buf = s.Typeface.appendBytes(buf)
	return hashBytes(buf)
}

// FontSignature snapshots the text state of a native paint. Cached text
// blobs laid out with a different font signature are stale.
type FontSignature struct {
	// Typeface compares by identity.
	Typeface      native.Typeface
	TextSize      uint32
	TextScaleX    uint32
	TextSkewX     uint32
	TextAlign     model.TextAlign
	LcdRenderText bool
	SubpixelText  bool
	FakeBoldText  bool
}

// NewFontSignature snapshots the text state of p. A nil paint yields the
// zero signature.
func NewFontSignature(p *native.Paint) FontSignature {
	if p == nil {
		return FontSignature{}
	}
	return FontSignature{
		Typeface:      p.Typeface(),
		TextSize:      math.Float32bits(p.TextSize),
		TextScaleX:    math.Float32bits(p.TextScaleX),
		TextSkewX:     math.Float32bits(p.TextSkewX),
		TextAlign:     p.TextAlign,
		LcdRenderText: p.LcdRenderText,
		SubpixelText:  p.SubpixelText,
		FakeBoldText:  p.FakeBoldText,
	}
}

// BlobSignature validates a cached text blob against its draw command.
type BlobSignature struct {
	Font FontSignature
	Text string
	X, Y uint32
}

// NewBlobSignature snapshots cmd as laid out with p.
func NewBlobSignature(cmd *model.TextCommand, p *native.Paint) BlobSignature {
	return BlobSignature{
		Font: NewFontSignature(p),
		Text: cmd.Text,
		X:    math.Float32bits(cmd.X),
		Y:    math.Float32bits(cmd.Y),
	}
}

func b2u(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func hashBytes(b []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(b) // fnv.Write never returns an error
	return h.Sum64()
}
