package native

import "github.com/gogpu/ggsvg/model"

// UnicodeRange represents a contiguous range of code points.
type UnicodeRange struct {
	Start rune
	End   rune
}

// Contains reports whether the rune is in the range.
func (ur UnicodeRange) Contains(r rune) bool {
	return r >= ur.Start && r <= ur.End
}

// Common Unicode ranges for restricting typefaces.
var (
	RangeBasicLatin = UnicodeRange{0x0000, 0x007F}
	RangeLatin1Sup  = UnicodeRange{0x0080, 0x00FF}
	RangeLatinExtA  = UnicodeRange{0x0100, 0x017F}
	RangeGreek      = UnicodeRange{0x0370, 0x03FF}
	RangeCyrillic   = UnicodeRange{0x0400, 0x04FF}
	RangeHebrew     = UnicodeRange{0x0590, 0x05FF}
	RangeArabic     = UnicodeRange{0x0600, 0x06FF}
	RangeHiragana   = UnicodeRange{0x3040, 0x309F}
	RangeKatakana   = UnicodeRange{0x30A0, 0x30FF}
	RangeCJKUnified = UnicodeRange{0x4E00, 0x9FFF}
	RangeHangul     = UnicodeRange{0xAC00, 0xD7AF}
	RangeEmoji      = UnicodeRange{0x1F600, 0x1F64F}
)

// FilteredTypeface restricts a typeface to specific Unicode ranges.
// Runes outside the ranges report no glyph, which makes fallback resolution
// skip the typeface for them. Measurement and outlines delegate unchanged.
type FilteredTypeface struct {
	Typeface
	ranges []UnicodeRange
}

// NewFilteredTypeface creates a FilteredTypeface.
// If no ranges are specified, all glyphs of t are available.
func NewFilteredTypeface(t Typeface, ranges ...UnicodeRange) *FilteredTypeface {
	return &FilteredTypeface{Typeface: t, ranges: ranges}
}

// HasGlyph reports whether r is in range and covered by the wrapped typeface.
func (f *FilteredTypeface) HasGlyph(r rune) bool {
	return f.inRanges(r) && f.Typeface.HasGlyph(r)
}

// AppendOutline implements GlyphOutliner when the wrapped typeface does.
func (f *FilteredTypeface) AppendOutline(p *model.Path, r rune, size, x, y float32) float32 {
	if o, ok := f.Typeface.(GlyphOutliner); ok {
		return o.AppendOutline(p, r, size, x, y)
	}
	return f.Advance(r, size)
}

func (f *FilteredTypeface) inRanges(r rune) bool {
	if len(f.ranges) == 0 {
		return true
	}
	for _, ur := range f.ranges {
		if ur.Contains(r) {
			return true
		}
	}
	return false
}
