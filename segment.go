package ggsvg

import (
	"github.com/gogpu/ggsvg/model"
	"github.com/gogpu/ggsvg/native"
)

// Segmenter splits text into runs that each render with one typeface.
type Segmenter struct {
	builder   PaintBuilder
	typefaces *TypefaceCache
}

// NewSegmenter creates a segmenter building measuring paints with b and
// resolving per-character typefaces through typefaces.
func NewSegmenter(b PaintBuilder, typefaces *TypefaceCache) *Segmenter {
	return &Segmenter{builder: b, typefaces: typefaces}
}

// FindTypefaces returns the maximal runs of text sharing a resolved
// typeface, in order, each with its measured advance.
//
// Every rune is resolved in the style of paint's typeface. A span whose
// runes no typeface covers has a nil Typeface and is measured with the
// paint's own typeface. Empty text, a nil paint or a paint that cannot be
// built yield no spans.
func (s *Segmenter) FindTypefaces(text string, paint *model.Paint) []model.TypefaceSpan {
	if text == "" || paint == nil {
		return nil
	}
	running := s.builder.BuildPaint(paint)
	if running == nil {
		return nil
	}
	defer running.Release()

	want := native.DescriptorOf(paint.Typeface)
	base := running.Typeface()

	var (
		spans   []model.TypefaceSpan
		current native.Typeface
		start   int
	)
	emit := func(end int) {
		measure := current
		if measure == nil {
			measure = base
		}
		running.SetTypeface(measure)
		width, _ := running.MeasureText(text[start:end])

		span := model.TypefaceSpan{Text: text[start:end], Advance: width}
		if current != nil {
			span.Typeface = current.Descriptor().Typeface()
		}
		spans = append(spans, span)
	}

	for i, r := range text {
		t := s.typefaces.ResolveByCharacter(want, r)
		if i == 0 {
			current = t
			continue
		}
		if !native.SameDescriptor(current, t) {
			emit(i)
			current = t
			start = i
		}
	}
	emit(len(text))
	return spans
}
