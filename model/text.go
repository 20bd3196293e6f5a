package model

// TypefaceSpan is a maximal run of text drawn with a single typeface.
type TypefaceSpan struct {
	Text string
	// Advance is the measured width of Text.
	Advance float32
	// Typeface is the resolved typeface, or nil when no typeface covers
	// the run and the backend default applies.
	Typeface *Typeface
}

// FontMetrics are vertical metrics at a given text size.
// Ascent is negative (above the baseline), Descent is positive.
type FontMetrics struct {
	Ascent  float32
	Descent float32
	Leading float32
}

// LineHeight returns the baseline-to-baseline distance.
func (m FontMetrics) LineHeight() float32 {
	return m.Descent - m.Ascent + m.Leading
}

// TextCommand draws Text with its origin at (X, Y) using Paint.
// Renderers reuse text commands across frames; caches key on their identity.
type TextCommand struct {
	Text  string
	X, Y  float32
	Paint *Paint
}
