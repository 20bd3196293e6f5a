package native

import "errors"

// Sentinel errors for the native package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("native: empty font data")

	// ErrUnsupportedEncoding is returned when text bytes cannot be decoded
	// with the requested encoding.
	ErrUnsupportedEncoding = errors.New("native: unsupported text encoding")

	// ErrNoFonts is returned when a font source contained no usable font.
	ErrNoFonts = errors.New("native: no usable fonts")
)
