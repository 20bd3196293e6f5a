// Package native is the backend surface the caching layer talks to.
//
// It provides loaded typefaces over github.com/go-text/typesetting, a font
// catalog (FontManager) over fontscan.FontMap, and the native draw-state
// objects built from document paints: Paint and TextBlob.
//
// Native objects own resources and are released explicitly. Release is
// idempotent; a released object reports Valid() == false and must not be
// used for drawing again.
//
// # Thread Safety
//
// FontTypeface, FontManager and Translator are safe for concurrent use.
// Paint and TextBlob are not: a Paint is safe to read concurrently but
// setters such as SetTypeface require exclusive access.
package native
