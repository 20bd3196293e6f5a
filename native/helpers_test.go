package native

import (
	"strings"
	"sync/atomic"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggsvg/model"
)

// stubTypeface is a Typeface with fixed metrics: every covered rune
// advances by adv em units per unit of size.
type stubTypeface struct {
	desc    Descriptor
	adv     float32
	covered string
	closed  atomic.Bool
}

func (s *stubTypeface) Descriptor() Descriptor { return s.desc }
func (s *stubTypeface) HasGlyph(r rune) bool   { return strings.ContainsRune(s.covered, r) }
func (s *stubTypeface) Advance(r rune, size float32) float32 {
	return s.adv * size
}
func (s *stubTypeface) Metrics(size float32) model.FontMetrics {
	return model.FontMetrics{Ascent: -0.8 * size, Descent: 0.2 * size}
}
func (s *stubTypeface) Valid() bool { return !s.closed.Load() }

// stubMatcher answers every style query with tf.
type stubMatcher struct{ tf Typeface }

func (m stubMatcher) MatchStyle(Descriptor) Typeface { return m.tf }

func loadGoRegular(t *testing.T) *FontTypeface {
	t.Helper()
	tf, err := NewTypeface(goregular.TTF)
	if err != nil {
		t.Fatalf("NewTypeface(goregular): %v", err)
	}
	return tf
}

func newTestManager(t *testing.T) *FontManager {
	t.Helper()
	m, err := NewFontManager()
	if err != nil {
		t.Fatalf("NewFontManager: %v", err)
	}
	t.Cleanup(m.Close)
	return m
}
