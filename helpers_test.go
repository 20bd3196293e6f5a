package ggsvg

import (
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gogpu/ggsvg/model"
	"github.com/gogpu/ggsvg/native"
)

// fakeTypeface covers the runes in covered; every rune advances by half
// the em size.
type fakeTypeface struct {
	desc    native.Descriptor
	covered string
	closed  atomic.Bool
}

func newFakeTypeface(family, covered string) *fakeTypeface {
	d := native.DefaultDescriptor()
	d.Family = family
	return &fakeTypeface{desc: d, covered: covered}
}

func (f *fakeTypeface) Descriptor() native.Descriptor { return f.desc }
func (f *fakeTypeface) HasGlyph(r rune) bool          { return strings.ContainsRune(f.covered, r) }
func (f *fakeTypeface) Advance(_ rune, size float32) float32 {
	return size / 2
}
func (f *fakeTypeface) Metrics(size float32) model.FontMetrics {
	return model.FontMetrics{Ascent: -0.8 * size, Descent: 0.2 * size}
}
func (f *fakeTypeface) Valid() bool { return !f.closed.Load() }

// countingCatalog answers style queries with style and character queries
// with the first fallback covering the rune, counting both.
type countingCatalog struct {
	style     native.Typeface
	fallbacks []native.Typeface

	styleCalls atomic.Int64
	charCalls  atomic.Int64
	version    atomic.Uint64
}

func (c *countingCatalog) MatchStyle(native.Descriptor) native.Typeface {
	c.styleCalls.Add(1)
	return c.style
}

func (c *countingCatalog) MatchCharacter(_ native.Descriptor, r rune) native.Typeface {
	c.charCalls.Add(1)
	for _, t := range c.fallbacks {
		if t.HasGlyph(r) {
			return t
		}
	}
	return nil
}

func (c *countingCatalog) Version() uint64 { return c.version.Load() }

// fakeProvider serves tf for family, or for every family when family is
// empty.
type fakeProvider struct {
	family   string
	tf       native.Typeface
	calls    atomic.Int64
	version  atomic.Uint64
	versions atomic.Int64 // Version calls
}

func (p *fakeProvider) LookupFamily(d native.Descriptor) native.Typeface {
	p.calls.Add(1)
	if p.family != "" && !strings.EqualFold(p.family, d.Family) {
		return nil
	}
	return p.tf
}

func (p *fakeProvider) Version() uint64 {
	p.versions.Add(1)
	return p.version.Load()
}

// countingBuilder is a native.Translator that counts paints built and
// released.
type countingBuilder struct {
	tr       *native.Translator
	builds   atomic.Int64
	releases atomic.Int64
	blobs    atomic.Int64
}

func newCountingBuilder(fonts native.StyleMatcher) *countingBuilder {
	b := &countingBuilder{}
	b.tr = native.NewTranslator(fonts,
		native.WithPaintReleaseHook(func(*native.Paint) { b.releases.Add(1) }),
		native.WithTextBlobReleaseHook(func(*native.TextBlob) { b.blobs.Add(1) }),
	)
	return b
}

func (b *countingBuilder) BuildPaint(p *model.Paint) *native.Paint {
	np := b.tr.BuildPaint(p)
	if np != nil {
		b.builds.Add(1)
	}
	return np
}

// newFakeLoader returns a loader over a counting catalog whose style
// match is a fake typeface covering ASCII letters.
func newFakeLoader(t *testing.T, providers ...*fakeProvider) (*AssetLoader, *countingCatalog, *countingBuilder) {
	t.Helper()
	cat := &countingCatalog{style: newFakeTypeface("Sans", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz ")}
	cat.fallbacks = []native.Typeface{cat.style}
	b := newCountingBuilder(cat)

	settings := NewSettings()
	for _, p := range providers {
		settings.SetTypefaceProviders(append(settings.TypefaceProviders(), p)...)
	}
	l, err := New(WithCatalog(cat), WithBuilder(b), WithSettings(settings))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(l.Close)
	return l, cat, b
}
