package provider

import (
	"errors"
	"testing"
	"testing/fstest"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/gogpu/ggsvg/model"
	"github.com/gogpu/ggsvg/native"
)

type fakeTypeface struct{ family string }

func (f fakeTypeface) Descriptor() native.Descriptor   { return native.Descriptor{Family: f.family} }
func (fakeTypeface) HasGlyph(rune) bool                { return true }
func (fakeTypeface) Advance(rune, float32) float32     { return 1 }
func (fakeTypeface) Metrics(float32) model.FontMetrics { return model.FontMetrics{} }
func (fakeTypeface) Valid() bool                       { return true }

var (
	_ Provider  = (*Custom)(nil)
	_ Versioned = (*Custom)(nil)
	_ Provider  = (*FontManager)(nil)
	_ Versioned = (*FontManager)(nil)
)

func TestCustomLookupFamily(t *testing.T) {
	tf := fakeTypeface{"Brand"}
	c := NewCustom("Brand Sans", tf)

	tests := []struct {
		family string
		want   bool
	}{
		{"Brand Sans", true},
		{"BRAND SANS", true},
		{"brand sans", true},
		{"Other", false},
		{DefaultFamily, false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			got := c.LookupFamily(native.Descriptor{Family: tt.family})
			if (got != nil) != tt.want {
				t.Errorf("LookupFamily(%q) = %v, want match %v", tt.family, got, tt.want)
			}
		})
	}
}

func TestCustomWithoutFamilyServesAll(t *testing.T) {
	c := NewCustom("", fakeTypeface{"Any"})
	for _, family := range []string{"", DefaultFamily, "Whatever"} {
		if c.LookupFamily(native.Descriptor{Family: family}) == nil {
			t.Errorf("LookupFamily(%q) = nil", family)
		}
	}
}

type listProvider struct{ families []string }

func (listProvider) LookupFamily(native.Descriptor) native.Typeface { return nil }

func TestComparable(t *testing.T) {
	tests := []struct {
		name string
		p    Provider
		want bool
	}{
		{"nil", nil, false},
		{"pointer", NewCustom("", nil), true},
		{"slice field", listProvider{families: []string{"a"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Comparable(tt.p); got != tt.want {
				t.Errorf("Comparable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCustomRanges(t *testing.T) {
	c := NewCustom("", fakeTypeface{"CJK"}, native.RangeCJKUnified, native.RangeHiragana)
	tf := c.LookupFamily(native.Descriptor{Family: DefaultFamily})
	if tf == nil {
		t.Fatal("LookupFamily returned nil")
	}
	if _, ok := tf.(*native.FilteredTypeface); !ok {
		t.Errorf("ranged binding returned %T, want *native.FilteredTypeface", tf)
	}

	tests := []struct {
		r    rune
		want bool
	}{
		{'中', true},
		{'あ', true},
		{'A', false},
		{'ж', false},
	}
	for _, tt := range tests {
		if got := tf.HasGlyph(tt.r); got != tt.want {
			t.Errorf("HasGlyph(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}

	c.Bind("", fakeTypeface{"All"})
	if !c.LookupFamily(native.Descriptor{}).HasGlyph('A') {
		t.Error("rebinding without ranges kept the old filter")
	}
}

func TestCustomBindBumpsVersion(t *testing.T) {
	c := NewCustom("A", fakeTypeface{"A"})
	v := c.Version()

	c.Bind("B", fakeTypeface{"B"})
	if c.Version() <= v {
		t.Error("Bind did not bump the version")
	}
	if c.LookupFamily(native.Descriptor{Family: "A"}) != nil {
		t.Error("old binding still served")
	}

	c.Bind("B", nil)
	if c.LookupFamily(native.Descriptor{Family: "B"}) != nil {
		t.Error("nil binding served a typeface")
	}
}

func TestFontManagerProvider(t *testing.T) {
	m, err := native.NewFontManager()
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()
	p := NewFontManager(m)

	if p.LookupFamily(native.Descriptor{Family: "Go", Weight: 400, Width: 5}) == nil {
		t.Error("LookupFamily(Go) = nil")
	}
	if p.LookupFamily(native.Descriptor{Family: "Not Installed", Weight: 400, Width: 5}) != nil {
		t.Error("LookupFamily(unknown) matched")
	}
	if p.LookupFamily(native.Descriptor{Family: DefaultFamily, Weight: 400, Width: 5}) == nil {
		t.Error("LookupFamily(Default) should return the best face")
	}

	v := p.Version()
	if err := m.AddFont(gomono.TTF, "Code"); err != nil {
		t.Fatal(err)
	}
	if p.Version() <= v {
		t.Error("provider version did not follow the manager")
	}

	p.Close() // not owned: must not close m
	if m.MatchStyle(native.DefaultDescriptor()) == nil {
		t.Error("Close on a borrowed manager closed it")
	}
}

func TestNewFS(t *testing.T) {
	fsys := fstest.MapFS{
		"assets/fonts/mono.ttf": {Data: gomono.TTF},
		"assets/fonts/bad.ttf":  {Data: []byte("bad")},
	}
	p, err := NewFS(fsys, "assets/fonts")
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	tf := p.LookupFamily(native.Descriptor{Family: "Go Mono", Weight: 400, Width: 5})
	if tf == nil {
		t.Fatal("font from FS not served")
	}
	p.Close()
	if tf.Valid() {
		t.Error("owned manager not closed")
	}

	_, err = NewFS(fstest.MapFS{"empty/x.txt": {Data: nil}}, "empty")
	if !errors.Is(err, native.ErrNoFonts) {
		t.Errorf("NewFS(no fonts) error = %v, want ErrNoFonts", err)
	}
}
