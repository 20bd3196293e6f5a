package ggsvg

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/ggsvg/model"
	"github.com/gogpu/ggsvg/native"
)

func newTestSegmenter() (*Segmenter, *countingBuilder) {
	latin := newFakeTypeface("Latin", "ABC ")
	cjk := newFakeTypeface("CJK", "中文")
	cat := &countingCatalog{style: latin, fallbacks: []native.Typeface{latin, cjk}}
	b := newCountingBuilder(cat)
	return NewSegmenter(b, NewTypefaceCache(cat, nil)), b
}

func family(name string) *model.Typeface {
	d := native.DefaultDescriptor()
	d.Family = name
	return d.Typeface()
}

func TestFindTypefaces(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []model.TypefaceSpan
	}{
		{"empty", "", nil},
		{"single run", "ABC", []model.TypefaceSpan{
			{Text: "ABC", Advance: 18, Typeface: family("Latin")},
		}},
		{"mixed scripts", "AB中C", []model.TypefaceSpan{
			{Text: "AB", Advance: 12, Typeface: family("Latin")},
			{Text: "中", Advance: 6, Typeface: family("CJK")},
			{Text: "C", Advance: 6, Typeface: family("Latin")},
		}},
		{"adjacent cjk", "中文A", []model.TypefaceSpan{
			{Text: "中文", Advance: 12, Typeface: family("CJK")},
			{Text: "A", Advance: 6, Typeface: family("Latin")},
		}},
		{"uncovered rune", "AжB", []model.TypefaceSpan{
			{Text: "A", Advance: 6, Typeface: family("Latin")},
			{Text: "ж", Advance: 6},
			{Text: "B", Advance: 6, Typeface: family("Latin")},
		}},
		{"only uncovered", "жж", []model.TypefaceSpan{
			{Text: "жж", Advance: 12},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSegmenter()
			got := s.FindTypefaces(tt.text, model.NewPaint())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FindTypefaces(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestFindTypefacesReleasesRunningPaint(t *testing.T) {
	s, b := newTestSegmenter()
	s.FindTypefaces("AB中C", model.NewPaint())

	if b.builds.Load() != 1 || b.releases.Load() != 1 {
		t.Errorf("builds = %d releases = %d, want 1 and 1", b.builds.Load(), b.releases.Load())
	}
}

func TestFindTypefacesUnbuildablePaint(t *testing.T) {
	s, _ := newTestSegmenter()
	bad := model.NewPaint()
	bad.StrokeWidth = -1

	if got := s.FindTypefaces("ABC", bad); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	if got := s.FindTypefaces("ABC", nil); got != nil {
		t.Errorf("nil paint: got %v, want nil", got)
	}
}
