package ggsvg

import (
	"testing"

	"github.com/gogpu/ggsvg/model"
	"github.com/gogpu/ggsvg/native"
)

func TestNewDefaults(t *testing.T) {
	l, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	if l.Settings() == nil {
		t.Fatal("Settings() is nil")
	}
	if _, ok := l.catalog.(*native.FontManager); !ok || l.ownsFonts == nil {
		t.Errorf("default catalog = %T, want an owned *native.FontManager", l.catalog)
	}
	if _, ok := l.builder.(*native.Translator); !ok {
		t.Errorf("default builder = %T, want *native.Translator", l.builder)
	}
}

func TestNewOptions(t *testing.T) {
	cat := &countingCatalog{style: newFakeTypeface("Sans", "a")}
	b := newCountingBuilder(cat)
	s := NewSettings()

	l, err := New(WithCatalog(cat), WithBuilder(b), WithSettings(s))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	if l.Settings() != s {
		t.Error("WithSettings not applied")
	}
	if l.ownsFonts != nil {
		t.Error("loader took ownership of a caller's catalog")
	}
	l.CachedPaint(model.NewPaint())
	if b.builds.Load() != 1 {
		t.Errorf("WithBuilder not applied: builds = %d", b.builds.Load())
	}
	if l.ResolveByStyle(native.DefaultDescriptor()) == nil || cat.styleCalls.Load() == 0 {
		t.Error("WithCatalog not applied")
	}
}

func TestSharedSettings(t *testing.T) {
	s := NewSettings()
	var loaders []*AssetLoader
	var catalogs []*countingCatalog
	for range 2 {
		cat := &countingCatalog{}
		l, err := New(WithCatalog(cat), WithBuilder(newCountingBuilder(cat)), WithSettings(s))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		defer l.Close()
		loaders = append(loaders, l)
		catalogs = append(catalogs, cat)
	}

	d := native.DefaultDescriptor()
	for _, l := range loaders {
		l.ResolveByCharacter(d, 'x')
	}
	s.Invalidate()
	for _, l := range loaders {
		l.ResolveByCharacter(d, 'x')
	}
	for i, cat := range catalogs {
		if n := cat.charCalls.Load(); n != 2 {
			t.Errorf("loader %d: catalog queried %d times, want 2", i, n)
		}
	}
}
