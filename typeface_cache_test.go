package ggsvg

import (
	"fmt"
	"testing"

	"github.com/gogpu/ggsvg/native"
	"github.com/gogpu/ggsvg/provider"
)

func providers(ps ...provider.Provider) func() []provider.Provider {
	return func() []provider.Provider { return ps }
}

func TestResolveByCharacterCachesNoMatch(t *testing.T) {
	cat := &countingCatalog{}
	c := NewTypefaceCache(cat, nil)
	d := native.DefaultDescriptor()

	for i := range 3 {
		if got := c.ResolveByCharacter(d, '中'); got != nil {
			t.Fatalf("call %d: got %v, want nil", i, got)
		}
	}
	if n := cat.charCalls.Load(); n != 1 {
		t.Errorf("catalog queried %d times, want 1", n)
	}
}

func TestResolveByCharacterReusesHit(t *testing.T) {
	tf := newFakeTypeface("Sans", "a")
	cat := &countingCatalog{fallbacks: []native.Typeface{tf}}
	c := NewTypefaceCache(cat, nil)
	d := native.DefaultDescriptor()

	first := c.ResolveByCharacter(d, 'a')
	second := c.ResolveByCharacter(d, 'a')
	if first != native.Typeface(tf) || second != first {
		t.Fatalf("got %v then %v, want %v twice", first, second, tf)
	}
	if n := cat.charCalls.Load(); n != 1 {
		t.Errorf("catalog queried %d times, want 1", n)
	}
}

func TestResolveByCharacterInvalidHitResolvesAgain(t *testing.T) {
	old := newFakeTypeface("Sans", "a")
	cat := &countingCatalog{fallbacks: []native.Typeface{old}}
	c := NewTypefaceCache(cat, nil)
	d := native.DefaultDescriptor()

	c.ResolveByCharacter(d, 'a')
	old.closed.Store(true)

	fresh := newFakeTypeface("Sans", "a")
	cat.fallbacks = []native.Typeface{fresh}
	if got := c.ResolveByCharacter(d, 'a'); got != native.Typeface(fresh) {
		t.Errorf("got %v, want the fresh typeface", got)
	}
	if n := cat.charCalls.Load(); n != 2 {
		t.Errorf("catalog queried %d times, want 2", n)
	}
}

func TestResolveByCharacterProviderOrder(t *testing.T) {
	latin := newFakeTypeface("Latin", "abc")
	cjk := newFakeTypeface("CJK", "中")
	system := newFakeTypeface("System", "abc中z")

	p1 := &fakeProvider{tf: latin}
	p2 := &fakeProvider{tf: cjk}
	cat := &countingCatalog{fallbacks: []native.Typeface{system}}
	c := NewTypefaceCache(cat, providers(p1, p2))
	d := native.DefaultDescriptor()

	tests := []struct {
		r    rune
		want native.Typeface
	}{
		{'a', latin},
		{'中', cjk},
		{'z', system},
		{'ж', nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			if got := c.ResolveByCharacter(d, tt.r); got != tt.want {
				t.Errorf("ResolveByCharacter(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestResolveByCharacterDefaultFamily(t *testing.T) {
	tf := newFakeTypeface("Brand", "a")
	p := &fakeProvider{family: provider.DefaultFamily, tf: tf}
	c := NewTypefaceCache(nil, providers(p))

	if got := c.ResolveByCharacter(native.DefaultDescriptor(), 'a'); got != native.Typeface(tf) {
		t.Errorf("unnamed family: got %v, want provider default", got)
	}

	named := native.DefaultDescriptor()
	named.Family = "Other"
	if got := c.ResolveByCharacter(named, 'a'); got != nil {
		t.Errorf("named family: got %v, want nil", got)
	}
}

func TestResolveProviderFamilyCached(t *testing.T) {
	tf := newFakeTypeface("Brand", "a")
	p := &fakeProvider{family: "Brand", tf: tf}
	c := NewTypefaceCache(nil, nil)
	d := native.DefaultDescriptor()

	for range 3 {
		if got := c.ResolveProviderFamily(p, "Brand", d); got != native.Typeface(tf) {
			t.Fatalf("got %v, want %v", got, tf)
		}
		if got := c.ResolveProviderFamily(p, "Missing", d); got != nil {
			t.Fatalf("got %v, want nil", got)
		}
	}
	if n := p.calls.Load(); n != 2 {
		t.Errorf("provider queried %d times, want 2", n)
	}

	tf.closed.Store(true)
	if got := c.ResolveProviderFamily(p, "Brand", d); got != nil {
		t.Errorf("closed typeface returned: %v", got)
	}
	if n := p.calls.Load(); n != 3 {
		t.Errorf("provider queried %d times after invalidation, want 3", n)
	}
}

func TestResolveByCharacterBounded(t *testing.T) {
	c := NewTypefaceCache(&countingCatalog{}, nil)
	d := native.DefaultDescriptor()

	for r := rune(0x4E00); r < 0x4E00+3*MatchCharacterCacheLimit; r++ {
		c.ResolveByCharacter(d, r)
		if chars, _ := c.Len(); chars > MatchCharacterCacheLimit {
			t.Fatalf("after %U: %d entries, limit %d", r, chars, MatchCharacterCacheLimit)
		}
	}
	if chars, _ := c.Stats(); chars.Clears == 0 {
		t.Error("cache was never cleared")
	}
}

func TestResolveProviderFamilyBounded(t *testing.T) {
	c := NewTypefaceCache(nil, nil)
	p := &fakeProvider{}
	d := native.DefaultDescriptor()

	for i := range 2 * ProviderTypefaceCacheLimit {
		c.ResolveProviderFamily(p, fmt.Sprintf("family-%d", i), d)
		if _, families := c.Len(); families > ProviderTypefaceCacheLimit {
			t.Fatalf("after %d lookups: %d entries", i+1, families)
		}
	}
}

func TestResolveByStyle(t *testing.T) {
	tf := newFakeTypeface("Sans", "")
	cat := &countingCatalog{style: tf}
	c := NewTypefaceCache(cat, nil)

	if got := c.ResolveByStyle(native.DefaultDescriptor()); got != native.Typeface(tf) {
		t.Errorf("got %v, want %v", got, tf)
	}
	tf.closed.Store(true)
	if got := c.ResolveByStyle(native.DefaultDescriptor()); got != nil {
		t.Errorf("invalid typeface returned: %v", got)
	}
	if got := NewTypefaceCache(nil, nil).ResolveByStyle(native.DefaultDescriptor()); got != nil {
		t.Errorf("no catalog: got %v", got)
	}
}
