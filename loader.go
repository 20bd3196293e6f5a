package ggsvg

import (
	"fmt"
	"sync"

	"github.com/gogpu/ggsvg/cache"
	"github.com/gogpu/ggsvg/model"
	"github.com/gogpu/ggsvg/native"
	"github.com/gogpu/ggsvg/provider"
)

// AssetLoader resolves fonts and owns the native paints and text blobs an
// SVG renderer draws with.
//
// Every entry point first checks whether the typeface provider
// configuration changed and, if so, drops all cached state.
//
// AssetLoader is safe for concurrent use. Native objects it returns are
// borrowed: they stay valid until the loader drops them on a provider
// change, Clear or Close, and must not be released by the caller.
type AssetLoader struct {
	settings  *Settings
	catalog   Catalog
	ownsFonts *native.FontManager
	builder   PaintBuilder

	tracker   *ProviderTracker
	typefaces *TypefaceCache
	paints    *PaintCache
	blobs     *TextBlobCache
	segmenter *Segmenter

	closeOnce sync.Once
}

// Stats reports the state of an AssetLoader's caches.
type Stats struct {
	Characters cache.Stats
	Families   cache.Stats
	Paints     cache.Stats
	TextBlobs  cache.Stats
}

// New creates an asset loader.
//
// Without WithCatalog the loader creates a native.FontManager holding the
// embedded Go fonts; New fails only if that manager cannot be created.
func New(opts ...Option) (*AssetLoader, error) {
	cfg := defaultLoaderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &AssetLoader{
		settings: cfg.settings,
		catalog:  cfg.catalog,
		builder:  cfg.builder,
	}
	if l.settings == nil {
		l.settings = NewSettings()
	}
	if l.catalog == nil {
		m, err := native.NewFontManager()
		if err != nil {
			return nil, fmt.Errorf("ggsvg: create font manager: %w", err)
		}
		l.catalog = m
		l.ownsFonts = m
	}
	if l.builder == nil {
		l.builder = native.NewTranslator(l.catalog)
	}

	var watch []provider.Versioned
	if v, ok := l.catalog.(provider.Versioned); ok {
		watch = append(watch, v)
	}
	l.tracker = newProviderTracker(l.settings, watch, l.dropCaches)
	l.typefaces = NewTypefaceCache(l.catalog, l.tracker.Providers)
	l.paints = NewPaintCache(l.builder, l.tracker)
	l.blobs = NewTextBlobCache(l.paints)
	l.segmenter = NewSegmenter(l.builder, l.typefaces)
	return l, nil
}

// dropCaches releases every cached native object and forgets every
// typeface resolution. Blobs go first since they reference typefaces
// resolved for the paints.
func (l *AssetLoader) dropCaches() {
	l.blobs.Clear()
	l.paints.Clear()
	l.typefaces.Clear()
}

func (l *AssetLoader) refresh() {
	l.tracker.RefreshIfChanged()
}

// Settings returns the provider settings the loader tracks.
func (l *AssetLoader) Settings() *Settings {
	return l.settings
}

// FindTypefaces splits text into runs that each render with one typeface
// in the style of paint. See Segmenter.FindTypefaces.
func (l *AssetLoader) FindTypefaces(text string, paint *model.Paint) []model.TypefaceSpan {
	l.refresh()
	return l.segmenter.FindTypefaces(text, paint)
}

// FontMetrics returns the vertical font metrics of paint, or zero metrics
// when paint cannot be built.
func (l *AssetLoader) FontMetrics(paint *model.Paint) model.FontMetrics {
	l.refresh()
	if paint == nil {
		return model.FontMetrics{}
	}
	np := l.builder.BuildPaint(paint)
	if np == nil {
		return model.FontMetrics{}
	}
	defer np.Release()

	return np.FontMetrics()
}

// MeasureText returns the advance width and bounds of text drawn with
// paint, or zeros when paint cannot be built.
func (l *AssetLoader) MeasureText(text string, paint *model.Paint) (float32, model.Rect) {
	l.refresh()
	np := l.paints.getOrBuild(paint)
	if np == nil {
		return 0, model.Rect{}
	}
	return np.MeasureText(text)
}

// MeasureBytes decodes b according to paint's TextEncoding and measures
// it like MeasureText. It fails only when b cannot be decoded.
func (l *AssetLoader) MeasureBytes(b []byte, paint *model.Paint) (float32, model.Rect, error) {
	l.refresh()
	np := l.paints.getOrBuild(paint)
	if np == nil {
		return 0, model.Rect{}, nil
	}
	return np.MeasureBytes(b)
}

// TextPath returns the outline of text drawn with paint at (x, y), or nil
// when no outline can be produced.
func (l *AssetLoader) TextPath(text string, paint *model.Paint, x, y float32) *model.Path {
	l.refresh()
	np := l.paints.getOrBuild(paint)
	if np == nil {
		return nil
	}
	return np.TextPath(text, x, y)
}

// CachedPaint returns the native paint for paint, or nil when it cannot be
// built.
func (l *AssetLoader) CachedPaint(paint *model.Paint) *native.Paint {
	l.refresh()
	return l.paints.getOrBuild(paint)
}

// TextBlob returns the laid out text of cmd, or nil.
func (l *AssetLoader) TextBlob(cmd *model.TextCommand) *native.TextBlob {
	l.refresh()
	return l.blobs.getOrBuild(cmd)
}

// ResolveByStyle returns the catalog typeface closest to d, or nil.
func (l *AssetLoader) ResolveByStyle(d native.Descriptor) native.Typeface {
	l.refresh()
	return l.typefaces.ResolveByStyle(d)
}

// ResolveByCharacter returns a typeface in the style of d covering r, or
// nil.
func (l *AssetLoader) ResolveByCharacter(d native.Descriptor, r rune) native.Typeface {
	l.refresh()
	return l.typefaces.ResolveByCharacter(d, r)
}

// ResolveProviderFamily returns the typeface p supplies for family in the
// style of d, or nil.
func (l *AssetLoader) ResolveProviderFamily(p provider.Provider, family string, d native.Descriptor) native.Typeface {
	l.refresh()
	return l.typefaces.ResolveProviderFamily(p, family, d)
}

// Stats returns statistics of every cache.
func (l *AssetLoader) Stats() Stats {
	chars, families := l.typefaces.Stats()
	return Stats{
		Characters: chars,
		Families:   families,
		Paints:     l.paints.Stats(),
		TextBlobs:  l.blobs.Stats(),
	}
}

// Trim releases paints and blobs whose source objects were garbage
// collected.
func (l *AssetLoader) Trim() {
	l.blobs.Trim()
	l.paints.Trim()
}

// Clear releases every cached native object and forgets every typeface
// resolution.
func (l *AssetLoader) Clear() {
	l.dropCaches()
}

// Close releases all cached state and the font manager the loader created.
// The loader must not be used afterwards.
func (l *AssetLoader) Close() {
	l.closeOnce.Do(func() {
		l.dropCaches()
		if l.ownsFonts != nil {
			l.ownsFonts.Close()
		}
	})
}
