// Package ggsvg is the resource caching and resolution layer of an SVG
// renderer: it resolves typefaces, builds native paints from document
// paints, and reuses those expensive native objects safely.
//
// # Overview
//
// Documents describe drawing state with mutable model.Paint values that
// are reused across draws. Translating a paint into native draw state is
// expensive, so AssetLoader caches the native paint per source paint
// identity and revalidates it against a structural PaintSignature on every
// lookup: mutate a paint and the next lookup rebuilds it, releasing the
// stale native object exactly once.
//
// Typefaces are resolved per character, consulting the configured
// typeface providers in order before the system catalog. Outcomes,
// including "no typeface covers this character", are memoized in bounded
// caches that are dropped whenever the provider configuration changes.
//
// # Quick Start
//
//	loader, err := ggsvg.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer loader.Close()
//
//	paint := model.NewPaint()
//	paint.TextSize = 16
//	for _, span := range loader.FindTypefaces("Hello, 世界", paint) {
//	    fmt.Println(span.Text, span.Advance)
//	}
//
// # Ownership
//
// Native objects returned by AssetLoader (CachedPaint, TextBlob) are
// borrowed from its caches. Callers must not release them and must not keep
// them across a change of typeface providers, which releases every cached
// native object.
//
// # Thread Safety
//
// AssetLoader is safe for concurrent use. A source paint must not be
// mutated while a call that uses it is in progress.
package ggsvg
