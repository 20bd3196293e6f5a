// Command ggsvgfonts shows how ggsvg resolves fonts for a piece of text.
//
// It prints the typeface runs the text splits into, their advances and
// the font metrics of the requested style.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/ggsvg"
	"github.com/gogpu/ggsvg/model"
	"github.com/gogpu/ggsvg/native"
	"github.com/gogpu/ggsvg/provider"
)

func main() {
	var (
		text    = flag.String("text", "Hello, 世界!", "text to resolve")
		family  = flag.String("family", "", "preferred font family")
		size    = flag.Float64("size", 16, "text size")
		weight  = flag.Int("weight", int(model.FontWeightNormal), "font weight (100-1000)")
		italic  = flag.Bool("italic", false, "request an italic face")
		fonts   = flag.String("fonts", "", "directory of font files consulted before the catalog")
		custom  = flag.String("font", "", "font file served for every family before the catalog")
		ranges  = flag.String("font-ranges", "", "comma separated ranges the -font file is limited to, e.g. latin,cjk")
		system  = flag.Bool("system", false, "index system fonts")
		outline = flag.Bool("outline", false, "print the bounds of the text outline")
		stats   = flag.Bool("stats", false, "print cache statistics")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		ggsvg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var managerOpts []native.ManagerOption
	if *system {
		managerOpts = append(managerOpts, native.WithSystemFonts(""))
	}
	catalog, err := native.NewFontManager(managerOpts...)
	if err != nil {
		log.Fatalf("Failed to create font manager: %v", err)
	}
	defer catalog.Close()

	settings := ggsvg.NewSettings()
	var providers []provider.Provider
	if *custom != "" {
		data, err := os.ReadFile(*custom)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", *custom, err)
		}
		tf, err := native.NewTypeface(data)
		if err != nil {
			log.Fatalf("Failed to parse %s: %v", *custom, err)
		}
		defer tf.Close()
		rs, err := parseRanges(*ranges)
		if err != nil {
			log.Fatal(err)
		}
		providers = append(providers, provider.NewCustom("", tf, rs...))
	}
	if *fonts != "" {
		dir, err := provider.NewFS(os.DirFS(*fonts), ".")
		if err != nil {
			log.Fatalf("Failed to load fonts from %s: %v", *fonts, err)
		}
		defer dir.Close()
		providers = append(providers, dir)
	}
	settings.SetTypefaceProviders(providers...)

	loader, err := ggsvg.New(ggsvg.WithCatalog(catalog), ggsvg.WithSettings(settings))
	if err != nil {
		log.Fatalf("Failed to create loader: %v", err)
	}
	defer loader.Close()

	paint := model.NewPaint()
	paint.TextSize = float32(*size)
	paint.Typeface = model.NewTypeface(*family)
	paint.Typeface.Weight = model.FontWeight(*weight)
	if *italic {
		paint.Typeface.Slant = model.FontSlantItalic
	}

	m := loader.FontMetrics(paint)
	fmt.Printf("metrics: ascent %.2f descent %.2f leading %.2f line height %.2f\n",
		m.Ascent, m.Descent, m.Leading, m.LineHeight())

	var total float32
	for i, span := range loader.FindTypefaces(*text, paint) {
		name := "(none)"
		if span.Typeface != nil {
			name = fmt.Sprintf("%s %d %s", span.Typeface.FamilyName, span.Typeface.Weight, span.Typeface.Slant)
		}
		fmt.Printf("span %d: %q advance %.2f typeface %s\n", i, span.Text, span.Advance, name)
		total += span.Advance
	}
	fmt.Printf("total advance: %.2f\n", total)

	if *stats {
		st := loader.Stats()
		fmt.Printf("character cache: %d entries, %d hits, %d misses\n",
			st.Characters.Len, st.Characters.Hits, st.Characters.Misses)
		fmt.Printf("family cache: %d entries, %d hits, %d misses\n",
			st.Families.Len, st.Families.Hits, st.Families.Misses)
		n, hits, misses := catalog.StyleCacheStats()
		fmt.Printf("catalog style cache: %d entries, %d hits, %d misses\n", n, hits, misses)
	}

	if *outline {
		path := loader.TextPath(*text, paint, 0, 0)
		if path == nil {
			log.Printf("No outline available")
			return
		}
		b := path.Bounds()
		fmt.Printf("outline: %d elements, bounds (%.2f, %.2f)-(%.2f, %.2f)\n",
			path.Len(), b.Left, b.Top, b.Right, b.Bottom)
	}
}

var rangeNames = map[string]native.UnicodeRange{
	"basic-latin": native.RangeBasicLatin,
	"latin":       native.RangeBasicLatin,
	"latin1":      native.RangeLatin1Sup,
	"latin-ext-a": native.RangeLatinExtA,
	"greek":       native.RangeGreek,
	"cyrillic":    native.RangeCyrillic,
	"hebrew":      native.RangeHebrew,
	"arabic":      native.RangeArabic,
	"hiragana":    native.RangeHiragana,
	"katakana":    native.RangeKatakana,
	"cjk":         native.RangeCJKUnified,
	"hangul":      native.RangeHangul,
	"emoji":       native.RangeEmoji,
}

func parseRanges(list string) ([]native.UnicodeRange, error) {
	if list == "" {
		return nil, nil
	}
	var rs []native.UnicodeRange
	for _, name := range strings.Split(list, ",") {
		r, ok := rangeNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown range %q", name)
		}
		rs = append(rs, r)
	}
	return rs, nil
}
