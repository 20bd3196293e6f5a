package ggsvg

// Option configures an AssetLoader during creation.
//
// Example:
//
//	// Embedded Go fonts only, default settings
//	loader, err := ggsvg.New()
//
//	// System fonts plus an application font directory
//	fonts, _ := native.NewFontManager(native.WithSystemFonts(""))
//	app, _ := provider.NewFS(os.DirFS("assets"), "fonts")
//	loader, err := ggsvg.New(
//	    ggsvg.WithCatalog(fonts),
//	    ggsvg.WithSettings(ggsvg.NewSettings(app)),
//	)
type Option func(*loaderConfig)

type loaderConfig struct {
	settings *Settings
	catalog  Catalog
	builder  PaintBuilder
}

func defaultLoaderConfig() loaderConfig {
	return loaderConfig{}
}

// WithSettings shares settings, and therefore the typeface provider
// configuration, with the loader. By default each loader has its own
// empty Settings.
func WithSettings(s *Settings) Option {
	return func(c *loaderConfig) {
		c.settings = s
	}
}

// WithCatalog sets the system font catalog. By default the loader creates
// a native.FontManager with the embedded Go fonts and closes it on Close.
func WithCatalog(cat Catalog) Option {
	return func(c *loaderConfig) {
		c.catalog = cat
	}
}

// WithBuilder sets the paint translator. By default a native.Translator
// resolving typefaces through the catalog is used.
func WithBuilder(b PaintBuilder) Option {
	return func(c *loaderConfig) {
		c.builder = b
	}
}
