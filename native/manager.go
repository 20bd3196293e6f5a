package native

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	icache "github.com/gogpu/ggsvg/internal/cache"
)

// ManagerOption configures FontManager creation.
type ManagerOption func(*managerConfig)

type managerConfig struct {
	goFonts         bool
	systemFonts     bool
	cacheDir        string
	styleCacheLimit int
	runeCacheSize   int
}

func defaultManagerConfig() managerConfig {
	return managerConfig{
		goFonts:         true,
		styleCacheLimit: 512,
		runeCacheSize:   4096,
	}
}

// WithGoFonts controls whether the embedded Go font family is registered.
// It is enabled by default so a manager always has a usable face.
func WithGoFonts(enabled bool) ManagerOption {
	return func(c *managerConfig) {
		c.goFonts = enabled
	}
}

// WithSystemFonts indexes the fonts installed on the system. The index is
// persisted in cacheDir; an empty cacheDir uses the user cache directory.
func WithSystemFonts(cacheDir string) ManagerOption {
	return func(c *managerConfig) {
		c.systemFonts = true
		c.cacheDir = cacheDir
	}
}

// WithStyleCacheLimit sets the soft limit of the style match memo.
func WithStyleCacheLimit(n int) ManagerOption {
	return func(c *managerConfig) {
		c.styleCacheLimit = n
	}
}

// WithRuneCacheSize sets the size of fontscan's rune resolution cache.
func WithRuneCacheSize(n int) ManagerOption {
	return func(c *managerConfig) {
		c.runeCacheSize = n
	}
}

// goFonts is the embedded fallback family, regular face first.
var goFonts = []struct {
	name string
	data []byte
}{
	{"goregular", goregular.TTF},
	{"gobold", gobold.TTF},
	{"goitalic", goitalic.TTF},
	{"gobolditalic", gobolditalic.TTF},
	{"gomono", gomono.TTF},
	{"gomonobold", gomonobold.TTF},
}

// FontManager is a font catalog: it matches typefaces by family and style
// and finds fallback typefaces by character coverage.
//
// Every added font bumps Version, so dependents can detect that a lookup
// that failed before may now succeed.
//
// FontManager is safe for concurrent use.
type FontManager struct {
	mu     sync.Mutex
	fonts  *fontscan.FontMap
	faces  map[*font.Font]*FontTypeface
	styles *icache.Cache[Descriptor, Typeface]
	added  int
	closed bool

	version atomic.Uint64
}

// NewFontManager creates a font manager.
func NewFontManager(opts ...ManagerOption) (*FontManager, error) {
	cfg := defaultManagerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	fm := fontscan.NewFontMap(fontscanLogger{})
	if cfg.runeCacheSize > 0 {
		fm.SetRuneCacheSize(cfg.runeCacheSize)
	}
	m := &FontManager{
		fonts:  fm,
		faces:  make(map[*font.Font]*FontTypeface),
		styles: icache.New[Descriptor, Typeface](cfg.styleCacheLimit),
	}

	if cfg.systemFonts {
		if err := m.UseSystemFonts(cfg.cacheDir); err != nil {
			return nil, err
		}
	}
	if cfg.goFonts {
		for _, f := range goFonts {
			if err := m.addFont(f.data, f.name, ""); err != nil {
				return nil, fmt.Errorf("native: embedded font %s: %w", f.name, err)
			}
		}
	}
	return m, nil
}

// UseSystemFonts indexes the fonts installed on the system.
func (m *FontManager) UseSystemFonts(cacheDir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fonts.UseSystemFonts(cacheDir); err != nil {
		return fmt.Errorf("native: failed to index system fonts: %w", err)
	}
	m.changed()
	return nil
}

// AddFont registers a font file or collection. A non-empty family
// overrides the family name stored in the font.
func (m *FontManager) AddFont(data []byte, family string) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	return m.addFont(data, "", family)
}

// addFont registers data under id; an empty id gets a generated one.
func (m *FontManager) addFont(data []byte, id, family string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id == "" {
		id = fmt.Sprintf("memory-%d", m.added)
	}
	if err := m.fonts.AddFont(bytes.NewReader(data), id, family); err != nil {
		return fmt.Errorf("native: failed to add font %s: %w", id, err)
	}
	m.added++
	m.changed()
	return nil
}

// AddFS registers every .ttf, .otf, .ttc and .otc file under root in fsys.
// Files that fail to load are skipped and reported in the joined error;
// ErrNoFonts is returned when nothing could be loaded.
func (m *FontManager) AddFS(fsys fs.FS, root string) error {
	var errs []error
	loaded := 0
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if d.IsDir() || !isFontFile(p) {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if err := m.addFont(data, p, ""); err != nil {
			Logger().Warn("native: skipping font", "path", p, "err", err)
			errs = append(errs, err)
			return nil
		}
		loaded++
		return nil
	})
	if err != nil {
		errs = append(errs, err)
	}
	if loaded == 0 {
		errs = append(errs, ErrNoFonts)
	}
	return errors.Join(errs...)
}

func isFontFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	}
	return false
}

// Version returns a counter that increases whenever the set of available
// fonts changes.
func (m *FontManager) Version() uint64 {
	return m.version.Load()
}

// MatchStyle returns the best typeface for d, falling back to other
// families when d.Family is unavailable. It returns nil only when the
// manager holds no fonts or has been closed.
func (m *FontManager) MatchStyle(d Descriptor) Typeface {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	return m.styles.GetOrCreate(d, func() Typeface {
		return m.resolve(d, ' ', false)
	})
}

// MatchFamily returns a typeface of exactly the family d.Family, closest
// in style to d, or nil when the family is not available. An empty family
// behaves like MatchStyle.
func (m *FontManager) MatchFamily(d Descriptor) Typeface {
	if d.Family == "" {
		return m.MatchStyle(d)
	}
	t := m.MatchStyle(d)
	if t == nil || font.NormalizeFamily(t.Descriptor().Family) != font.NormalizeFamily(d.Family) {
		return nil
	}
	return t
}

// MatchCharacter returns a typeface that has a glyph for r, preferring
// d.Family and the style of d, or nil when no font covers r.
func (m *FontManager) MatchCharacter(d Descriptor, r rune) Typeface {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	return m.resolve(d, r, true)
}

// resolve runs a fontscan query. Caller must hold m.mu.
func (m *FontManager) resolve(d Descriptor, r rune, needGlyph bool) Typeface {
	family := d.Family
	if family == "" {
		family = fontscan.SansSerif
	}
	m.fonts.SetQuery(fontscan.Query{
		Families: []string{family},
		Aspect:   d.Aspect(),
	})
	face := m.fonts.ResolveFace(r)
	if face == nil {
		return nil
	}
	// ResolveFace returns an arbitrary face when nothing covers r.
	if needGlyph {
		if _, ok := face.NominalGlyph(r); !ok {
			return nil
		}
	}
	return m.wrap(face)
}

// wrap returns the single FontTypeface for face's font. Caller must hold m.mu.
func (m *FontManager) wrap(face *font.Face) *FontTypeface {
	if t, ok := m.faces[face.Font]; ok {
		return t
	}
	family, aspect := m.fonts.FontMetadata(face.Font)
	desc := face.Describe()
	// FontMetadata reports normalized names; keep the font's own spelling
	// unless the family was overridden on registration.
	if family == "" || font.NormalizeFamily(desc.Family) == family {
		family = desc.Family
	}
	if aspect == (font.Aspect{}) {
		aspect = desc.Aspect
	}
	t := newFontTypeface(face.Font, family, aspect)
	m.faces[face.Font] = t
	return t
}

// StyleCacheStats reports the size and hit counts of the style match memo.
func (m *FontManager) StyleCacheStats() (entries int, hits, misses uint64) {
	s := m.styles.Stats()
	return s.Len, s.Hits, s.Misses
}

// changed records a change of the font set. Caller must hold m.mu.
func (m *FontManager) changed() {
	m.styles.Clear()
	m.version.Add(1)
}

// Close invalidates every typeface handed out by the manager.
// Subsequent matches return nil.
func (m *FontManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true
	for _, t := range m.faces {
		t.Close()
	}
	clear(m.faces)
	m.styles.Clear()
	m.version.Add(1)
}
