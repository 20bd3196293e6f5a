package provider

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/gogpu/ggsvg/native"
)

// FontManager serves typefaces from a dedicated font manager, typically
// one holding application fonts that are not installed on the system.
type FontManager struct {
	m     *native.FontManager
	owned bool
}

// NewFontManager wraps m. The caller keeps ownership of m.
func NewFontManager(m *native.FontManager) *FontManager {
	return &FontManager{m: m}
}

// NewFS loads every font under root in fsys into a new font manager.
// Fonts that fail to load are logged and skipped; an error is returned
// only when none could be loaded.
func NewFS(fsys fs.FS, root string, opts ...native.ManagerOption) (*FontManager, error) {
	opts = append([]native.ManagerOption{native.WithGoFonts(false)}, opts...)
	m, err := native.NewFontManager(opts...)
	if err != nil {
		return nil, err
	}
	if err := m.AddFS(fsys, root); err != nil {
		if errors.Is(err, native.ErrNoFonts) {
			m.Close()
			return nil, fmt.Errorf("provider: %s: %w", root, err)
		}
		native.Logger().Warn("provider: some fonts were skipped", "root", root, "err", err)
	}
	return &FontManager{m: m, owned: true}, nil
}

// Manager returns the wrapped font manager.
func (p *FontManager) Manager() *native.FontManager {
	return p.m
}

// LookupFamily implements Provider. DefaultFamily selects the manager's
// best face in the requested style.
func (p *FontManager) LookupFamily(d native.Descriptor) native.Typeface {
	if d.Family == DefaultFamily {
		d.Family = ""
	}
	return p.m.MatchFamily(d)
}

// Version implements Versioned by reporting the manager's version.
func (p *FontManager) Version() uint64 {
	return p.m.Version()
}

// Close closes the manager if the provider created it.
func (p *FontManager) Close() {
	if p.owned {
		p.m.Close()
	}
}
