package native

import (
	"github.com/go-text/typesetting/font"

	"github.com/gogpu/ggsvg/model"
)

// Descriptor identifies a requested typeface: family plus style.
// An empty Family means the default family. Descriptors compare with ==.
type Descriptor struct {
	Family string
	Weight model.FontWeight
	Width  model.FontWidth
	Slant  model.FontSlant
}

// DefaultDescriptor returns the descriptor of the default typeface:
// no family, normal weight and width, upright.
func DefaultDescriptor() Descriptor {
	return Descriptor{
		Weight: model.FontWeightNormal,
		Width:  model.FontWidthNormal,
		Slant:  model.FontSlantUpright,
	}
}

// DescriptorOf extracts the descriptor of a document typeface.
// A nil typeface yields DefaultDescriptor.
func DescriptorOf(t *model.Typeface) Descriptor {
	if t == nil {
		return DefaultDescriptor()
	}
	return Descriptor{
		Family: t.FamilyName,
		Weight: t.Weight,
		Width:  t.Width,
		Slant:  t.Slant,
	}
}

// Typeface converts d back into a document typeface.
func (d Descriptor) Typeface() *model.Typeface {
	return &model.Typeface{
		FamilyName: d.Family,
		Weight:     d.Weight,
		Width:      d.Width,
		Slant:      d.Slant,
	}
}

// stretches maps model.FontWidth 1..9 to go-text stretch values.
var stretches = [...]font.Stretch{
	font.StretchUltraCondensed,
	font.StretchExtraCondensed,
	font.StretchCondensed,
	font.StretchSemiCondensed,
	font.StretchNormal,
	font.StretchSemiExpanded,
	font.StretchExpanded,
	font.StretchExtraExpanded,
	font.StretchUltraExpanded,
}

// Aspect converts the style part of d to a go-text aspect.
// Oblique maps to italic: go-text has no separate oblique style.
func (d Descriptor) Aspect() font.Aspect {
	a := font.Aspect{
		Style:   font.StyleNormal,
		Weight:  font.WeightNormal,
		Stretch: font.StretchNormal,
	}
	if d.Weight > 0 {
		a.Weight = font.Weight(min(d.Weight, model.FontWeightBlack))
	}
	if d.Width >= model.FontWidthUltraCondensed && d.Width <= model.FontWidthUltraExpanded {
		a.Stretch = stretches[d.Width-1]
	}
	if d.Slant != model.FontSlantUpright {
		a.Style = font.StyleItalic
	}
	return a
}

// descriptorFromAspect is the inverse of Aspect, rounding to the nearest
// width class and weight hundred.
func descriptorFromAspect(family string, a font.Aspect) Descriptor {
	a.SetDefaults()
	d := Descriptor{
		Family: family,
		Weight: model.FontWeight((int(a.Weight) + 50) / 100 * 100),
		Width:  model.FontWidthNormal,
		Slant:  model.FontSlantUpright,
	}
	best := float32(-1)
	for i, s := range stretches {
		diff := float32(s - a.Stretch)
		if diff < 0 {
			diff = -diff
		}
		if best < 0 || diff < best {
			best = diff
			d.Width = model.FontWidth(i + 1)
		}
	}
	if a.Style == font.StyleItalic {
		d.Slant = model.FontSlantItalic
	}
	return d
}
