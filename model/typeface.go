package model

// Typeface is a font request: a family name plus style attributes.
type Typeface struct {
	// FamilyName is the requested family. Empty means the default family.
	FamilyName string
	Weight     FontWeight
	Width      FontWidth
	Slant      FontSlant
}

// NewTypeface creates a typeface request with normal weight, width and slant.
func NewTypeface(family string) *Typeface {
	return &Typeface{
		FamilyName: family,
		Weight:     FontWeightNormal,
		Width:      FontWidthNormal,
		Slant:      FontSlantUpright,
	}
}

// Clone returns a copy of t. Clone of nil is nil.
func (t *Typeface) Clone() *Typeface {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
