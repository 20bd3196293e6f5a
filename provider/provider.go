// Package provider supplies typefaces from sources outside the system font
// catalog: a single bound typeface, or a dedicated font manager loaded
// from files.
//
// Providers are consulted in order before the catalog when resolving a
// character, so they override system fonts for the families they serve.
package provider

import (
	"reflect"

	"golang.org/x/text/cases"

	"github.com/gogpu/ggsvg/native"
)

// DefaultFamily is the family name providers are asked for when the
// document requested no family.
const DefaultFamily = "Default"

// Provider resolves a family and style to a typeface.
//
// Providers are identified by ==, so an implementation must be comparable.
// Pointer types always are; a struct value holding a slice, map or func is
// not and is ignored by the settings that would consult it.
type Provider interface {
	// LookupFamily returns the typeface for d.Family in the style of d,
	// or nil when the provider does not serve that family.
	LookupFamily(d native.Descriptor) native.Typeface
}

// Versioned is implemented by providers whose answers can change over
// time. The version must increase whenever a previous answer may no
// longer hold.
type Versioned interface {
	Version() uint64
}

// Comparable reports whether p is non-nil and can be compared with ==.
func Comparable(p Provider) bool {
	return p != nil && reflect.ValueOf(p).Comparable()
}

// foldFamily case-folds a family name for comparison.
// A cases.Caser is stateful, so one is created per call.
func foldFamily(family string) string {
	return cases.Fold().String(family)
}
