// Package model defines the document-level paint model that an SVG document
// is translated into before it reaches the native backend.
//
// All types are mutable reference types. A *Paint may be mutated between
// draws; caches in package ggsvg key on the identity of the *Paint and
// validate on a structural snapshot of its fields, so mutation is always
// observed.
//
// # Fonts
//
// Typeface describes a requested font by family, weight, width and slant.
// It is a request, not a loaded font: resolution happens in package native.
package model
