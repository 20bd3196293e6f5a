package model

// The effect types below are carried through translation by reference.
// Their rendering semantics belong to the backend; caches compare them by
// pointer identity only.

// ShaderKind identifies the kind of a Shader.
type ShaderKind uint8

const (
	ShaderKindColor ShaderKind = iota
	ShaderKindLinearGradient
	ShaderKindRadialGradient
	ShaderKindSweepGradient
	ShaderKindImage
)

// Shader is a paint source other than a flat color.
type Shader struct {
	Kind   ShaderKind
	Colors []Color
	Stops  []float32
	// Points holds the geometry of the shader, interpretation depends on Kind.
	Points []Point
}

// ColorFilter is a 4x5 row-major color matrix.
type ColorFilter struct {
	Matrix [20]float32
}

// ImageFilterKind identifies the kind of an ImageFilter.
type ImageFilterKind uint8

const (
	ImageFilterBlur ImageFilterKind = iota
	ImageFilterDropShadow
	ImageFilterOffset
)

// ImageFilter is a raster post-processing step.
type ImageFilter struct {
	Kind   ImageFilterKind
	DX, DY float32
	SigmaX float32
	SigmaY float32
	Color  Color
	Input  *ImageFilter
}

// PathEffect modifies geometry before it is drawn, e.g. dashing.
type PathEffect struct {
	Intervals []float32
	Phase     float32
}
