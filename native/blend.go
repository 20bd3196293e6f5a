package native

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggsvg/model"
)

// blendFactors holds premultiplied-alpha fixed-function factors for the
// Porter-Duff operators: result = src*srcFactor + dst*dstFactor.
var blendFactors = map[model.BlendMode][2]gputypes.BlendFactor{
	model.BlendModeClear:   {gputypes.BlendFactorZero, gputypes.BlendFactorZero},
	model.BlendModeSrc:     {gputypes.BlendFactorOne, gputypes.BlendFactorZero},
	model.BlendModeDst:     {gputypes.BlendFactorZero, gputypes.BlendFactorOne},
	model.BlendModeSrcOver: {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
	model.BlendModeDstOver: {gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOne},
	model.BlendModeSrcIn:   {gputypes.BlendFactorDstAlpha, gputypes.BlendFactorZero},
	model.BlendModeDstIn:   {gputypes.BlendFactorZero, gputypes.BlendFactorSrcAlpha},
	model.BlendModeSrcOut:  {gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorZero},
	model.BlendModeDstOut:  {gputypes.BlendFactorZero, gputypes.BlendFactorOneMinusSrcAlpha},
	model.BlendModeSrcATop: {gputypes.BlendFactorDstAlpha, gputypes.BlendFactorOneMinusSrcAlpha},
	model.BlendModeDstATop: {gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorSrcAlpha},
	model.BlendModeXor:     {gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOneMinusSrcAlpha},
	model.BlendModePlus:    {gputypes.BlendFactorOne, gputypes.BlendFactorOne},
}

// BlendState returns the fixed-function blend state for mode.
// ok is false for modes that need programmable blending; the returned
// state is then source-over so drawing still composites sensibly.
func BlendState(mode model.BlendMode) (state gputypes.BlendState, ok bool) {
	add := func(src, dst gputypes.BlendFactor) gputypes.BlendComponent {
		return gputypes.BlendComponent{SrcFactor: src, DstFactor: dst, Operation: gputypes.BlendOperationAdd}
	}

	if f, found := blendFactors[mode]; found {
		c := add(f[0], f[1])
		return gputypes.BlendState{Color: c, Alpha: c}, true
	}

	switch mode {
	case model.BlendModeModulate:
		return gputypes.BlendState{
			Color: add(gputypes.BlendFactorZero, gputypes.BlendFactorSrc),
			Alpha: add(gputypes.BlendFactorZero, gputypes.BlendFactorSrcAlpha),
		}, true
	case model.BlendModeScreen:
		return gputypes.BlendState{
			Color: add(gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrc),
			Alpha: add(gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha),
		}, true
	}
	return gputypes.BlendStatePremultiplied(), false
}

// premultiplied converts a document color to a premultiplied GPU color.
func premultiplied(c model.Color) gputypes.Color {
	r, g, b, a := c.Float()
	return gputypes.Color{R: r * a, G: g * a, B: b * a, A: a}
}
