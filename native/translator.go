package native

import (
	"math"

	"github.com/gogpu/ggsvg/model"
)

// StyleMatcher resolves a descriptor to a typeface by style.
// FontManager implements it.
type StyleMatcher interface {
	MatchStyle(d Descriptor) Typeface
}

// TranslatorOption configures a Translator.
type TranslatorOption func(*translatorConfig)

type translatorConfig struct {
	hooks releaseHooks
}

// WithPaintReleaseHook registers fn to run once for every released Paint
// built by the translator.
func WithPaintReleaseHook(fn func(*Paint)) TranslatorOption {
	return func(c *translatorConfig) {
		c.hooks.paint = fn
	}
}

// WithTextBlobReleaseHook registers fn to run once for every released
// TextBlob laid out from the translator's paints.
func WithTextBlobReleaseHook(fn func(*TextBlob)) TranslatorOption {
	return func(c *translatorConfig) {
		c.hooks.blob = fn
	}
}

// Translator converts document paints into native paints.
// Translator is safe for concurrent use.
type Translator struct {
	fonts StyleMatcher
	hooks *releaseHooks
}

// NewTranslator creates a translator resolving typefaces with fonts.
// fonts may be nil, in which case text paints carry no typeface.
func NewTranslator(fonts StyleMatcher, opts ...TranslatorOption) *Translator {
	var cfg translatorConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Translator{fonts: fonts, hooks: &cfg.hooks}
}

// fakeItalicSkew is the horizontal skew applied when an italic face was
// requested but an upright one resolved.
const fakeItalicSkew = -0.25

// BuildPaint translates p into a new native paint owned by the caller.
// It returns nil for a nil paint or one with a negative or non-finite
// stroke width or text size.
func (t *Translator) BuildPaint(p *model.Paint) *Paint {
	if p == nil || !usable(p.StrokeWidth) || !usable(p.TextSize) {
		return nil
	}

	np := newPaint(t.hooks)
	np.Style = p.Style
	np.Antialias = p.IsAntialias
	np.StrokeWidth = p.StrokeWidth
	np.StrokeCap = p.StrokeCap
	np.StrokeJoin = p.StrokeJoin
	np.StrokeMiter = p.StrokeMiter
	np.TextSize = p.TextSize
	np.TextAlign = p.TextAlign
	np.TextEncoding = p.TextEncoding
	np.LcdRenderText = p.LcdRenderText
	np.SubpixelText = p.SubpixelText
	np.BlendMode = p.BlendMode
	np.FilterQuality = p.FilterQuality
	np.Shader = p.Shader
	np.ColorFilter = p.ColorFilter
	np.ImageFilter = p.ImageFilter
	np.PathEffect = p.PathEffect
	np.SetColor(p.EffectiveColor())

	blend, ok := BlendState(p.BlendMode)
	if !ok {
		Logger().Debug("native: blend mode needs programmable blending", "mode", p.BlendMode)
	}
	np.Blend = blend

	if t.fonts != nil {
		want := DescriptorOf(p.Typeface)
		if tf := t.fonts.MatchStyle(want); IsValid(tf) {
			np.typeface = tf
			got := tf.Descriptor()
			np.FakeBoldText = want.Weight >= model.FontWeightSemiBold && got.Weight < model.FontWeightSemiBold
			if want.Slant != model.FontSlantUpright && got.Slant == model.FontSlantUpright {
				np.TextSkewX = fakeItalicSkew
			}
		}
	}
	return np
}

func usable(v float32) bool {
	f := float64(v)
	return f >= 0 && !math.IsNaN(f) && !math.IsInf(f, 0)
}
