package native

import (
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggsvg/model"
)

func TestBuildPaintRejects(t *testing.T) {
	tr := NewTranslator(nil)
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name  string
		paint *model.Paint
	}{
		{"nil", nil},
		{"negative stroke", &model.Paint{StrokeWidth: -1, TextSize: 12}},
		{"nan stroke", &model.Paint{StrokeWidth: nan, TextSize: 12}},
		{"negative text size", &model.Paint{TextSize: -3}},
		{"infinite text size", &model.Paint{TextSize: inf}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p := tr.BuildPaint(tt.paint); p != nil {
				t.Errorf("BuildPaint = %v, want nil", p)
			}
		})
	}
}

func TestBuildPaintCopiesState(t *testing.T) {
	tf := &stubTypeface{desc: DefaultDescriptor(), adv: 0.5, covered: "ab"}
	tr := NewTranslator(stubMatcher{tf})

	src := model.NewPaint()
	src.Style = model.PaintStyleStroke
	src.StrokeWidth = 3
	src.StrokeCap = model.StrokeCapRound
	src.TextSize = 20
	src.TextAlign = model.TextAlignCenter
	src.BlendMode = model.BlendModeSrcOver
	src.SetColor(model.Color{R: 255, A: 128})
	src.Shader = &model.Shader{}

	p := tr.BuildPaint(src)
	if p == nil {
		t.Fatal("BuildPaint returned nil")
	}
	defer p.Release()

	if p.Style != src.Style || p.StrokeWidth != 3 || p.StrokeCap != model.StrokeCapRound ||
		p.TextSize != 20 || p.TextAlign != model.TextAlignCenter || p.Shader != src.Shader {
		t.Errorf("state not copied: %+v", p)
	}
	if p.Typeface() != tf {
		t.Error("typeface not resolved through matcher")
	}
	if p.Blend != gputypes.BlendStatePremultiplied() {
		t.Errorf("src-over blend = %+v", p.Blend)
	}
	a := 128.0 / 255
	if math.Abs(p.Color.A-a) > 1e-9 || math.Abs(p.Color.R-a) > 1e-9 || p.Color.G != 0 {
		t.Errorf("color not premultiplied: %+v", p.Color)
	}
	if p.TextScaleX != 1 || p.FakeBoldText || p.TextSkewX != 0 {
		t.Errorf("unexpected synthetic style: scale %v bold %v skew %v", p.TextScaleX, p.FakeBoldText, p.TextSkewX)
	}
}

func TestBuildPaintSyntheticStyle(t *testing.T) {
	upright := &stubTypeface{desc: DefaultDescriptor(), adv: 0.5}
	tr := NewTranslator(stubMatcher{upright})

	src := model.NewPaint()
	src.Typeface = &model.Typeface{Weight: model.FontWeightBold, Width: model.FontWidthNormal, Slant: model.FontSlantItalic}
	p := tr.BuildPaint(src)
	defer p.Release()

	if !p.FakeBoldText {
		t.Error("bold requested from a regular face should set FakeBoldText")
	}
	if p.TextSkewX != fakeItalicSkew {
		t.Errorf("TextSkewX = %v, want %v", p.TextSkewX, fakeItalicSkew)
	}
}

func TestPaintReleaseOnce(t *testing.T) {
	var released atomic.Int32
	tr := NewTranslator(nil, WithPaintReleaseHook(func(*Paint) { released.Add(1) }))

	p := tr.BuildPaint(model.NewPaint())
	c := tr.BuildPaint(model.NewPaint())
	if c.ID() == p.ID() {
		t.Error("paints share identity")
	}

	p.Release()
	p.Release()
	if p.Valid() {
		t.Error("released paint is valid")
	}
	if !c.Valid() {
		t.Error("releasing one paint invalidated another")
	}
	c.Release()

	if got := released.Load(); got != 2 {
		t.Errorf("release hook ran %d times, want 2", got)
	}

	var nilPaint *Paint
	nilPaint.Release()
	if nilPaint.Valid() {
		t.Error("nil paint is valid")
	}
}

func TestPaintMeasureText(t *testing.T) {
	tf := &stubTypeface{desc: DefaultDescriptor(), adv: 0.55}
	tr := NewTranslator(stubMatcher{tf})

	src := model.NewPaint()
	src.TextSize = 10
	p := tr.BuildPaint(src)
	defer p.Release()

	// 5.5 rounds to 6 per glyph without subpixel positioning.
	w, bounds := p.MeasureText("abc")
	if w != 18 {
		t.Errorf("width = %v, want 18", w)
	}
	if bounds.Right != 18 || bounds.Top != -8 || bounds.Bottom != 2 {
		t.Errorf("bounds = %+v", bounds)
	}

	p.SubpixelText = true
	if w, _ := p.MeasureText("abc"); w != 16.5 {
		t.Errorf("subpixel width = %v, want 16.5", w)
	}

	if w, _ := p.MeasureText(""); w != 0 {
		t.Errorf("empty width = %v", w)
	}

	p.TextEncoding = model.TextEncodingUTF16
	w, _, err := p.MeasureBytes([]byte{'a', 0, 'b', 0})
	if err != nil || w != 11 {
		t.Errorf("MeasureBytes(UTF-16 ab) = %v, %v; want 11", w, err)
	}
	p.TextEncoding = model.TextEncodingGlyphID
	if _, _, err := p.MeasureBytes([]byte{1, 0}); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("glyph ID measure error = %v", err)
	}
}

func TestPaintWithoutTypeface(t *testing.T) {
	p := NewTranslator(nil).BuildPaint(model.NewPaint())
	defer p.Release()

	if w, _ := p.MeasureText("abc"); w != 0 {
		t.Errorf("width without typeface = %v", w)
	}
	if m := p.FontMetrics(); m != (model.FontMetrics{}) {
		t.Errorf("metrics without typeface = %+v", m)
	}
	if p.TextPath("abc", 0, 0) != nil {
		t.Error("TextPath without typeface should be nil")
	}
	if p.TextBlob("abc", 0, 0) != nil {
		t.Error("TextBlob without typeface should be nil")
	}
}

func TestPaintTextPath(t *testing.T) {
	m := newTestManager(t)
	tr := NewTranslator(m)

	src := model.NewPaint()
	src.TextSize = 32
	p := tr.BuildPaint(src)
	defer p.Release()

	left := p.TextPath("Hi", 100, 50)
	if left == nil || left.Len() == 0 {
		t.Fatal("TextPath returned no outline")
	}

	p.TextAlign = model.TextAlignRight
	right := p.TextPath("Hi", 100, 50)
	if right.Bounds().Right > 100.5 {
		t.Errorf("right-aligned text extends past origin: %+v", right.Bounds())
	}
	if right.Bounds().Left >= left.Bounds().Left {
		t.Error("right alignment did not shift outline left")
	}

	// Stub typefaces cannot produce outlines.
	stub := NewTranslator(stubMatcher{&stubTypeface{adv: 1}}).BuildPaint(src)
	defer stub.Release()
	if stub.TextPath("Hi", 0, 0) != nil {
		t.Error("TextPath with a non-outline typeface should be nil")
	}
}

func TestTextBlob(t *testing.T) {
	var blobs atomic.Int32
	tf := &stubTypeface{desc: DefaultDescriptor(), adv: 0.5}
	tr := NewTranslator(stubMatcher{tf}, WithTextBlobReleaseHook(func(*TextBlob) { blobs.Add(1) }))

	src := model.NewPaint()
	src.TextSize = 10
	p := tr.BuildPaint(src)
	defer p.Release()

	b := p.TextBlob("abc", 10, 20)
	if b == nil {
		t.Fatal("TextBlob returned nil")
	}
	g := b.Glyphs()
	if len(g) != 3 || g[0].X != 10 || g[1].X != 15 || g[2].X != 20 || g[2].Y != 20 {
		t.Errorf("glyph positions = %+v", g)
	}
	if b.Bounds() != (model.Rect{Left: 10, Top: 12, Right: 25, Bottom: 22}) {
		t.Errorf("bounds = %+v", b.Bounds())
	}
	if b.Text() != "abc" || b.Size() != 10 || b.Typeface() != tf {
		t.Error("blob accessors disagree with inputs")
	}
	if p.TextBlob("", 0, 0) != nil {
		t.Error("empty text should yield no blob")
	}

	b.Release()
	b.Release()
	if b.Valid() {
		t.Error("released blob is valid")
	}
	if blobs.Load() != 1 {
		t.Errorf("blob release hook ran %d times, want 1", blobs.Load())
	}
}

func TestBlendState(t *testing.T) {
	tests := []struct {
		mode   model.BlendMode
		src    gputypes.BlendFactor
		dst    gputypes.BlendFactor
		native bool
	}{
		{model.BlendModeSrcOver, gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha, true},
		{model.BlendModeSrc, gputypes.BlendFactorOne, gputypes.BlendFactorZero, true},
		{model.BlendModeClear, gputypes.BlendFactorZero, gputypes.BlendFactorZero, true},
		{model.BlendModeDstIn, gputypes.BlendFactorZero, gputypes.BlendFactorSrcAlpha, true},
		{model.BlendModeXor, gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOneMinusSrcAlpha, true},
		{model.BlendModePlus, gputypes.BlendFactorOne, gputypes.BlendFactorOne, true},
		{model.BlendModeScreen, gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrc, true},
		{model.BlendModeMultiply, gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha, false},
		{model.BlendModeDarken, gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha, false},
	}
	for _, tt := range tests {
		state, ok := BlendState(tt.mode)
		if ok != tt.native {
			t.Errorf("mode %d: ok = %v, want %v", tt.mode, ok, tt.native)
		}
		if state.Color.SrcFactor != tt.src || state.Color.DstFactor != tt.dst {
			t.Errorf("mode %d: color factors = %v/%v, want %v/%v", tt.mode, state.Color.SrcFactor, state.Color.DstFactor, tt.src, tt.dst)
		}
		if state.Color.Operation != gputypes.BlendOperationAdd {
			t.Errorf("mode %d: operation = %v", tt.mode, state.Color.Operation)
		}
	}
}
