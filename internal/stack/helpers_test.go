package stack

import (
	"slices"
	"strings"
	"testing"

	"msgstack/internal/tui/render"
)

// boxChild 固定尺寸，不参与预算协商。
type boxChild struct {
	w, h    int
	label   string
	removed bool
	calls   int
	height  MeasureSpec
}

func (b *boxChild) Measure(_, height MeasureSpec) Size {
	b.calls++
	b.height = height
	return Size{Width: b.w, Height: b.h}
}

func (b *boxChild) Render(area render.Rect, buf *render.Buffer) {
	label := b.label
	if label == "" {
		label = "#"
	}
	for i := 0; i < b.h; i++ {
		buf.WriteLine(render.Line{Spans: []render.Span{{Text: strings.Repeat(label, b.w)}}})
	}
}

func (b *boxChild) Removed() bool { return b.removed }

// fixedNegotiator 报告固定的归类与消耗。
type fixedNegotiator struct {
	boxChild
	fit      Fit
	consumed int
	hints    []int
}

func (f *fixedNegotiator) FitClass() Fit             { return f.fit }
func (f *fixedNegotiator) ConsumedLines() int        { return f.consumed }
func (f *fixedNegotiator) SetMaxDisplayedLines(n int) { f.hints = append(f.hints, n) }

// lineChild 模拟文本：空间或预算不足时截断，连最少行数都放不下时报告 TooSmall。
type lineChild struct {
	lines    int
	minLines int
	hint     int
	fit      Fit
	consumed int
}

func newLineChild(lines int) *lineChild {
	return &lineChild{lines: lines, minLines: 1, hint: Unbounded}
}

func (l *lineChild) FitClass() Fit             { return l.fit }
func (l *lineChild) ConsumedLines() int        { return l.consumed }
func (l *lineChild) SetMaxDisplayedLines(n int) { l.hint = n }

func (l *lineChild) Measure(_, height MeasureSpec) Size {
	rows := Unbounded
	if height.Mode != Unspecified {
		rows = height.Size
	}
	allowed := min(l.hint, rows)
	switch {
	case l.lines <= allowed:
		l.fit, l.consumed = FitNormal, l.lines
		return Size{Width: 5, Height: l.lines}
	case allowed >= max(1, l.minLines):
		l.fit, l.consumed = FitShortened, allowed
		return Size{Width: 5, Height: allowed}
	default:
		l.fit, l.consumed = FitTooSmall, 0
		return Size{Width: 5, Height: l.lines}
	}
}

func (l *lineChild) Render(area render.Rect, buf *render.Buffer) {
	for i := 0; i < area.Height; i++ {
		buf.WriteLine(render.Line{Spans: []render.Span{{Text: "line"}}})
	}
}

func newContainer(children []Child, opts ...Option) *Container {
	c := New(opts...)
	for _, child := range children {
		c.Add(child, nil)
	}
	return c
}

func boxes(heights ...int) []Child {
	out := make([]Child, 0, len(heights))
	for _, h := range heights {
		out = append(out, &boxChild{w: 10, h: h})
	}
	return out
}

func assertVisible(t *testing.T, c *Container, want []int) {
	t.Helper()
	got := c.Visible()
	if !slices.Equal(got, want) {
		t.Fatalf("Visible() = %v, want %v", got, want)
	}
}
