package bubble

import (
	"slices"
	"testing"

	"msgstack/internal/stack"
	"msgstack/internal/tui/render"
)

func TestTextMeasureClassification(t *testing.T) {
	cases := []struct {
		name         string
		body         string
		minLines     int
		budget       int
		width        stack.MeasureSpec
		height       stack.MeasureSpec
		wantFit      stack.Fit
		wantShown    []string
		wantConsumed int
		wantSize     stack.Size
	}{
		{
			name:         "fits",
			body:         "hello world",
			budget:       stack.Unbounded,
			width:        stack.UpTo(30),
			height:       stack.UpTo(10),
			wantFit:      stack.FitNormal,
			wantShown:    []string{"hello world"},
			wantConsumed: 1,
			wantSize:     stack.Size{Width: 15, Height: 3},
		},
		{
			name:         "shortened by rows",
			body:         "one two three four five six",
			budget:       stack.Unbounded,
			width:        stack.UpTo(9),
			height:       stack.UpTo(5),
			wantFit:      stack.FitShortened,
			wantShown:    []string{"one", "two", "thre…"},
			wantConsumed: 3,
			wantSize:     stack.Size{Width: 9, Height: 5},
		},
		{
			name:         "shortened by budget",
			body:         "a\nb\nc",
			budget:       2,
			width:        stack.UpTo(20),
			height:       stack.Free(),
			wantFit:      stack.FitShortened,
			wantShown:    []string{"a", "b…"},
			wantConsumed: 2,
			wantSize:     stack.Size{Width: 6, Height: 4},
		},
		{
			name:         "too small for one row",
			body:         "a\nb",
			budget:       stack.Unbounded,
			width:        stack.UpTo(20),
			height:       stack.UpTo(2),
			wantFit:      stack.FitTooSmall,
			wantShown:    []string{"a"},
			wantConsumed: 0,
			wantSize:     stack.Size{Width: 5, Height: 3},
		},
		{
			name:         "min lines not reachable",
			body:         "a\nb\nc\nd",
			minLines:     3,
			budget:       stack.Unbounded,
			width:        stack.UpTo(20),
			height:       stack.UpTo(4),
			wantFit:      stack.FitTooSmall,
			wantShown:    []string{"a", "b", "c"},
			wantConsumed: 0,
			wantSize:     stack.Size{Width: 5, Height: 5},
		},
		{
			name:         "exact width fills",
			body:         "hi",
			budget:       stack.Unbounded,
			width:        stack.Exact(12),
			height:       stack.Free(),
			wantFit:      stack.FitNormal,
			wantShown:    []string{"hi"},
			wantConsumed: 1,
			wantSize:     stack.Size{Width: 12, Height: 3},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewText("id", RoleAssistant, "", tc.body)
			if tc.minLines > 0 {
				b.MinLines = tc.minLines
			}
			b.SetMaxDisplayedLines(tc.budget)
			size := b.Measure(tc.width, tc.height)
			if b.FitClass() != tc.wantFit {
				t.Fatalf("FitClass() = %v, want %v", b.FitClass(), tc.wantFit)
			}
			if !slices.Equal(b.shown, tc.wantShown) {
				t.Fatalf("shown = %q, want %q", b.shown, tc.wantShown)
			}
			if b.ConsumedLines() != tc.wantConsumed {
				t.Fatalf("ConsumedLines() = %d, want %d", b.ConsumedLines(), tc.wantConsumed)
			}
			if size != tc.wantSize {
				t.Fatalf("size = %+v, want %+v", size, tc.wantSize)
			}
		})
	}
}

func TestTextSenderHeader(t *testing.T) {
	b := NewText("id", RoleUser, "alexandra", "ok")
	size := b.Measure(stack.UpTo(10), stack.UpTo(10))
	if size != (stack.Size{Width: 10, Height: 4}) {
		t.Fatalf("size = %+v, want 10x4", size)
	}
	if b.header != "alexa…" {
		t.Fatalf("header = %q, want truncated sender", b.header)
	}
	if got := b.Lines(); !slices.Equal(got, []string{"alexa…:", "ok"}) {
		t.Fatalf("Lines() = %q", got)
	}
}

func TestTextRenderFramesContent(t *testing.T) {
	b := NewText("id", RoleUser, "", "hi")
	size := b.Measure(stack.UpTo(20), stack.Free())
	buf := render.Buffer{}
	b.Render(render.Rect{Width: size.Width, Height: size.Height}, &buf)
	got := render.LinesToPlainStrings(buf.Lines)
	want := []string{"╭────╮", "│ hi │", "╰────╯"}
	if !slices.Equal(got, want) {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestTextRemovedWhenDeleted(t *testing.T) {
	b := NewText("id", RoleUser, "", "gone")
	if b.Removed() {
		t.Fatalf("fresh bubble should not be removed")
	}
	b.Deleted = true
	if !b.Removed() {
		t.Fatalf("deleted bubble should be removed")
	}
}

func TestAttachmentReportsFullHeight(t *testing.T) {
	a := NewAttachment("id", "report.pdf", RoleUser)
	size := a.Measure(stack.UpTo(10), stack.UpTo(1))
	if size != (stack.Size{Width: 10, Height: 3}) {
		t.Fatalf("size = %+v, want 10x3", size)
	}
	if a.label != "[file…" {
		t.Fatalf("label = %q", a.label)
	}
}

func TestBubblesShareBudgetInStack(t *testing.T) {
	c := stack.New(stack.WithMaxDisplayedLines(3), stack.WithSpacing(1))
	oldest := NewText("1", RoleUser, "", "first")
	middle := NewText("2", RoleAssistant, "", "a\nb\nc\nd")
	newest := NewText("3", RoleUser, "", "x\ny")
	for _, b := range []*Text{oldest, middle, newest} {
		c.Add(b, &stack.LayoutParams{Width: stack.WrapContent, Height: stack.WrapContent})
	}
	c.Measure(stack.Exact(40), stack.UpTo(100))

	if got := c.Visible(); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("Visible() = %v, want [1 2]", got)
	}
	if newest.FitClass() != stack.FitNormal || newest.ConsumedLines() != 2 {
		t.Fatalf("newest = %v/%d", newest.FitClass(), newest.ConsumedLines())
	}
	if middle.FitClass() != stack.FitShortened || middle.ConsumedLines() != 1 {
		t.Fatalf("middle = %v/%d", middle.FitClass(), middle.ConsumedLines())
	}
}

func TestAttachmentEvictedWhenNoRoom(t *testing.T) {
	c := stack.New()
	c.Add(NewAttachment("1", "a.png", RoleUser), nil)
	c.Add(NewText("2", RoleUser, "", "hi"), nil)
	c.Measure(stack.Exact(20), stack.UpTo(5))
	if got := c.Visible(); !slices.Equal(got, []int{1}) {
		t.Fatalf("Visible() = %v, want [1]", got)
	}
}
