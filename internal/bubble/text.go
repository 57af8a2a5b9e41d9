package bubble

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"msgstack/internal/stack"
	"msgstack/internal/tui/render"
)

// Text 是带边框的聊天气泡。正文按宽度换行，每一行正文消耗一行预算；
// 空间或预算不足时截断显示，连 MinLines 行都放不下时报告 FitTooSmall。
type Text struct {
	ID       string
	Role     Role
	Sender   string
	Body     string
	Deleted  bool
	MinLines int

	maxLines int
	fit      stack.Fit
	consumed int
	header   string
	shown    []string
	size     stack.Size
}

// NewText 创建正文气泡，预算默认不限。
func NewText(id string, role Role, sender, body string) *Text {
	return &Text{
		ID:       id,
		Role:     role,
		Sender:   sender,
		Body:     strings.TrimRight(body, "\n"),
		MinLines: 1,
		maxLines: stack.Unbounded,
	}
}

// SetMaxDisplayedLines 接收容器下发的剩余预算。
func (t *Text) SetMaxDisplayedLines(lines int) { t.maxLines = lines }

// FitClass 返回最近一次测量的归类。
func (t *Text) FitClass() stack.Fit { return t.fit }

// ConsumedLines 返回最近一次测量实际显示的正文行数。
func (t *Text) ConsumedLines() int { return t.consumed }

// Removed 已删除的消息不参与布局。
func (t *Text) Removed() bool { return t.Deleted }

func (t *Text) Measure(width, height stack.MeasureSpec) stack.Size {
	natural := widest(strings.Split(t.Body, "\n"))
	if t.Sender != "" {
		natural = max(natural, runewidth.StringWidth(t.Sender))
	}
	inner := maxInner(width, natural)
	body := render.Wrap(t.Body, inner)

	chrome := frameHeight
	t.header = ""
	if t.Sender != "" {
		chrome++
		t.header = runewidth.Truncate(t.Sender, inner, render.Ellipsis)
	}

	rows := stack.Unbounded
	if height.Mode != stack.Unspecified {
		rows = height.Size - chrome
	}
	allowed := min(t.maxLines, rows)
	minLines := max(t.MinLines, 1)

	switch {
	case len(body) <= allowed:
		t.fit = stack.FitNormal
		t.shown = body
		t.consumed = len(body)
	case allowed >= minLines:
		t.fit = stack.FitShortened
		t.shown = append([]string(nil), body[:allowed]...)
		t.shown[allowed-1] = render.Ellipsize(t.shown[allowed-1], inner)
		t.consumed = allowed
	default:
		t.fit = stack.FitTooSmall
		t.shown = body[:min(len(body), minLines)]
		t.consumed = 0
	}

	contentWidth := min(max(widest(t.shown), runewidth.StringWidth(t.header)), inner)
	t.size = stack.Size{
		Width:  stack.ResolveSize(contentWidth+frameWidth, width),
		Height: heightFor(chrome+len(t.shown), height),
	}
	return t.size
}

func (t *Text) Render(area render.Rect, buf *render.Buffer) {
	inner := max(area.Width-frameWidth, 1)
	rows := make([]render.Line, 0, len(t.shown)+1)
	if t.header != "" {
		rows = append(rows, render.Line{Spans: []render.Span{{Text: t.header, Style: senderStyle}}})
	}
	for i, row := range t.shown {
		line := render.Line{Spans: []render.Span{{Text: row}}}
		if t.fit == stack.FitShortened && i == len(t.shown)-1 {
			line.Style = truncatedStyle
		}
		rows = append(rows, line)
	}
	buf.WriteLines(framed(rows, inner, borderStyle(t.Role))...)
}

// Lines 返回当前显示的正文行，用于复制等纯文本场景。
func (t *Text) Lines() []string {
	out := make([]string, 0, len(t.shown)+1)
	if t.header != "" {
		out = append(out, t.header+":")
	}
	return append(out, t.shown...)
}
