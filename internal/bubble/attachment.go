package bubble

import (
	"github.com/mattn/go-runewidth"

	"msgstack/internal/stack"
	"msgstack/internal/tui/render"
)

// Attachment 是附件占位框，高度固定，不参与预算协商。
type Attachment struct {
	ID   string
	Name string
	Role Role

	label string
}

func NewAttachment(id, name string, role Role) *Attachment {
	return &Attachment{ID: id, Name: name, Role: role}
}

func (a *Attachment) text() string {
	return "[file] " + a.Name
}

func (a *Attachment) Measure(width, height stack.MeasureSpec) stack.Size {
	text := a.text()
	inner := maxInner(width, runewidth.StringWidth(text))
	a.label = runewidth.Truncate(text, inner, render.Ellipsis)
	return stack.Size{
		Width:  stack.ResolveSize(runewidth.StringWidth(a.label)+frameWidth, width),
		Height: heightFor(frameHeight+1, height),
	}
}

func (a *Attachment) Render(area render.Rect, buf *render.Buffer) {
	inner := max(area.Width-frameWidth, 1)
	row := render.Line{Spans: []render.Span{{Text: a.label, Style: attachmentStyle}}}
	buf.WriteLines(framed([]render.Line{row}, inner, borderStyle(a.Role))...)
}

// Lines 返回附件的纯文本描述。
func (a *Attachment) Lines() []string {
	return []string{a.text()}
}
