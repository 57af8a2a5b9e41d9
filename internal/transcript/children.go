package transcript

import (
	"msgstack/internal/bubble"
	"msgstack/internal/stack"
	"msgstack/internal/tui/render"
)

// bubbleIndent 让用户与助手的气泡分别偏向两侧。
const bubbleIndent = 4

// Populate 将记录转换为堆叠容器的子元素：正文一个气泡，附件单独一个占位框。
func Populate(c *stack.Container, entries []Entry, minLines int) {
	for _, e := range entries {
		role := bubble.Role(e.Role)
		params := paramsFor(role)
		if e.Text != "" || e.Attachment == "" {
			b := bubble.NewText(e.ID, role, e.Sender, e.Text)
			b.Deleted = e.Deleted
			if minLines > 0 {
				b.MinLines = minLines
			}
			c.Add(b, &params)
		}
		if e.Attachment != "" && !e.Deleted {
			c.Add(bubble.NewAttachment(e.ID, e.Attachment, role), &params)
		}
	}
}

func paramsFor(role bubble.Role) stack.LayoutParams {
	params := stack.LayoutParams{Width: stack.WrapContent, Height: stack.WrapContent}
	switch role {
	case bubble.RoleUser:
		params.Margin = render.Insets{Left: bubbleIndent}
	case bubble.RoleAssistant:
		params.Margin = render.Insets{Right: bubbleIndent}
	}
	return params
}
