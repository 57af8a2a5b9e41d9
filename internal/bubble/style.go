package bubble

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"msgstack/internal/stack"
	"msgstack/internal/tui/render"
)

// Role 区分消息来源，决定边框与标题样式。
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

var (
	userBorderStyle      = lipgloss.NewStyle().Faint(true)
	assistantBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
	systemBorderStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	senderStyle          = lipgloss.NewStyle().Bold(true)
	attachmentStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a"))
	truncatedStyle       = lipgloss.NewStyle().Faint(true)
)

// frame 的水平开销："│ " + " │"；垂直开销：上下边框各一行。
const (
	frameWidth  = 4
	frameHeight = 2
)

func borderStyle(role Role) lipgloss.Style {
	switch role {
	case RoleUser:
		return userBorderStyle
	case RoleAssistant:
		return assistantBorderStyle
	default:
		return systemBorderStyle
	}
}

// framed 用圆角边框包裹内容行，inner 为内容宽度。
func framed(rows []render.Line, inner int, style lipgloss.Style) []render.Line {
	border := lipgloss.RoundedBorder()
	out := make([]render.Line, 0, len(rows)+frameHeight)
	out = append(out, render.Line{Spans: []render.Span{{
		Text:  border.TopLeft + strings.Repeat(border.Top, inner+2) + border.TopRight,
		Style: style,
	}}})
	for _, row := range rows {
		spans := make([]render.Span, 0, len(row.Spans)+3)
		spans = append(spans, render.Span{Text: border.Left + " ", Style: style})
		spans = append(spans, row.Spans...)
		if pad := inner - row.Width(); pad > 0 {
			spans = append(spans, render.Span{Text: strings.Repeat(" ", pad)})
		}
		spans = append(spans, render.Span{Text: " " + border.Right, Style: style})
		out = append(out, render.Line{Spans: spans})
	}
	out = append(out, render.Line{Spans: []render.Span{{
		Text:  border.BottomLeft + strings.Repeat(border.Bottom, inner+2) + border.BottomRight,
		Style: style,
	}}})
	return out
}

// maxInner 返回宽度约束下内容区的最大宽度；不受限时返回 natural。
func maxInner(width stack.MeasureSpec, natural int) int {
	if width.Mode == stack.Unspecified {
		return max(natural, 1)
	}
	return max(width.Size-frameWidth, 1)
}

// widest 返回各行中最大的显示宽度。
func widest(rows []string) int {
	w := 0
	for _, row := range rows {
		w = max(w, runewidth.StringWidth(row))
	}
	return w
}

// heightFor 返回上报的高度：只有 Exactly 约束会改变它，
// AtMost 下如实上报，放不下由容器判定。
func heightFor(natural int, spec stack.MeasureSpec) int {
	if spec.Mode == stack.Exactly {
		return spec.Size
	}
	return natural
}
