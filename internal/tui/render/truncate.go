package render

import "github.com/mattn/go-runewidth"

// Ellipsis 标记被截断的内容。
const Ellipsis = "…"

// Ellipsize 在末尾追加省略号，保证总宽度不超过 width。
func Ellipsize(text string, width int) string {
	if width <= 0 {
		return ""
	}
	tail := runewidth.StringWidth(Ellipsis)
	if runewidth.StringWidth(text)+tail <= width {
		return text + Ellipsis
	}
	return runewidth.Truncate(text, max(width-tail, 0), "") + Ellipsis
}

// TruncateLine 按显示宽度裁剪行，超出部分直接丢弃。
func TruncateLine(line Line, width int) Line {
	if width <= 0 {
		return Line{Style: line.Style}
	}
	if line.Width() <= width {
		return LineToStatic(line)
	}
	spans := make([]Span, 0, len(line.Spans))
	remain := width
	for _, sp := range line.Spans {
		if remain <= 0 {
			break
		}
		sw := runewidth.StringWidth(sp.Text)
		if sw <= remain {
			spans = append(spans, sp)
			remain -= sw
			continue
		}
		spans = append(spans, Span{Text: runewidth.Truncate(sp.Text, remain, ""), Style: sp.Style})
		remain = 0
	}
	return Line{Spans: spans, Style: line.Style}
}
