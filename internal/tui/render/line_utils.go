package render

import "github.com/mattn/go-runewidth"

// LineToStatic 深拷贝行，便于安全缓存。
func LineToStatic(line Line) Line {
	spans := make([]Span, len(line.Spans))
	copy(spans, line.Spans)
	return Line{Spans: spans, Style: line.Style}
}

// PadRight 用空格将文本补齐到 width 显示宽度。
func PadRight(text string, width int) string {
	return runewidth.FillRight(text, width)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
