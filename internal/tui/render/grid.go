package render

// Grid 是定高的绘制面，子元素按矩形区域逐行贴入。
// 同一行只保留最后一次写入，纵向堆叠的子元素互不重叠。
type Grid struct {
	Width  int
	Height int
	rows   []gridRow
}

type gridRow struct {
	x    int
	line Line
	set  bool
}

// NewGrid 创建 width x height 的空白绘制面。
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{Width: width, Height: height, rows: make([]gridRow, height)}
}

// Blit 将行写入 area，超出 area 或绘制面的部分被裁剪。
func (g *Grid) Blit(area Rect, lines []Line) int {
	if g == nil || area.Empty() {
		return 0
	}
	written := 0
	for i, line := range lines {
		if i >= area.Height {
			break
		}
		y := area.Y + i
		if y < 0 || y >= g.Height || area.X >= g.Width {
			continue
		}
		x := area.X
		width := area.Width
		if x < 0 {
			width += x
			x = 0
		}
		if x+width > g.Width {
			width = g.Width - x
		}
		if width <= 0 {
			continue
		}
		g.rows[y] = gridRow{x: x, line: TruncateLine(line, width), set: true}
		written++
	}
	return written
}

// Row 返回第 y 行的内容及其起始列。
func (g *Grid) Row(y int) (Line, int, bool) {
	if g == nil || y < 0 || y >= g.Height {
		return Line{}, 0, false
	}
	r := g.rows[y]
	return r.line, r.x, r.set
}

// Strings 输出带样式的行，未写入的行为空串。
func (g *Grid) Strings() []string {
	return g.lines(func(l Line) string { return LinesToStrings([]Line{l})[0] })
}

// PlainStrings 输出不含样式的行。
func (g *Grid) PlainStrings() []string {
	return g.lines(func(l Line) string { return l.Plain() })
}

func (g *Grid) lines(format func(Line) string) []string {
	if g == nil {
		return nil
	}
	out := make([]string, g.Height)
	for y, r := range g.rows {
		if !r.set {
			continue
		}
		out[y] = PadRight("", r.x) + format(r.line)
	}
	return out
}
