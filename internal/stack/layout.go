package stack

import "msgstack/internal/tui/render"

// Placement 是可见子元素在布局后的位置。
type Placement struct {
	Index int
	Child Child
	Rect  render.Rect
}

// Layout 在 bounds 内按正序放置可见子元素。
// 布局结束后缓存失效，下一次测量一定会重新计算可见集合。
func (c *Container) Layout(bounds render.Rect) {
	inner := bounds.Inset(c.padding)
	top := inner.Y
	first := true

	for _, e := range c.entries {
		e.placed = false
		if isRemoved(e.child) || e.hidden {
			continue
		}
		margin := e.params.Margin
		w, h := e.measured.Width, e.measured.Height

		var left int
		if c.direction == RightToLeft {
			left = inner.X + inner.Width - w - margin.Right
		} else {
			left = inner.X + margin.Left
		}
		if !first {
			top += c.spacing
		}
		top += margin.Top
		e.rect = render.Rect{X: left, Y: top, Width: w, Height: h}
		e.placed = true
		top += h + margin.Bottom
		first = false
	}

	c.cache.lastWidth = notMeasured
	c.phase = PhaseLaidOut
}

// Placements 返回已放置的子元素，按正序排列。
func (c *Container) Placements() []Placement {
	if c == nil {
		return nil
	}
	out := []Placement{}
	for i, e := range c.entries {
		if e.placed && !e.hidden && !isRemoved(e.child) {
			out = append(out, Placement{Index: i, Child: e.child, Rect: e.rect})
		}
	}
	return out
}

// Draw 将可见子元素绘制到 g 中，返回因隐藏而跳过的子元素数量。
// 隐藏的子元素不会被绘制后再裁剪，而是完全跳过。
func (c *Container) Draw(g *render.Grid) int {
	if c == nil {
		return 0
	}
	skipped := 0
	for _, e := range c.entries {
		if isRemoved(e.child) {
			continue
		}
		if e.hidden {
			skipped++
			continue
		}
		if !e.placed {
			continue
		}
		buf := render.Buffer{}
		e.child.Render(e.rect, &buf)
		g.Blit(e.rect, buf.Lines)
	}
	return skipped
}
