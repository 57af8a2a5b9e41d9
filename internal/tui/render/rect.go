package render

// Insets 用于描述内边距（或外边距）。
type Insets struct {
	Top    int
	Left   int
	Right  int
	Bottom int
}

// TLBR 通过 top/left/bottom/right 构造 Insets。
func TLBR(top, left, bottom, right int) Insets {
	return Insets{Top: top, Left: left, Bottom: bottom, Right: right}
}

// Horizontal 返回左右之和。
func (in Insets) Horizontal() int { return in.Left + in.Right }

// Vertical 返回上下之和。
func (in Insets) Vertical() int { return in.Top + in.Bottom }

// Clamp 将负值归零。
func (in Insets) Clamp() Insets {
	return Insets{
		Top:    maxInt(in.Top, 0),
		Left:   maxInt(in.Left, 0),
		Right:  maxInt(in.Right, 0),
		Bottom: maxInt(in.Bottom, 0),
	}
}

// Rect 表示矩形区域。
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty 判断矩形是否没有面积。
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset 按内边距收紧矩形，使用饱和计算避免下溢。
func (r Rect) Inset(in Insets) Rect {
	w := r.Width - in.Left - in.Right
	h := r.Height - in.Top - in.Bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  w,
		Height: h,
	}
}
