package stack

import "msgstack/internal/tui/render"

// Fit 是子元素在给定空间内测量后的归类。
type Fit int

const (
	// FitNormal 表示完整显示。
	FitNormal Fit = iota
	// FitShortened 表示只能截断显示；被接受后扫描结束。
	FitShortened
	// FitTooSmall 表示空间不足以有意义地显示，视同放不下。
	FitTooSmall
)

func (f Fit) String() string {
	switch f {
	case FitNormal:
		return "normal"
	case FitShortened:
		return "shortened"
	case FitTooSmall:
		return "too_small"
	default:
		return "unknown"
	}
}

// Child 是堆叠容器中的元素。
type Child interface {
	// Measure 在给定约束下测量自身并返回尺寸。
	Measure(width, height MeasureSpec) Size
	// Render 将最近一次测量的内容写入 buf，area 为布局后分配的区域。
	Render(area render.Rect, buf *render.Buffer)
}

// Negotiator 是可选能力：参与行数预算协商的子元素实现它。
// 行数的具体含义由子元素自己定义，容器只做加减。
type Negotiator interface {
	FitClass() Fit
	ConsumedLines() int
	SetMaxDisplayedLines(lines int)
}

// Removable 是可选能力：Removed 为 true 的子元素不参与测量、布局与绘制。
type Removable interface {
	Removed() bool
}

// LayoutParams 描述子元素的尺寸请求与外边距。
type LayoutParams struct {
	Width  int
	Height int
	Margin render.Insets
}

// DefaultLayoutParams 宽度撑满、高度包裹内容、无外边距。
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{Width: MatchParent, Height: WrapContent}
}

// sanitizeParams 用默认值替换缺失或非法的参数。
func sanitizeParams(p *LayoutParams) LayoutParams {
	if p == nil {
		return DefaultLayoutParams()
	}
	out := *p
	def := DefaultLayoutParams()
	if out.Width < WrapContent {
		out.Width = def.Width
	}
	if out.Height < WrapContent {
		out.Height = def.Height
	}
	out.Margin = out.Margin.Clamp()
	return out
}

func isRemoved(c Child) bool {
	r, ok := c.(Removable)
	return ok && r.Removed()
}
