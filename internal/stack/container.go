package stack

import (
	"msgstack/internal/logger"
	"msgstack/internal/tui/render"
)

// Direction 决定子元素贴靠的水平边。
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

type entry struct {
	child    Child
	params   LayoutParams
	hidden   bool
	placed   bool
	measured Size
	rect     render.Rect
}

// Container 是自底向上的纵向堆叠布局：从最新的子元素开始逐个放入，
// 放不下即停止，旧的子元素被隐藏。可见子元素总是子序列的连续后缀。
//
// 容器不是并发安全的，测量、布局与绘制需在同一调用路径上依次进行。
type Container struct {
	spacing   int
	maxLines  int
	padding   render.Insets
	direction Direction
	minSize   Size

	entries  []*entry
	cache    cacheState
	measured Size
	phase    Phase

	log *logger.LogEntry
}

// Option 配置 Container。
type Option func(*Container)

// WithSpacing 设置相邻可见子元素之间的间距。
func WithSpacing(n int) Option {
	return func(c *Container) { c.spacing = clampZero(n) }
}

// WithMaxDisplayedLines 设置所有子元素共享的行数预算。
func WithMaxDisplayedLines(n int) Option {
	return func(c *Container) { c.maxLines = clampZero(n) }
}

// WithPadding 设置容器内边距。
func WithPadding(in render.Insets) Option {
	return func(c *Container) { c.padding = in.Clamp() }
}

// WithDirection 设置水平方向。
func WithDirection(d Direction) Option {
	return func(c *Container) { c.direction = d }
}

// WithMinSize 设置容器的建议最小尺寸。
func WithMinSize(s Size) Option {
	return func(c *Container) { c.minSize = Size{Width: clampZero(s.Width), Height: clampZero(s.Height)} }
}

// WithLogger 替换默认的日志入口。
func WithLogger(l *logger.LogEntry) Option {
	return func(c *Container) {
		if l != nil {
			c.log = l
		}
	}
}

// New 创建空容器，行数预算默认不限。
func New(opts ...Option) *Container {
	c := &Container{
		maxLines: Unbounded,
		cache:    unmeasured(),
		log:      logger.Named("stack"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add 追加一个子元素（时间上最新）。params 为 nil 时使用默认参数。
func (c *Container) Add(child Child, params *LayoutParams) {
	if c == nil || child == nil {
		return
	}
	c.entries = append(c.entries, &entry{child: child, params: sanitizeParams(params), hidden: true})
	c.invalidate()
}

// Remove 删除第 i 个子元素。
func (c *Container) Remove(i int) {
	if c == nil || i < 0 || i >= len(c.entries) {
		return
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	c.invalidate()
}

// Reset 删除全部子元素。
func (c *Container) Reset() {
	if c == nil {
		return
	}
	c.entries = nil
	c.invalidate()
}

// Len 返回子元素数量。
func (c *Container) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Child 返回第 i 个子元素。
func (c *Container) Child(i int) Child {
	if c == nil || i < 0 || i >= len(c.entries) {
		return nil
	}
	return c.entries[i].child
}

// SetSpacing 修改间距，负数按 0 处理。
func (c *Container) SetSpacing(n int) {
	c.spacing = clampZero(n)
	c.invalidate()
}

// Spacing 返回当前间距。
func (c *Container) Spacing() int { return c.spacing }

// SetMaxDisplayedLines 修改行数预算，负数按 0 处理。
func (c *Container) SetMaxDisplayedLines(n int) {
	c.maxLines = clampZero(n)
	c.invalidate()
}

// MaxDisplayedLines 返回当前行数预算。
func (c *Container) MaxDisplayedLines() int { return c.maxLines }

// SetDirection 修改水平方向。
func (c *Container) SetDirection(d Direction) {
	c.direction = d
	c.invalidate()
}

// Direction 返回当前水平方向。
func (c *Container) Direction() Direction { return c.direction }

// Phase 返回当前所处阶段。
func (c *Container) Phase() Phase { return c.phase }

// MeasuredSize 返回最近一次测量结果。
func (c *Container) MeasuredSize() Size { return c.measured }

// Hidden 报告第 i 个子元素是否在当前可见集合之外。
func (c *Container) Hidden(i int) bool {
	if c == nil || i < 0 || i >= len(c.entries) {
		return true
	}
	return c.entries[i].hidden
}

// Visible 返回当前可见子元素的下标（正序）。
func (c *Container) Visible() []int {
	if c == nil {
		return nil
	}
	out := []int{}
	for i, e := range c.entries {
		if !e.hidden && !isRemoved(e.child) {
			out = append(out, i)
		}
	}
	return out
}

// invalidate 丢弃缓存的可见集合，下次测量必定重算。
func (c *Container) invalidate() {
	c.cache.lastWidth = notMeasured
	c.phase = PhaseUnmeasured
}
