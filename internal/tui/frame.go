package tui

import (
	"strings"

	"msgstack/internal/config"
	"msgstack/internal/logger"
	"msgstack/internal/stack"
	"msgstack/internal/transcript"
	"msgstack/internal/tui/render"
)

// Frame 是一次测量、布局与绘制的结果。
type Frame struct {
	Lines   []string
	Plain   []string
	Size    stack.Size
	Visible int
	Hidden  int
}

// BuildStack 按配置创建容器并填入记录。
func BuildStack(cfg config.Config, entries []transcript.Entry, log *logger.LogEntry) *stack.Container {
	opts := []stack.Option{
		stack.WithSpacing(cfg.Spacing),
		stack.WithMaxDisplayedLines(cfg.DisplayedLines()),
		stack.WithPadding(render.TLBR(cfg.Padding.Top, cfg.Padding.Left, cfg.Padding.Bottom, cfg.Padding.Right)),
		stack.WithDirection(directionFor(cfg.RTL)),
		stack.WithLogger(log),
	}
	c := stack.New(opts...)
	transcript.Populate(c, entries, cfg.MinLines)
	return c
}

func directionFor(rtl bool) stack.Direction {
	if rtl {
		return stack.RightToLeft
	}
	return stack.LeftToRight
}

// Paint 在 width x height 的区域内绘制容器，内容贴底显示。
// 先以 AtMost 测量，再以上报的高度精确测量一次。
func Paint(c *stack.Container, width, height int) Frame {
	width = max(width, 0)
	height = max(height, 0)
	w := stack.Exact(width)
	size := c.Measure(w, stack.UpTo(height))
	size = c.Measure(w, stack.Exact(size.Height))

	c.Layout(render.Rect{Y: height - size.Height, Width: size.Width, Height: size.Height})
	g := render.NewGrid(width, height)
	hidden := c.Draw(g)
	return Frame{
		Lines:   g.Strings(),
		Plain:   g.PlainStrings(),
		Size:    size,
		Visible: len(c.Placements()),
		Hidden:  hidden,
	}
}

type texter interface {
	Lines() []string
}

// VisibleText 返回可见子元素的纯文本，按时间顺序以空行分隔。
func VisibleText(c *stack.Container) string {
	blocks := []string{}
	for _, p := range c.Placements() {
		if t, ok := p.Child.(texter); ok {
			blocks = append(blocks, strings.Join(t.Lines(), "\n"))
		}
	}
	return strings.Join(blocks, "\n\n")
}
