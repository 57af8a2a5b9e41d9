package stack

import "msgstack/internal/logger"

// stop 描述逆序扫描结束的原因，仅用于日志。
type stop string

const (
	stopExhausted stop = "exhausted"
	stopFull      stop = "full"
	stopOverflow  stop = "overflow"
	stopTooSmall  stop = "too_small"
	stopShortened stop = "shortened"
	stopBudget    stop = "budget"
)

// Measure 确定能放入目标高度的最长可见后缀，并返回容器尺寸。
// height 为 Unspecified 时目标高度不限。
func (c *Container) Measure(width, height MeasureSpec) Size {
	target := height.Size
	if height.Mode == Unspecified {
		target = Unbounded
	}
	widthSize := width.Size

	var total, contentWidth int
	if needsRecalc(c.cache, widthSize, target) {
		total, contentWidth = c.fit(width, height, target)
	} else {
		total, contentWidth = c.cache.height, c.cache.contentWidth
		c.log.WithFields(logger.Fields{"width": widthSize, "height": target}).Debug("reused visible set")
	}

	c.measured = Size{
		Width:  ResolveSize(max(c.minSize.Width, contentWidth), width),
		Height: ResolveSize(max(c.minSize.Height, total), height),
	}
	c.cache = cacheState{lastWidth: widthSize, height: c.measured.Height, contentWidth: contentWidth}
	c.phase = PhaseMeasured
	return c.measured
}

// fit 执行逆序贪心扫描，返回所需的总高度与宽度（均含内边距）。
func (c *Container) fit(width, height MeasureSpec, target int) (int, int) {
	for _, e := range c.entries {
		e.hidden = true
	}

	total := c.padding.Vertical()
	contentWidth := c.padding.Horizontal()
	remaining := c.maxLines
	first := true
	accepted := 0
	reason := stopExhausted
	if total >= target {
		reason = stopFull
	}

	for i := len(c.entries) - 1; i >= 0 && total < target; i-- {
		e := c.entries[i]
		if isRemoved(e.child) {
			continue
		}
		negotiator, _ := e.child.(Negotiator)
		if negotiator != nil {
			negotiator.SetMaxDisplayedLines(remaining)
		}
		spacing := 0
		if !first {
			spacing = c.spacing
		}
		e.measured = c.measureChild(e, width, height, total+spacing)

		margin := e.params.Margin
		grow := max(0, e.measured.Height+margin.Vertical()+spacing)
		fit, consumed := FitNormal, 0
		if negotiator != nil {
			fit = negotiator.FitClass()
			consumed = max(0, negotiator.ConsumedLines())
		}

		if fit == FitTooSmall {
			reason = stopTooSmall
			break
		}
		// total < target，差值不会溢出。
		if grow > target-total {
			reason = stopOverflow
			break
		}

		e.hidden = false
		accepted++
		first = false
		total += grow
		contentWidth = max(contentWidth, e.measured.Width+margin.Horizontal()+c.padding.Horizontal())
		remaining -= consumed

		if fit == FitShortened {
			reason = stopShortened
			break
		}
		if remaining <= 0 {
			reason = stopBudget
			break
		}
		if total >= target {
			reason = stopFull
		}
	}

	c.log.WithFields(logger.Fields{
		"visible":     accepted,
		"height":      total,
		"budget_left": remaining,
		"stop":        reason,
	}).Debug("recomputed visible set")
	return total, contentWidth
}

// measureChild 以剩余空间测量子元素；used 为已占用的高度（含内边距与间距）。
func (c *Container) measureChild(e *entry, width, height MeasureSpec, used int) Size {
	margin := e.params.Margin
	widthSpec := ChildSpec(width, c.padding.Horizontal()+margin.Horizontal(), e.params.Width)
	heightSpec := ChildSpec(height, used+margin.Vertical(), e.params.Height)
	if height.Mode == Unspecified {
		heightSpec = ChildSpec(height, 0, e.params.Height)
	}
	size := e.child.Measure(widthSpec, heightSpec)
	return Size{Width: clampZero(size.Width), Height: clampZero(size.Height)}
}
