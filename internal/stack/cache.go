package stack

const notMeasured = -1

// Phase 是容器在测量/布局周期中的状态。
type Phase int

const (
	PhaseUnmeasured Phase = iota
	PhaseMeasured
	PhaseLaidOut
)

func (p Phase) String() string {
	switch p {
	case PhaseUnmeasured:
		return "unmeasured"
	case PhaseMeasured:
		return "measured"
	case PhaseLaidOut:
		return "laid_out"
	default:
		return "unknown"
	}
}

// cacheState 记录上一次测量的约束与结果，用于判断可见集合能否复用。
type cacheState struct {
	// lastWidth 为上次测量的宽度约束；notMeasured 表示必须重算。
	lastWidth int
	// height 为上次上报的测量高度。
	height int
	// contentWidth 为上次可见子元素所需的宽度（含内边距）。
	contentWidth int
}

func unmeasured() cacheState {
	return cacheState{lastWidth: notMeasured}
}

// needsRecalc 判断是否需要重新执行逆序淘汰扫描。
// 宽度不变且目标高度等于上次上报的高度时复用上次的可见集合。
func needsRecalc(prev cacheState, widthSize, targetHeight int) bool {
	return prev.lastWidth == notMeasured ||
		prev.height != targetHeight ||
		prev.lastWidth != widthSize
}
