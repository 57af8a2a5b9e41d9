package stack

import "math"

// Unbounded 表示没有上限的高度或行数预算。
const Unbounded = math.MaxInt

// Mode 描述父容器给出的尺寸约束类型。
type Mode int

const (
	// Unspecified 表示父容器不限制尺寸。
	Unspecified Mode = iota
	// Exactly 表示必须使用给定尺寸。
	Exactly
	// AtMost 表示不得超过给定尺寸。
	AtMost
)

func (m Mode) String() string {
	switch m {
	case Unspecified:
		return "unspecified"
	case Exactly:
		return "exactly"
	case AtMost:
		return "at_most"
	default:
		return "unknown"
	}
}

// MeasureSpec 是单个维度上的测量约束。
type MeasureSpec struct {
	Mode Mode
	Size int
}

// Exact 构造 Exactly 约束。
func Exact(size int) MeasureSpec { return MeasureSpec{Mode: Exactly, Size: clampZero(size)} }

// UpTo 构造 AtMost 约束。
func UpTo(size int) MeasureSpec { return MeasureSpec{Mode: AtMost, Size: clampZero(size)} }

// Free 构造 Unspecified 约束。
func Free() MeasureSpec { return MeasureSpec{Mode: Unspecified} }

// Size 是测量结果，单位为终端单元格。
type Size struct {
	Width  int
	Height int
}

// 子元素请求的尺寸：MatchParent / WrapContent 或者非负的固定值。
const (
	MatchParent = -1
	WrapContent = -2
)

// ResolveSize 按约束模式调和期望尺寸。
func ResolveSize(size int, spec MeasureSpec) int {
	switch spec.Mode {
	case Exactly:
		return spec.Size
	case AtMost:
		if size > spec.Size {
			return spec.Size
		}
		return size
	default:
		return size
	}
}

// ChildSpec 根据父约束、已占用空间与子元素请求的尺寸推导子元素的约束。
func ChildSpec(parent MeasureSpec, used int, dimension int) MeasureSpec {
	size := clampZero(parent.Size - used)
	if dimension >= 0 {
		return MeasureSpec{Mode: Exactly, Size: dimension}
	}
	switch parent.Mode {
	case Exactly:
		if dimension == MatchParent {
			return MeasureSpec{Mode: Exactly, Size: size}
		}
		return MeasureSpec{Mode: AtMost, Size: size}
	case AtMost:
		return MeasureSpec{Mode: AtMost, Size: size}
	default:
		return MeasureSpec{Mode: Unspecified, Size: size}
	}
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
