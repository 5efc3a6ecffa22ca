package behavior

import (
	"github.com/gonewx/bonnie/pkg/game"
	"github.com/gonewx/bonnie/pkg/types"
)

// Selector 随机选择下一个状态
//
// 候选集合是启用的状态种类去掉当前种类；每个候选等概率。
// Walking 的目标点在距屏幕边缘 Margin 以内的区域均匀选取。
type Selector struct {
	kinds  []types.StateKind
	margin int
}

// NewSelector 创建状态选择器
// kinds 为空时使用全部状态种类
func NewSelector(kinds []types.StateKind, margin int) *Selector {
	if len(kinds) == 0 {
		kinds = types.AllStateKinds
	}
	return &Selector{
		kinds:  append([]types.StateKind(nil), kinds...),
		margin: margin,
	}
}

// RandomState 返回与 current 种类不同的随机状态
//
// 若启用的状态只有当前这一种（配置校验会阻止这种情况），退回 Idle
// （当前就是 Idle 时退回 Walking），保证总是发生一次真正的切换。
func (s *Selector) RandomState(current types.State, monitorW, monitorH int, rng game.Rand) types.State {
	candidates := make([]types.StateKind, 0, len(s.kinds))
	for _, k := range s.kinds {
		if k != current.Kind {
			candidates = append(candidates, k)
		}
	}

	var kind types.StateKind
	switch {
	case len(candidates) > 0:
		kind = candidates[rng.IntN(len(candidates))]
	case current.Kind != types.StateIdle:
		kind = types.StateIdle
	default:
		kind = types.StateWalking
	}

	if kind == types.StateWalking {
		return types.Walking(types.Pt(
			walkAxis(monitorW, s.margin, rng),
			walkAxis(monitorH, s.margin, rng),
		))
	}
	return types.StateOf(kind)
}

// walkAxis 在 [margin, dim-margin) 内均匀取值
// 区间为空时退回 [0, dim)；dim <= 0 时返回 0
func walkAxis(dim, margin int, rng game.Rand) int {
	lo := margin
	hi := max(dim-margin, 0)
	if hi > lo {
		return lo + rng.IntN(hi-lo)
	}
	if dim <= 0 {
		return 0
	}
	return rng.IntN(dim)
}
