package components

import "github.com/gonewx/bonnie/pkg/types"

// BonnieComponent 标识桌宠本体（Actor）
// 整个进程生命周期内只存在一个拥有此组件的实体，它同时拥有 StateMachineComponent
type BonnieComponent struct {
	State types.State // 当前状态
}
