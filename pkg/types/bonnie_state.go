// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"
	"strings"
)

// StateKind 定义 Bonnie 状态机的状态种类（不含数据）
type StateKind int

const (
	// StateIdle 睡觉/发呆，光标靠近时醒来
	StateIdle StateKind = iota
	// StateWalking 走向屏幕上的随机目标点
	StateWalking
	// StatePooping 在当前位置拉一坨（生成可点击的临时窗口）
	StatePooping
	// StateChasing 追逐鼠标光标
	StateChasing
	// StateTeaching 弹出"教育"窗口，点击关闭后结束
	StateTeaching
	// StateMeowing 随机播放一段猫叫
	StateMeowing
	// StateBird 放出一只在屏幕边缘反弹的小鸟
	StateBird
	// StateScratch 在当前位置留下抓痕（点击穿透）
	StateScratch
)

// AllStateKinds 按声明顺序列出全部状态种类
var AllStateKinds = []StateKind{
	StateIdle,
	StateWalking,
	StatePooping,
	StateChasing,
	StateTeaching,
	StateMeowing,
	StateBird,
	StateScratch,
}

// String 返回状态种类的字符串表示
func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "Idle"
	case StateWalking:
		return "Walking"
	case StatePooping:
		return "Pooping"
	case StateChasing:
		return "Chasing"
	case StateTeaching:
		return "Teaching"
	case StateMeowing:
		return "Meowing"
	case StateBird:
		return "Bird"
	case StateScratch:
		return "Scratch"
	default:
		return "Unknown"
	}
}

// ParseStateKind 按名称（不区分大小写）解析状态种类
// 用于从配置文件读取启用的状态列表
func ParseStateKind(name string) (StateKind, error) {
	for _, k := range AllStateKinds {
		if strings.EqualFold(k.String(), strings.TrimSpace(name)) {
			return k, nil
		}
	}
	return StateIdle, fmt.Errorf("unknown state kind: %q", name)
}

// State 是 Bonnie 当前所处的状态
//
// 这是一个封闭的和类型：Kind 决定变体，只有 StateWalking 使用 Target。
// 其余变体的 Target 恒为零值，使用构造函数创建可以保证这一点。
type State struct {
	Kind   StateKind
	Target Point // 仅 Walking 有效：目标窗口坐标
}

// Idle 返回 Idle 状态
func Idle() State { return State{Kind: StateIdle} }

// Walking 返回走向 target 的 Walking 状态
func Walking(target Point) State { return State{Kind: StateWalking, Target: target} }

// StateOf 返回不携带数据的状态变体
// 对 StateWalking 调用时目标为 (0, 0)，需要目标点请使用 Walking()
func StateOf(kind StateKind) State { return State{Kind: kind} }

// WalkTarget 返回 Walking 状态的目标点
func (s State) WalkTarget() (Point, bool) {
	if s.Kind != StateWalking {
		return Point{}, false
	}
	return s.Target, true
}

// SameKind 判断两个状态是否属于同一变体（忽略携带的数据）
func (s State) SameKind(other State) bool {
	return s.Kind == other.Kind
}

// String 返回状态的可读表示，例如 "Walking(120, 340)"
func (s State) String() string {
	if s.Kind == StateWalking {
		return fmt.Sprintf("Walking(%d, %d)", s.Target.X, s.Target.Y)
	}
	return s.Kind.String()
}
