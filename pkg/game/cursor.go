package game

import (
	"github.com/gonewx/bonnie/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// CursorTracker 提供光标在桌面上的全局坐标
// ok 为 false 表示当前取不到光标位置，依赖光标的行为跳过本帧
type CursorTracker interface {
	Position() (types.Point, bool)
}

// EbitenCursorTracker 每帧轮询一次 Ebitengine 的光标位置
//
// 覆盖层窗口铺满整个显示器，所以窗口内坐标加上窗口位置就是全局坐标。
type EbitenCursorTracker struct {
	last  types.Point
	valid bool
}

// Poll 采样当前光标位置，每帧在状态机运行前调用一次
func (c *EbitenCursorTracker) Poll() {
	cx, cy := ebiten.CursorPosition()
	wx, wy := ebiten.WindowPosition()
	c.last = types.Pt(wx+cx, wy+cy)
	c.valid = true
}

// Position 实现 CursorTracker
func (c *EbitenCursorTracker) Position() (types.Point, bool) {
	return c.last, c.valid
}

// FixedCursor 固定位置的光标，用于测试
type FixedCursor struct {
	At        types.Point
	Available bool
}

// Position 实现 CursorTracker
func (c *FixedCursor) Position() (types.Point, bool) {
	return c.At, c.Available
}
