// Package utils 提供通用工具函数
package utils

import (
	"github.com/gonewx/bonnie/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置（窗口内坐标）
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标），窗口内坐标
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// ToDesktop 把覆盖层窗口内的坐标换算成桌面坐标
func ToDesktop(x, y int) types.Point {
	wx, wy := ebiten.WindowPosition()
	return types.Pt(wx+x, wy+y)
}

// PointerClicks 以桌面坐标报告本帧的点击
type PointerClicks struct{}

// JustClicked 本帧是否发生了点击，以及点击的桌面坐标
func (PointerClicks) JustClicked() (types.Point, bool) {
	clicked, x, y := IsJustTouchedOrClicked()
	if !clicked {
		return types.Point{}, false
	}
	return ToDesktop(x, y), true
}

// PointerDesktopPosition 当前指针的桌面坐标
func PointerDesktopPosition() types.Point {
	x, y := GetPointerPosition()
	return ToDesktop(x, y)
}
