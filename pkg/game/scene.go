package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 是一个可运行的画面（目前只有桌面场景）
type Scene interface {
	// Update 推进一帧，deltaTime 单位为秒
	// 返回 ebiten.Termination 表示请求退出程序
	Update(deltaTime float64) error

	// Draw 把场景绘制到覆盖层窗口
	Draw(screen *ebiten.Image)
}

// Saveable 是一个可选接口，场景在程序退出时保存状态
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
