package game

import "github.com/hajimehoshi/ebiten/v2"

// MonitorInfo 提供当前显示器的像素尺寸
// ok 为 false 表示暂时取不到（例如窗口尚未创建），调用方应跳过本帧
type MonitorInfo interface {
	Size() (width, height int, ok bool)
}

// EbitenMonitor 通过 Ebitengine 查询窗口所在显示器
type EbitenMonitor struct{}

// Size 返回显示器尺寸（设备无关像素，与窗口坐标一致）
func (EbitenMonitor) Size() (int, int, bool) {
	m := ebiten.Monitor()
	if m == nil {
		return 0, 0, false
	}
	w, h := m.Size()
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// StaticMonitor 固定尺寸的显示器，用于测试和命令行工具
type StaticMonitor struct {
	Width, Height int
	Unavailable   bool
}

// Size 实现 MonitorInfo
func (m StaticMonitor) Size() (int, int, bool) {
	if m.Unavailable {
		return 0, 0, false
	}
	return m.Width, m.Height, true
}
