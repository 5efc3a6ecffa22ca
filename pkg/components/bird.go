package components

// BirdComponent 小鸟的飞行状态
// 小鸟生成后独立于 Bonnie 的状态运动，遇到屏幕边缘缓冲区时反弹
type BirdComponent struct {
	PreciseX, PreciseY float64 // 精确位置，窗口坐标由它四舍五入得到
	DirX, DirY         float64 // 单位方向向量
	SpeedMultiplier    float64 // 相对于基础速度的倍率
}
