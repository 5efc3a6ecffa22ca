package components

// LifetimeComponent 管理临时实体的生命周期
// 用于自动清理存在时间超过上限的实体(如抓痕、小鸟)
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
	FadeOut         float64 // 结束前淡出的时长(秒)，0 表示不淡出
}

// Alpha 返回当前应使用的不透明度 (0.0 ~ 1.0)
func (l *LifetimeComponent) Alpha() float64 {
	if l.FadeOut <= 0 {
		return 1.0
	}
	left := l.MaxLifetime - l.CurrentLifetime
	if left >= l.FadeOut {
		return 1.0
	}
	if left <= 0 {
		return 0.0
	}
	return left / l.FadeOut
}
