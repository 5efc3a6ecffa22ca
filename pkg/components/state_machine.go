package components

// StateMachineComponent 是 Bonnie 的状态计时器 + 闸门
//
// Remaining 倒计时到 0 且 CanChange 为 true 时，状态转换系统才会切换状态。
// 某些状态（行走、追逐、教学）进入时会 Block()，由行为自身在完成条件满足时
// 通过 Finish() 解除并立即触发切换，使这些状态的持续时间由数据而不是计时器决定。
type StateMachineComponent struct {
	Duration  float64 // 本轮配置的总时长（秒）
	Remaining float64 // 剩余时长（秒），最小为 0
	CanChange bool    // false 时禁止自动切换，即使计时器已结束

	justFinished bool // 最近一次 Tick/Finish 是否刚好走到 0
}

// NewStateMachineComponent 创建一个未阻塞、时长为 duration 的闸门
func NewStateMachineComponent(duration float64) *StateMachineComponent {
	if duration < 0 {
		duration = 0
	}
	return &StateMachineComponent{
		Duration:  duration,
		Remaining: duration,
		CanChange: true,
	}
}

// Tick 推进倒计时，剩余时长最小为 0
func (m *StateMachineComponent) Tick(deltaTime float64) {
	if m.Remaining <= 0 {
		m.Remaining = 0
		m.justFinished = false
		return
	}

	m.Remaining -= deltaTime
	if m.Remaining <= 0 {
		m.Remaining = 0
		m.justFinished = true
		return
	}
	m.justFinished = false
}

// Finished 倒计时是否已经走到 0
func (m *StateMachineComponent) Finished() bool {
	return m.Remaining <= 0
}

// JustFinished 倒计时是否在最近一次 Tick（或 Finish）中刚好结束
func (m *StateMachineComponent) JustFinished() bool {
	return m.justFinished
}

// Block 禁止自动切换
func (m *StateMachineComponent) Block() {
	m.CanChange = false
}

// Unblock 允许自动切换
func (m *StateMachineComponent) Unblock() {
	m.CanChange = true
}

// ToggleBlock 翻转 CanChange
func (m *StateMachineComponent) ToggleBlock() {
	m.CanChange = !m.CanChange
}

// Finish 立即结束倒计时并解除阻塞
// 重复调用是幂等的：已结束且未阻塞的闸门保持原状
func (m *StateMachineComponent) Finish() {
	if m.Remaining > 0 {
		m.justFinished = true
	}
	m.Remaining = 0
	m.CanChange = true
}

// Reset 以新的时长重新开始倒计时，不改变 CanChange
func (m *StateMachineComponent) Reset(duration float64) {
	if duration < 0 {
		duration = 0
	}
	m.Duration = duration
	m.Remaining = duration
	m.justFinished = false
}
