package systems

// TransitionRequests 收集本帧内"请求立即切换状态"的信号
//
// 行为处理函数和窗口关闭处理函数不直接修改 Bonnie 的计时器闸门，
// 而是在这里登记请求；状态转换系统在帧末统一消费一次（等价于 Finish()）。
// 同一帧内的多次请求合并为一次。
type TransitionRequests struct {
	reasons []string
}

// NewTransitionRequests 创建空的请求队列
func NewTransitionRequests() *TransitionRequests {
	return &TransitionRequests{reasons: make([]string, 0, 4)}
}

// Request 登记一次立即切换请求，reason 仅用于日志
func (q *TransitionRequests) Request(reason string) {
	q.reasons = append(q.reasons, reason)
}

// Pending 本帧是否有未消费的请求
func (q *TransitionRequests) Pending() bool {
	return len(q.reasons) > 0
}

// Drain 取出并清空所有请求
func (q *TransitionRequests) Drain() []string {
	if len(q.reasons) == 0 {
		return nil
	}
	out := make([]string, len(q.reasons))
	copy(out, q.reasons)
	q.reasons = q.reasons[:0]
	return out
}
