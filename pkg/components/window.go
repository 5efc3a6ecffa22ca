package components

// WindowRole 标识窗口的用途
// 窗口关闭系统通过 WindowRole -> 处理函数 的映射分发点击，不依赖组件类型反射
type WindowRole int

const (
	// WindowRolePrimary Bonnie 本体所在的主窗口
	WindowRolePrimary WindowRole = iota
	// WindowRolePoop 便便窗口，点击后消失
	WindowRolePoop
	// WindowRoleTeach 教学弹窗，点击后结束教学状态
	WindowRoleTeach
	// WindowRoleObserver 教学时跟随 Bonnie 的小"书呆子"图标
	WindowRoleObserver
	// WindowRoleBird 飞行的小鸟
	WindowRoleBird
	// WindowRoleScratch 抓痕覆盖层（点击穿透）
	WindowRoleScratch
)

// String 返回窗口用途的字符串表示
func (r WindowRole) String() string {
	switch r {
	case WindowRolePrimary:
		return "Primary"
	case WindowRolePoop:
		return "Poop"
	case WindowRoleTeach:
		return "Teach"
	case WindowRoleObserver:
		return "Observer"
	case WindowRoleBird:
		return "Bird"
	case WindowRoleScratch:
		return "Scratch"
	default:
		return "Unknown"
	}
}

// WindowComponent 描述一个桌面上的（虚拟）窗口
// 窗口系统本身是外部协作者，这里只记录状态机关心的数据
type WindowComponent struct {
	Role         WindowRole
	Title        string
	Width        int
	Height       int
	ClickThrough bool // true 时不参与点击命中测试
}

// PositionComponent 窗口左上角在桌面上的像素坐标
type PositionComponent struct {
	X, Y int
}
