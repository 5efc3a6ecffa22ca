package utils

import (
	"math"

	"github.com/gonewx/bonnie/pkg/types"
)

// ResolutionSpeed 根据显示器对角线计算移动速度（像素/秒）
//
// 速度按"每秒移动对角线的百分比"定义，使不同分辨率下的观感一致：
//
//	speed = diagonal × baseRatio × multiplier
func ResolutionSpeed(width, height int, baseRatio, multiplier float64) float64 {
	diagonal := math.Hypot(float64(width), float64(height))
	return diagonal * baseRatio * multiplier
}

// StepToward 计算一帧内从 current 向 target 移动后的位置
//
// 参数:
//   - current: 当前窗口坐标
//   - target: 目标窗口坐标
//   - speed: 速度（像素/秒）
//   - deltaTime: 本帧耗时（秒）
//
// 返回:
//   - types.Point: 新位置
//   - bool: 是否已到达（剩余距离不超过一帧步长时直接吸附到目标）
//
// 每个轴的位移四舍五入到整数像素，且不会越过该轴上的目标；
// 位移长度不超过 max(step, 1)：取整后过长时收回，
// 剩余距离大于 0 时位移永远不是零向量，避免停在目标附近不动。
func StepToward(current, target types.Point, speed, deltaTime float64) (types.Point, bool) {
	dx := target.X - current.X
	dy := target.Y - current.Y
	if dx == 0 && dy == 0 {
		return target, true
	}

	distance := math.Hypot(float64(dx), float64(dy))
	step := speed * deltaTime
	if distance <= step {
		return target, true
	}
	if step <= 0 {
		return current, false
	}

	scale := step / distance
	exactX, exactY := float64(dx)*scale, float64(dy)*scale
	mx := clampAxis(int(math.Round(exactX)), dx)
	my := clampAxis(int(math.Round(exactY)), dy)
	mx, my = shorten(mx, my, exactX, exactY, step)

	if mx == 0 && my == 0 {
		// 步长不足半个像素：沿主轴前进 1 像素
		if abs(dx) >= abs(dy) {
			mx = sign(dx)
		} else {
			my = sign(dy)
		}
	}

	return types.Point{X: current.X + mx, Y: current.Y + my}, false
}

// shorten 四舍五入可能让位移略长于 step，此时把向上取整最多的轴往零收 1 像素
// 两个轴都收过后等同于向零截断，长度一定不超过 step
func shorten(mx, my int, exactX, exactY, step float64) (int, int) {
	for math.Hypot(float64(mx), float64(my)) > step {
		excessX := float64(abs(mx)) - math.Abs(exactX)
		excessY := float64(abs(my)) - math.Abs(exactY)
		switch {
		case excessX > 0 && excessX >= excessY:
			mx -= sign(mx)
		case excessY > 0:
			my -= sign(my)
		default:
			return mx, my
		}
	}
	return mx, my
}

// clampAxis 保证单轴位移与剩余量同号且不超过剩余量
func clampAxis(move, remaining int) int {
	if remaining >= 0 {
		return max(0, min(move, remaining))
	}
	return min(0, max(move, remaining))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
