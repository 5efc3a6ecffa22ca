package types

import "math"

// Point 是屏幕像素坐标（整数）
type Point struct {
	X, Y int
}

// Pt 是 Point{X: x, Y: y} 的简写
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add 返回 p + o
func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }

// Sub 返回 p - o
func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

// DistanceTo 返回两点间的欧氏距离
func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(float64(o.X-p.X), float64(o.Y-p.Y))
}

// Rect 是以像素为单位的轴对齐矩形，Min 包含、Max 不包含
type Rect struct {
	Min, Max Point
}

// RectAt 根据左上角和尺寸构造矩形
func RectAt(pos Point, width, height int) Rect {
	return Rect{Min: pos, Max: Point{X: pos.X + width, Y: pos.Y + height}}
}

// Contains 判断点是否落在矩形内
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Center 返回矩形中心（向下取整）
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}
