package systems

import (
	"log"

	"github.com/gonewx/bonnie/pkg/components"
	"github.com/gonewx/bonnie/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeySource 键盘状态
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
}

// EbitenKeys 从 Ebitengine 读取键盘状态
type EbitenKeys struct{}

// IsKeyPressed 实现 KeySource
func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

// IsKeyJustPressed 实现 KeySource
func (EbitenKeys) IsKeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// AudioControls 键盘可以调整的音频设置，修改后立即保存
type AudioControls interface {
	ToggleMeowMuted() bool
	AdjustSoundVolume(delta float64) float64
}

// VolumeStep 每次按 -/= 调整的音量
const VolumeStep = 0.1

// ControlSystem 键盘控制
//   - 方向键：每帧把 Bonnie 移动 step 像素
//   - M：切换喵叫静音
//   - - / =：降低 / 提高音量
//   - Q：退出程序
type ControlSystem struct {
	entityManager *ecs.EntityManager
	keys          KeySource
	step          int
	audio         AudioControls // 可为 nil
}

// NewControlSystem 创建键盘控制系统，audio 可为 nil
func NewControlSystem(em *ecs.EntityManager, keys KeySource, step int, audio AudioControls) *ControlSystem {
	return &ControlSystem{
		entityManager: em,
		keys:          keys,
		step:          step,
		audio:         audio,
	}
}

// Update 处理调试按键，按下 Q 时返回 ebiten.Termination
func (s *ControlSystem) Update() error {
	if s.keys.IsKeyJustPressed(ebiten.KeyQ) {
		log.Printf("[ControlSystem] Quit requested")
		return ebiten.Termination
	}
	s.updateAudio()

	dx, dy := 0, 0
	if s.keys.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= s.step
	}
	if s.keys.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += s.step
	}
	if s.keys.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= s.step
	}
	if s.keys.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += s.step
	}
	if dx == 0 && dy == 0 {
		return nil
	}

	for _, id := range ecs.GetEntitiesWith2[*components.BonnieComponent, *components.PositionComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pos.X += dx
		pos.Y += dy
	}
	return nil
}

// updateAudio 处理音频快捷键
func (s *ControlSystem) updateAudio() {
	if s.audio == nil {
		return
	}
	if s.keys.IsKeyJustPressed(ebiten.KeyM) {
		s.audio.ToggleMeowMuted()
	}
	if s.keys.IsKeyJustPressed(ebiten.KeyMinus) {
		s.audio.AdjustSoundVolume(-VolumeStep)
	}
	if s.keys.IsKeyJustPressed(ebiten.KeyEqual) {
		s.audio.AdjustSoundVolume(VolumeStep)
	}
}
