package behavior

import (
	"log"

	"github.com/gonewx/bonnie/pkg/components"
	"github.com/gonewx/bonnie/pkg/config"
	"github.com/gonewx/bonnie/pkg/ecs"
	"github.com/gonewx/bonnie/pkg/game"
	"github.com/gonewx/bonnie/pkg/systems"
	"github.com/gonewx/bonnie/pkg/types"
	"github.com/gonewx/bonnie/pkg/utils"
)

// 日志输出间隔常量
const LogOutputFrameInterval = 100 // 日志输出间隔（每N帧输出一次）

// BehaviorSystem 执行 Bonnie 当前状态的行为
//
// 每个状态有三段：进入（OnEnter）、每帧（Update）、退出（OnExit）。
// 行为从不直接修改计时器闸门，需要提前结束当前状态时通过 requests 登记。
type BehaviorSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.BonnieConfig
	monitor       game.MonitorInfo
	cursor        game.CursorTracker
	rng           game.Rand
	sound         game.SoundPlayer
	requests      *systems.TransitionRequests

	logFrameCounter int // 日志输出计数器

	chaseElapsed  float64      // 本次追逐已持续的时间
	teachPopup    ecs.EntityID // 当前教学弹窗，0 表示没有
	teachObserver ecs.EntityID // 当前观察者图标，0 表示没有
}

// NewBehaviorSystem 创建一个新的行为系统
// 参数:
//   - em: EntityManager 实例
//   - cfg: Bonnie 配置
//   - monitor: 显示器尺寸，用于计算移动速度
//   - cursor: 全局光标位置
//   - rng: 随机源（教学图片、猫叫、小鸟方向）
//   - sound: 音效播放，可为 nil
//   - requests: 立即切换请求队列
func NewBehaviorSystem(
	em *ecs.EntityManager,
	cfg *config.BonnieConfig,
	monitor game.MonitorInfo,
	cursor game.CursorTracker,
	rng game.Rand,
	sound game.SoundPlayer,
	requests *systems.TransitionRequests,
) *BehaviorSystem {
	return &BehaviorSystem{
		entityManager: em,
		cfg:           cfg,
		monitor:       monitor,
		cursor:        cursor,
		rng:           rng,
		sound:         sound,
		requests:      requests,
	}
}

// Update 执行当前状态的每帧行为
func (s *BehaviorSystem) Update(deltaTime float64) {
	id, bonnie, _ := actor(s.entityManager)

	s.logFrameCounter++
	if s.logFrameCounter%LogOutputFrameInterval == 1 {
		pos := s.position(id)
		log.Printf("[BehaviorSystem] state=%v pos=(%d, %d)", bonnie.State, pos.X, pos.Y)
	}

	switch bonnie.State.Kind {
	case types.StateIdle:
		s.updateIdle(id)
	case types.StateWalking:
		s.updateWalking(id, bonnie.State, deltaTime)
	case types.StateChasing:
		s.updateChasing(id, deltaTime)
	case types.StateTeaching:
		s.updateTeaching(id, deltaTime)
	case types.StatePooping, types.StateMeowing, types.StateBird, types.StateScratch:
		// 一次性状态，进入时已完成全部工作
	default:
		panic("bonnie: unhandled state kind " + bonnie.State.Kind.String())
	}
}

// OnEnter 实现 StateListener
func (s *BehaviorSystem) OnEnter(id ecs.EntityID, next types.State) {
	switch next.Kind {
	case types.StateIdle:
		s.enterIdle(id)
	case types.StateWalking:
		// 目标点已在状态里，闸门由转换系统阻塞
	case types.StateChasing:
		s.enterChasing(id)
	case types.StateTeaching:
		s.enterTeaching(id)
	case types.StatePooping:
		s.enterPooping(id)
	case types.StateMeowing:
		s.enterMeowing()
	case types.StateBird:
		s.enterBird(id)
	case types.StateScratch:
		s.enterScratch(id)
	default:
		panic("bonnie: unhandled state kind " + next.Kind.String())
	}
}

// OnExit 实现 StateListener
func (s *BehaviorSystem) OnExit(id ecs.EntityID, old types.State) {
	switch old.Kind {
	case types.StateIdle, types.StateChasing:
		s.setSprite(id, s.cfg.Bonnie.Sprites.Normal)
	case types.StateTeaching:
		s.exitTeaching()
	case types.StateWalking, types.StatePooping, types.StateMeowing, types.StateBird, types.StateScratch:
	default:
		panic("bonnie: unhandled state kind " + old.Kind.String())
	}
}

// position 返回 Bonnie 的位置组件（主窗口左上角）
func (s *BehaviorSystem) position(id ecs.EntityID) *components.PositionComponent {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		panic("bonnie: actor entity has no position")
	}
	return pos
}

// actorPoint 返回 Bonnie 主窗口左上角
func (s *BehaviorSystem) actorPoint(id ecs.EntityID) types.Point {
	pos := s.position(id)
	return types.Pt(pos.X, pos.Y)
}

// actorCenter 返回 Bonnie 精灵的视觉中心
func (s *BehaviorSystem) actorCenter(id ecs.EntityID) types.Point {
	return s.actorPoint(id).Add(s.cfg.Bonnie.CenterOffset)
}

// setSprite 切换 Bonnie 的图片
func (s *BehaviorSystem) setSprite(id ecs.EntityID, imageID string) {
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.ImageID = imageID
	}
}

// speed 按显示器对角线计算某状态的移动速度（像素/秒）
// 显示器不可用时使用配置中的后备尺寸
func (s *BehaviorSystem) speed(multiplier float64) float64 {
	w, h, ok := s.monitor.Size()
	if !ok {
		w, h = s.cfg.Monitor.FallbackWidth, s.cfg.Monitor.FallbackHeight
	}
	return utils.ResolutionSpeed(w, h, s.cfg.Movement.BaseSpeedRatio, multiplier)
}

// moveToward 把实体向目标移动一步，返回是否到达
func (s *BehaviorSystem) moveToward(pos *components.PositionComponent, target types.Point, multiplier, deltaTime float64) bool {
	next, arrived := utils.StepToward(types.Pt(pos.X, pos.Y), target, s.speed(multiplier), deltaTime)
	pos.X, pos.Y = next.X, next.Y
	return arrived
}
