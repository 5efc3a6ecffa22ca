package scenes

import (
	"log"

	"github.com/gonewx/bonnie/pkg/components"
	"github.com/gonewx/bonnie/pkg/config"
	"github.com/gonewx/bonnie/pkg/ecs"
	"github.com/gonewx/bonnie/pkg/entities"
	"github.com/gonewx/bonnie/pkg/game"
	"github.com/gonewx/bonnie/pkg/systems"
	"github.com/gonewx/bonnie/pkg/systems/behavior"
	"github.com/gonewx/bonnie/pkg/types"
	"github.com/gonewx/bonnie/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// DesktopSceneOptions 桌面场景的外部协作者
type DesktopSceneOptions struct {
	Config          *config.BonnieConfig
	ResourceManager *game.ResourceManager // 可为 nil，全部绘制占位图
	SettingsManager *game.SettingsManager // 可为 nil，不恢复也不保存位置
	Sound           game.SoundPlayer      // 可为 nil
	AudioControls   systems.AudioControls // 可为 nil，音频快捷键不生效
	Monitor         game.MonitorInfo
	Cursor          game.CursorTracker
	Clicks          systems.ClickSource
	Keys            systems.KeySource
	Rand            game.Rand
}

// poller 需要每帧主动采样的光标实现
type poller interface {
	Poll()
}

// DesktopScene 是 Bonnie 在桌面上活动的唯一场景
//
// 每帧按固定顺序运行：
//
//	输入/控制 → 光标采样 → 状态转换 → 状态行为 → 小鸟 → 生命周期
//	→ 窗口点击 → 处理立即切换请求 → 清理实体
type DesktopScene struct {
	entityManager   *ecs.EntityManager
	cfg             *config.BonnieConfig
	settingsManager *game.SettingsManager
	cursor          game.CursorTracker
	requests        *systems.TransitionRequests
	bonnieID        ecs.EntityID

	// ECS 系统
	controlSystem     *systems.ControlSystem
	transitionSystem  *behavior.StateTransitionSystem
	behaviorSystem    *behavior.BehaviorSystem
	birdSystem        *systems.BirdSystem
	lifetimeSystem    *systems.LifetimeSystem
	windowCloseSystem *systems.WindowCloseSystem
	renderSystem      *systems.RenderSystem
}

// NewDesktopScene 创建桌面场景并放出 Bonnie
// 配置中启用的状态不合法时 panic（配置已在加载时校验过）
func NewDesktopScene(opts DesktopSceneOptions) *DesktopScene {
	cfg := opts.Config
	kinds, err := cfg.EnabledKinds()
	if err != nil {
		panic("bonnie: " + err.Error())
	}

	em := ecs.NewEntityManager()
	requests := systems.NewTransitionRequests()

	s := &DesktopScene{
		entityManager:   em,
		cfg:             cfg,
		settingsManager: opts.SettingsManager,
		cursor:          opts.Cursor,
		requests:        requests,
	}

	s.behaviorSystem = behavior.NewBehaviorSystem(em, cfg, opts.Monitor, opts.Cursor, opts.Rand, opts.Sound, requests)
	s.transitionSystem = behavior.NewStateTransitionSystem(em, opts.Monitor, opts.Rand,
		behavior.NewSelector(kinds, cfg.Walk.Margin), cfg.Timer, s.behaviorSystem, requests)
	s.controlSystem = systems.NewControlSystem(em, opts.Keys, cfg.Control.Step, opts.AudioControls)
	s.birdSystem = systems.NewBirdSystem(em, opts.Monitor, cfg)
	s.lifetimeSystem = systems.NewLifetimeSystem(em)
	s.renderSystem = systems.NewRenderSystem(em, opts.ResourceManager)

	s.windowCloseSystem = systems.NewWindowCloseSystem(em, opts.Clicks)
	s.windowCloseSystem.Register(components.WindowRolePoop, systems.PoopCloseHandler(em, opts.Sound, cfg.Poop.ClickSound))
	s.windowCloseSystem.Register(components.WindowRoleTeach, systems.TeachCloseHandler(em, requests))
	s.windowCloseSystem.Register(components.WindowRoleBird, systems.DespawnOnClose(em))

	start := s.startPosition(opts.Monitor)
	s.bonnieID = entities.NewBonnieEntity(em, cfg, start,
		game.RandomRange(opts.Rand, cfg.Timer.Min, cfg.Timer.Max))
	log.Printf("[DesktopScene] Bonnie %d starts at %v with %d enabled states", s.bonnieID, start, len(kinds))

	return s
}

// startPosition 优先使用上次退出时的位置，并保证 Bonnie 完整落在显示器内
func (s *DesktopScene) startPosition(monitor game.MonitorInfo) types.Point {
	pos := s.cfg.Bonnie.StartPosition
	if s.settingsManager != nil {
		if last, ok := s.settingsManager.LastPosition(); ok {
			pos = last
		}
	}

	w, h, ok := monitor.Size()
	if !ok {
		return pos
	}
	pos.X = max(0, min(pos.X, w-s.cfg.Bonnie.Width))
	pos.Y = max(0, min(pos.Y, h-s.cfg.Bonnie.Height))
	return pos
}

// Update 推进一帧
// 返回 ebiten.Termination 表示用户请求退出
func (s *DesktopScene) Update(deltaTime float64) error {
	if err := s.controlSystem.Update(); err != nil {
		return err
	}
	if p, ok := s.cursor.(poller); ok {
		p.Poll()
	}

	s.transitionSystem.Update(deltaTime)
	s.behaviorSystem.Update(deltaTime)
	s.birdSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.windowCloseSystem.Update()

	s.transitionSystem.ApplyFinishRequests()
	s.entityManager.RemoveMarkedEntities()
	return nil
}

// Draw 绘制所有窗口
func (s *DesktopScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen, utils.ToDesktop(0, 0))
}

// InteractiveAt 桌面坐标 p 处是否有可点击的窗口
// 覆盖层窗口据此切换鼠标穿透
func (s *DesktopScene) InteractiveAt(p types.Point) bool {
	_, ok := systems.InteractiveWindowAt(s.entityManager, p)
	return ok
}

// BonniePosition 返回 Bonnie 主窗口左上角
func (s *DesktopScene) BonniePosition() types.Point {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.bonnieID)
	if !ok {
		panic("bonnie: actor entity has no position")
	}
	return types.Pt(pos.X, pos.Y)
}

// State 返回 Bonnie 当前状态
func (s *DesktopScene) State() types.State {
	b, ok := ecs.GetComponent[*components.BonnieComponent](s.entityManager, s.bonnieID)
	if !ok {
		panic("bonnie: actor entity has no state")
	}
	return b.State
}

// SaveOnExit 实现 game.Saveable：记录 Bonnie 的位置
func (s *DesktopScene) SaveOnExit() bool {
	if s.settingsManager == nil {
		return true
	}
	s.settingsManager.SetLastPosition(s.BonniePosition())
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[DesktopScene] Failed to save settings: %v", err)
		return false
	}
	return true
}
