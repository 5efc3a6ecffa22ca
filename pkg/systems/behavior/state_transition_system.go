package behavior

import (
	"log"

	"github.com/gonewx/bonnie/pkg/components"
	"github.com/gonewx/bonnie/pkg/config"
	"github.com/gonewx/bonnie/pkg/ecs"
	"github.com/gonewx/bonnie/pkg/game"
	"github.com/gonewx/bonnie/pkg/systems"
	"github.com/gonewx/bonnie/pkg/types"
)

// StateListener 在状态切换时接收退出/进入回调
type StateListener interface {
	OnExit(actor ecs.EntityID, old types.State)
	OnEnter(actor ecs.EntityID, next types.State)
}

// StateTransitionSystem 驱动 Bonnie 的状态机
//
// 每帧：推进计时器；计时器结束且未被阻塞时，随机选出新状态并提交。
// 行为在帧内登记的"立即切换"请求由 ApplyFinishRequests 在帧末统一消费，
// 下一帧的 Update 随即完成切换。
type StateTransitionSystem struct {
	entityManager *ecs.EntityManager
	monitor       game.MonitorInfo
	rng           game.Rand
	selector      *Selector
	timer         config.TimerConfig
	listener      StateListener
	requests      *systems.TransitionRequests

	monitorMissingLogged bool
}

// NewStateTransitionSystem 创建状态转换系统
// listener 可为 nil（只切换状态，不执行进入/退出效果）
func NewStateTransitionSystem(
	em *ecs.EntityManager,
	monitor game.MonitorInfo,
	rng game.Rand,
	selector *Selector,
	timer config.TimerConfig,
	listener StateListener,
	requests *systems.TransitionRequests,
) *StateTransitionSystem {
	return &StateTransitionSystem{
		entityManager: em,
		monitor:       monitor,
		rng:           rng,
		selector:      selector,
		timer:         timer,
		listener:      listener,
		requests:      requests,
	}
}

// blocksGate 这些状态的结束由行为决定，进入时阻塞计时器
func blocksGate(kind types.StateKind) bool {
	switch kind {
	case types.StateWalking, types.StateChasing, types.StateTeaching:
		return true
	case types.StateIdle, types.StatePooping, types.StateMeowing, types.StateBird, types.StateScratch:
		return false
	default:
		return false
	}
}

// actor 返回唯一的 Bonnie 实体及其组件
// Bonnie 在启动时创建、永不销毁；找不到说明程序装配有误
func actor(em *ecs.EntityManager) (ecs.EntityID, *components.BonnieComponent, *components.StateMachineComponent) {
	id, ok := ecs.FindSingle[*components.BonnieComponent](em)
	if !ok {
		panic("bonnie: expected exactly one actor entity")
	}
	bonnie, _ := ecs.GetComponent[*components.BonnieComponent](em, id)
	gate, ok := ecs.GetComponent[*components.StateMachineComponent](em, id)
	if !ok {
		panic("bonnie: actor entity has no state machine")
	}
	return id, bonnie, gate
}

// Update 推进计时器，条件满足时切换状态
func (s *StateTransitionSystem) Update(deltaTime float64) {
	id, bonnie, gate := actor(s.entityManager)

	gate.Tick(deltaTime)
	if !gate.CanChange || !gate.Finished() {
		return
	}

	w, h, ok := s.monitor.Size()
	if !ok {
		if !s.monitorMissingLogged {
			log.Printf("[StateTransitionSystem] Monitor unavailable, postponing transition")
			s.monitorMissingLogged = true
		}
		return
	}
	s.monitorMissingLogged = false

	old := bonnie.State
	next := s.selector.RandomState(old, w, h, s.rng)
	log.Printf("[StateTransitionSystem] %v -> %v", old, next)

	if s.listener != nil {
		s.listener.OnExit(id, old)
	}

	bonnie.State = next
	if blocksGate(next.Kind) {
		gate.Block()
	}

	if s.listener != nil {
		s.listener.OnEnter(id, next)
	}

	gate.Reset(game.RandomRange(s.rng, s.timer.Min, s.timer.Max))
}

// ApplyFinishRequests 消费本帧的立即切换请求：结束计时器并解除阻塞
func (s *StateTransitionSystem) ApplyFinishRequests() {
	if !s.requests.Pending() {
		return
	}
	_, bonnie, gate := actor(s.entityManager)
	reasons := s.requests.Drain()
	gate.Finish()
	log.Printf("[StateTransitionSystem] %v finished early: %v", bonnie.State, reasons)
}
