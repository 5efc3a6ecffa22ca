package behavior

import (
	"testing"

	"github.com/gonewx/bonnie/pkg/components"
	"github.com/gonewx/bonnie/pkg/config"
	"github.com/gonewx/bonnie/pkg/ecs"
	"github.com/gonewx/bonnie/pkg/entities"
	"github.com/gonewx/bonnie/pkg/game"
	"github.com/gonewx/bonnie/pkg/systems"
	"github.com/gonewx/bonnie/pkg/types"
)

// scriptedRand 按顺序返回预设值，用完后返回 0
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// recordingSound 记录播放过的音效
type recordingSound struct {
	played []string
}

func (r *recordingSound) PlaySound(id string) bool {
	r.played = append(r.played, id)
	return true
}

// recordingListener 记录进入/退出回调的顺序
type recordingListener struct {
	calls []string
}

func (l *recordingListener) OnExit(_ ecs.EntityID, old types.State) {
	l.calls = append(l.calls, "exit "+old.Kind.String())
}

func (l *recordingListener) OnEnter(_ ecs.EntityID, next types.State) {
	l.calls = append(l.calls, "enter "+next.Kind.String())
}

// world 一套完整装配好的状态机，用于按帧驱动测试
type world struct {
	em         *ecs.EntityManager
	cfg        *config.BonnieConfig
	monitor    *game.StaticMonitor
	cursor     *game.FixedCursor
	rng        game.Rand
	sound      *recordingSound
	requests   *systems.TransitionRequests
	transition *StateTransitionSystem
	behavior   *BehaviorSystem
	actor      ecs.EntityID
}

// newWorld 在 800x600 的显示器上创建 Bonnie（对角线 1000，基础速度 150px/s）
func newWorld(t *testing.T, rng game.Rand, start types.Point) *world {
	t.Helper()

	w := &world{
		em:       ecs.NewEntityManager(),
		cfg:      config.DefaultBonnieConfig(),
		monitor:  &game.StaticMonitor{Width: 800, Height: 600},
		cursor:   &game.FixedCursor{},
		rng:      rng,
		sound:    &recordingSound{},
		requests: systems.NewTransitionRequests(),
	}
	kinds, err := w.cfg.EnabledKinds()
	if err != nil {
		t.Fatalf("EnabledKinds: %v", err)
	}

	w.behavior = NewBehaviorSystem(w.em, w.cfg, w.monitor, w.cursor, w.rng, w.sound, w.requests)
	w.transition = NewStateTransitionSystem(w.em, w.monitor, w.rng,
		NewSelector(kinds, w.cfg.Walk.Margin), w.cfg.Timer, w.behavior, w.requests)
	w.actor = entities.NewBonnieEntity(w.em, w.cfg, start, 2.0)
	return w
}

// frame 按主循环的顺序执行一帧（不含输入和窗口点击）
func (w *world) frame(deltaTime float64) {
	w.transition.Update(deltaTime)
	w.behavior.Update(deltaTime)
	w.transition.ApplyFinishRequests()
	w.em.RemoveMarkedEntities()
}

// enter 强制 Bonnie 进入某状态，执行与转换系统相同的提交步骤
func (w *world) enter(state types.State) {
	bonnie := w.bonnie()
	w.behavior.OnExit(w.actor, bonnie.State)
	bonnie.State = state
	if blocksGate(state.Kind) {
		w.gate().Block()
	}
	w.behavior.OnEnter(w.actor, state)
	w.gate().Reset(2.0)
}

func (w *world) bonnie() *components.BonnieComponent {
	b, _ := ecs.GetComponent[*components.BonnieComponent](w.em, w.actor)
	return b
}

func (w *world) gate() *components.StateMachineComponent {
	g, _ := ecs.GetComponent[*components.StateMachineComponent](w.em, w.actor)
	return g
}

func (w *world) position() types.Point {
	p, _ := ecs.GetComponent[*components.PositionComponent](w.em, w.actor)
	return types.Pt(p.X, p.Y)
}

func (w *world) sprite() string {
	s, _ := ecs.GetComponent[*components.SpriteComponent](w.em, w.actor)
	return s.ImageID
}

// countRole 统计某种窗口的数量（不含已标记删除的）
func (w *world) countRole(role components.WindowRole) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.WindowComponent](w.em) {
		win, _ := ecs.GetComponent[*components.WindowComponent](w.em, id)
		if win.Role == role && !w.em.IsMarkedForDestroy(id) {
			n++
		}
	}
	return n
}

// findRole 返回第一个指定角色的窗口
func (w *world) findRole(role components.WindowRole) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.WindowComponent](w.em) {
		win, _ := ecs.GetComponent[*components.WindowComponent](w.em, id)
		if win.Role == role {
			return id, true
		}
	}
	return 0, false
}
