package systems

import (
	"log"

	"github.com/gonewx/bonnie/pkg/components"
	"github.com/gonewx/bonnie/pkg/ecs"
	"github.com/gonewx/bonnie/pkg/game"
	"github.com/gonewx/bonnie/pkg/types"
)

// ClickSource 报告本帧的点击（桌面坐标）
type ClickSource interface {
	JustClicked() (types.Point, bool)
}

// CloseHandler 处理某个窗口被点击关闭
type CloseHandler func(id ecs.EntityID)

// WindowCloseSystem 把点击分发给被点中窗口的角色对应的处理函数
//
// 没有注册处理函数的角色（例如 Bonnie 主窗口）点击后什么也不做。
type WindowCloseSystem struct {
	entityManager *ecs.EntityManager
	clicks        ClickSource
	handlers      map[components.WindowRole]CloseHandler
}

// NewWindowCloseSystem 创建窗口关闭系统
func NewWindowCloseSystem(em *ecs.EntityManager, clicks ClickSource) *WindowCloseSystem {
	return &WindowCloseSystem{
		entityManager: em,
		clicks:        clicks,
		handlers:      make(map[components.WindowRole]CloseHandler),
	}
}

// Register 为某个窗口角色注册关闭处理函数，重复注册会覆盖
func (s *WindowCloseSystem) Register(role components.WindowRole, handler CloseHandler) {
	s.handlers[role] = handler
}

// Update 处理本帧的点击
func (s *WindowCloseSystem) Update() {
	p, ok := s.clicks.JustClicked()
	if !ok {
		return
	}

	id, hit := InteractiveWindowAt(s.entityManager, p)
	if !hit {
		return
	}

	win, _ := ecs.GetComponent[*components.WindowComponent](s.entityManager, id)
	handler, ok := s.handlers[win.Role]
	if !ok {
		return
	}

	log.Printf("[WindowCloseSystem] %s window %d clicked at %v", win.Role, id, p)
	handler(id)
}

// DespawnOnClose 点击后直接移除窗口（小鸟）
func DespawnOnClose(em *ecs.EntityManager) CloseHandler {
	return func(id ecs.EntityID) {
		em.DestroyEntity(id)
	}
}

// PoopCloseHandler 点击便便：移除窗口并播放音效
func PoopCloseHandler(em *ecs.EntityManager, sound game.SoundPlayer, soundID string) CloseHandler {
	return func(id ecs.EntityID) {
		em.DestroyEntity(id)
		if sound != nil && soundID != "" {
			sound.PlaySound(soundID)
		}
	}
}

// TeachCloseHandler 点击教学弹窗：清空教学层（弹窗和观察者），并请求结束教学状态
func TeachCloseHandler(em *ecs.EntityManager, requests *TransitionRequests) CloseHandler {
	return func(id ecs.EntityID) {
		em.DestroyEntity(id)
		n := DespawnLayer(em, components.LayerTeach)
		log.Printf("[WindowCloseSystem] Teach popup closed, cleared %d teach-layer entities", n)
		requests.Request("teach: popup closed")
	}
}
