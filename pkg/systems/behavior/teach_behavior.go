package behavior

import (
	"log"

	"github.com/gonewx/bonnie/pkg/components"
	"github.com/gonewx/bonnie/pkg/ecs"
	"github.com/gonewx/bonnie/pkg/entities"
	"github.com/gonewx/bonnie/pkg/game"
	"github.com/gonewx/bonnie/pkg/systems"
)

// enterTeaching 弹出随机的教学图片和一个跟随 Bonnie 的观察者
// 教学状态一直阻塞，直到弹窗被点击关闭
func (s *BehaviorSystem) enterTeaching(id ecs.EntityID) {
	imageID, ok := game.ChooseString(s.rng, s.cfg.Teach.Images)
	if !ok {
		log.Printf("[BehaviorSystem] No teach images configured")
		s.requests.Request("teach: no images")
		return
	}

	s.teachPopup = entities.NewTeachPopupEntity(s.entityManager, s.cfg, s.cfg.Teach.SpawnPosition, imageID)
	s.teachObserver = entities.NewObserverEntity(s.entityManager, s.cfg, s.actorPoint(id).Add(s.cfg.Teach.Observer.Offset))
	log.Printf("[BehaviorSystem] Teaching with %s (popup %d, observer %d)", imageID, s.teachPopup, s.teachObserver)
}

// updateTeaching 弹窗追向 Bonnie 附近的固定偏移点，观察者贴着 Bonnie
func (s *BehaviorSystem) updateTeaching(id ecs.EntityID, deltaTime float64) {
	actorPos := s.actorPoint(id)

	if s.alive(s.teachPopup) {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.teachPopup); ok {
			s.moveToward(pos, actorPos.Add(s.cfg.Teach.FollowOffset), s.cfg.Movement.Multipliers.Teaching, deltaTime)
		}
	}

	if s.alive(s.teachObserver) {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.teachObserver); ok {
			p := actorPos.Add(s.cfg.Teach.Observer.Offset)
			pos.X, pos.Y = p.X, p.Y
		}
	}
}

// exitTeaching 清掉残留的教学层实体
// 正常情况下点击弹窗时已经清理过，这里只是兜底
func (s *BehaviorSystem) exitTeaching() {
	systems.DespawnLayer(s.entityManager, components.LayerTeach)
	s.teachPopup = 0
	s.teachObserver = 0
}

// alive 实体存在且未被标记删除
func (s *BehaviorSystem) alive(id ecs.EntityID) bool {
	return id != 0 && s.entityManager.Exists(id) && !s.entityManager.IsMarkedForDestroy(id)
}
