package behavior

import (
	"log"
	"math"

	"github.com/gonewx/bonnie/pkg/ecs"
	"github.com/gonewx/bonnie/pkg/entities"
	"github.com/gonewx/bonnie/pkg/game"
)

// 以下状态都是一次性事件：进入时完成工作并立即请求切换

// enterPooping 在 Bonnie 当前位置留下一坨便便
func (s *BehaviorSystem) enterPooping(id ecs.EntityID) {
	poop := entities.NewPoopEntity(s.entityManager, s.cfg, s.actorPoint(id))
	log.Printf("[BehaviorSystem] Pooped (entity %d)", poop)
	s.requests.Request("poop: done")
}

// enterMeowing 随机播放一段猫叫
func (s *BehaviorSystem) enterMeowing() {
	if clip, ok := game.ChooseString(s.rng, s.cfg.Meow.Sounds); ok && s.sound != nil {
		if !s.sound.PlaySound(clip) {
			log.Printf("[BehaviorSystem] Meow %s not played", clip)
		}
	}
	s.requests.Request("meow: done")
}

// enterBird 从 Bonnie 的位置放出一只朝随机方向飞行的小鸟
func (s *BehaviorSystem) enterBird(id ecs.EntityID) {
	angle := s.rng.Float64() * 2 * math.Pi
	bird := entities.NewBirdEntity(s.entityManager, s.cfg, s.actorPoint(id),
		math.Cos(angle), math.Sin(angle), s.cfg.Movement.Multipliers.Bird)
	log.Printf("[BehaviorSystem] Bird %d released at %.0f°", bird, angle*180/math.Pi)
	s.requests.Request("bird: released")
}

// enterScratch 在 Bonnie 的位置留下一道抓痕
func (s *BehaviorSystem) enterScratch(id ecs.EntityID) {
	entities.NewScratchEntity(s.entityManager, s.cfg, s.actorPoint(id))
	s.requests.Request("scratch: done")
}
