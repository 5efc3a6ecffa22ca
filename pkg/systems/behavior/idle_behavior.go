package behavior

import (
	"fmt"

	"github.com/gonewx/bonnie/pkg/ecs"
)

// enterIdle Bonnie 睡觉
func (s *BehaviorSystem) enterIdle(id ecs.EntityID) {
	s.setSprite(id, s.cfg.Bonnie.Sprites.Sleep)
}

// updateIdle 光标靠近 Bonnie 时把它吵醒
func (s *BehaviorSystem) updateIdle(id ecs.EntityID) {
	cursor, ok := s.cursor.Position()
	if !ok {
		return
	}
	if d := s.actorCenter(id).DistanceTo(cursor); d < s.cfg.Idle.WakeDistance {
		s.requests.Request(fmt.Sprintf("idle: woken by cursor at %.0fpx", d))
	}
}
