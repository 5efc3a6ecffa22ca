package behavior

import (
	"fmt"

	"github.com/gonewx/bonnie/pkg/ecs"
	"github.com/gonewx/bonnie/pkg/types"
)

// updateWalking 走向状态里的目标点，到达后结束
func (s *BehaviorSystem) updateWalking(id ecs.EntityID, state types.State, deltaTime float64) {
	target, ok := state.WalkTarget()
	if !ok {
		return
	}
	if s.moveToward(s.position(id), target, s.cfg.Movement.Multipliers.Walking, deltaTime) {
		s.requests.Request(fmt.Sprintf("walk: arrived at %v", target))
	}
}

// enterChasing Bonnie 生气并开始追光标
func (s *BehaviorSystem) enterChasing(id ecs.EntityID) {
	s.chaseElapsed = 0
	s.setSprite(id, s.cfg.Bonnie.Sprites.Angry)
}

// updateChasing 让 Bonnie 的中心追向光标
//
// 中心进入抓取距离或到达目标时结束；追了 GiveUpAfter 秒还没抓到就放弃，
// 光标一直不可用时也靠这个超时退出。
func (s *BehaviorSystem) updateChasing(id ecs.EntityID, deltaTime float64) {
	s.chaseElapsed += deltaTime
	if giveUp := s.cfg.Chase.GiveUpAfter; giveUp > 0 && s.chaseElapsed >= giveUp {
		s.requests.Request(fmt.Sprintf("chase: gave up after %.1fs", s.chaseElapsed))
		return
	}

	cursor, ok := s.cursor.Position()
	if !ok {
		return
	}

	pos := s.position(id)
	target := cursor.Sub(s.cfg.Bonnie.CenterOffset)
	arrived := s.moveToward(pos, target, s.cfg.Movement.Multipliers.Chasing, deltaTime)

	if d := s.actorCenter(id).DistanceTo(cursor); arrived || d < s.cfg.Chase.CatchDistance {
		s.requests.Request(fmt.Sprintf("chase: caught cursor at %.0fpx", d))
	}
}
