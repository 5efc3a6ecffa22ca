package entities

import (
	"github.com/gonewx/bonnie/pkg/components"
	"github.com/gonewx/bonnie/pkg/config"
	"github.com/gonewx/bonnie/pkg/ecs"
	"github.com/gonewx/bonnie/pkg/types"
)

// NewBonnieEntity 创建 Bonnie 本体（Actor）
// 参数:
//   - em: EntityManager 实例
//   - cfg: Bonnie 配置
//   - pos: 主窗口左上角位置
//   - initialDuration: 第一轮计时器时长（秒）
//
// 返回: 创建的实体ID
//
// Bonnie 以 Idle 状态开始，所以精灵直接使用睡觉图片。
func NewBonnieEntity(em *ecs.EntityManager, cfg *config.BonnieConfig, pos types.Point, initialDuration float64) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.BonnieComponent{State: types.Idle()})
	ecs.AddComponent(em, id, components.NewStateMachineComponent(initialDuration))
	ecs.AddComponent(em, id, &components.WindowComponent{
		Role:   components.WindowRolePrimary,
		Title:  "Bonnie",
		Width:  cfg.Bonnie.Width,
		Height: cfg.Bonnie.Height,
	})
	ecs.AddComponent(em, id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		ImageID: cfg.Bonnie.Sprites.Sleep,
		Layer:   components.LayerBonnie,
	})

	return id
}
