package entities

import (
	"github.com/gonewx/bonnie/pkg/components"
	"github.com/gonewx/bonnie/pkg/config"
	"github.com/gonewx/bonnie/pkg/ecs"
	"github.com/gonewx/bonnie/pkg/types"
)

// newWindowEntity 创建一个带窗口、位置和精灵的实体
func newWindowEntity(em *ecs.EntityManager, win components.WindowComponent, pos types.Point, imageID string, layer components.RenderLayer) ecs.EntityID {
	id := em.CreateEntity()
	w := win
	ecs.AddComponent(em, id, &w)
	ecs.AddComponent(em, id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	ecs.AddComponent(em, id, &components.SpriteComponent{ImageID: imageID, Layer: layer})
	return id
}

// NewPoopEntity 在给定位置创建便便窗口
// 便便一直留在桌面上，直到被点击
func NewPoopEntity(em *ecs.EntityManager, cfg *config.BonnieConfig, pos types.Point) ecs.EntityID {
	return newWindowEntity(em, components.WindowComponent{
		Role:   components.WindowRolePoop,
		Title:  "Poop",
		Width:  cfg.Poop.Size,
		Height: cfg.Poop.Size,
	}, pos, cfg.Poop.Image, components.LayerPoop)
}

// NewTeachPopupEntity 创建教学弹窗
func NewTeachPopupEntity(em *ecs.EntityManager, cfg *config.BonnieConfig, pos types.Point, imageID string) ecs.EntityID {
	return newWindowEntity(em, components.WindowComponent{
		Role:   components.WindowRoleTeach,
		Title:  "Educational Content",
		Width:  cfg.Teach.PopupSize,
		Height: cfg.Teach.PopupSize,
	}, pos, imageID, components.LayerTeach)
}

// NewObserverEntity 创建教学期间跟随 Bonnie 的小图标
// 观察者属于教学层，弹窗关闭时一起清理
func NewObserverEntity(em *ecs.EntityManager, cfg *config.BonnieConfig, pos types.Point) ecs.EntityID {
	return newWindowEntity(em, components.WindowComponent{
		Role:         components.WindowRoleObserver,
		Title:        "Observer",
		Width:        cfg.Teach.Observer.Size,
		Height:       cfg.Teach.Observer.Size,
		ClickThrough: true,
	}, pos, cfg.Teach.Observer.Image, components.LayerTeach)
}

// NewBirdEntity 创建一只小鸟
// 参数:
//   - dirX, dirY: 单位方向向量
//   - speedMultiplier: 相对基础速度的倍率
func NewBirdEntity(em *ecs.EntityManager, cfg *config.BonnieConfig, pos types.Point, dirX, dirY, speedMultiplier float64) ecs.EntityID {
	id := newWindowEntity(em, components.WindowComponent{
		Role:   components.WindowRoleBird,
		Title:  "Bird",
		Width:  cfg.Bird.Size,
		Height: cfg.Bird.Size,
	}, pos, cfg.Bird.Image, components.LayerBird)

	ecs.AddComponent(em, id, &components.BirdComponent{
		PreciseX:        float64(pos.X),
		PreciseY:        float64(pos.Y),
		DirX:            dirX,
		DirY:            dirY,
		SpeedMultiplier: speedMultiplier,
	})
	if cfg.Bird.Lifetime > 0 {
		ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: cfg.Bird.Lifetime})
	}
	return id
}

// NewScratchEntity 创建点击穿透的抓痕覆盖层
func NewScratchEntity(em *ecs.EntityManager, cfg *config.BonnieConfig, pos types.Point) ecs.EntityID {
	id := newWindowEntity(em, components.WindowComponent{
		Role:         components.WindowRoleScratch,
		Title:        "Scratch",
		Width:        cfg.Scratch.Size,
		Height:       cfg.Scratch.Size,
		ClickThrough: true,
	}, pos, cfg.Scratch.Image, components.LayerScratch)

	if cfg.Scratch.Lifetime > 0 {
		ecs.AddComponent(em, id, &components.LifetimeComponent{
			MaxLifetime: cfg.Scratch.Lifetime,
			FadeOut:     cfg.Scratch.FadeOut,
		})
	}
	return id
}
