package systems

import (
	"sort"

	"github.com/gonewx/bonnie/pkg/components"
	"github.com/gonewx/bonnie/pkg/ecs"
	"github.com/gonewx/bonnie/pkg/types"
)

// WindowsInDrawOrder 返回所有窗口实体，按从下到上的绘制顺序排列
// 先按渲染层，同层内按创建顺序
func WindowsInDrawOrder(em *ecs.EntityManager) []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.WindowComponent, *components.PositionComponent](em)

	layerOf := func(id ecs.EntityID) components.RenderLayer {
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
			return sprite.Layer
		}
		return components.LayerBonnie
	}

	sort.SliceStable(ids, func(i, j int) bool {
		return layerOf(ids[i]) < layerOf(ids[j])
	})
	return ids
}

// WindowRect 返回窗口在桌面上占据的矩形
func WindowRect(em *ecs.EntityManager, id ecs.EntityID) (types.Rect, bool) {
	win, ok := ecs.GetComponent[*components.WindowComponent](em, id)
	if !ok {
		return types.Rect{}, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return types.Rect{}, false
	}
	return types.RectAt(types.Pt(pos.X, pos.Y), win.Width, win.Height), true
}

// InteractiveWindowAt 返回包含 p 的最上层可交互窗口
// 点击穿透的窗口和已标记删除的实体不参与命中测试
func InteractiveWindowAt(em *ecs.EntityManager, p types.Point) (ecs.EntityID, bool) {
	ids := WindowsInDrawOrder(em)
	for i := len(ids) - 1; i >= 0; i-- {
		id := ids[i]
		if em.IsMarkedForDestroy(id) {
			continue
		}
		win, _ := ecs.GetComponent[*components.WindowComponent](em, id)
		if win.ClickThrough {
			continue
		}
		if r, ok := WindowRect(em, id); ok && r.Contains(p) {
			return id, true
		}
	}
	return 0, false
}

// DespawnLayer 标记删除某个渲染层上的所有实体，返回数量
func DespawnLayer(em *ecs.EntityManager, layer components.RenderLayer) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.SpriteComponent](em) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		if sprite.Layer != layer {
			continue
		}
		if ecs.HasComponent[*components.BonnieComponent](em, id) {
			continue
		}
		em.DestroyEntity(id)
		n++
	}
	return n
}
