package systems

import (
	"image/color"
	"log"

	"github.com/gonewx/bonnie/pkg/components"
	"github.com/gonewx/bonnie/pkg/ecs"
	"github.com/gonewx/bonnie/pkg/game"
	"github.com/gonewx/bonnie/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// placeholderColors 图片缺失时每个渲染层使用的占位色
var placeholderColors = map[components.RenderLayer]color.RGBA{
	components.LayerBonnie:  {R: 0xf0, G: 0xa0, B: 0x40, A: 0xc0},
	components.LayerPoop:    {R: 0x70, G: 0x45, B: 0x20, A: 0xe0},
	components.LayerTeach:   {R: 0x40, G: 0x80, B: 0xe0, A: 0xc0},
	components.LayerBird:    {R: 0x40, G: 0xb0, B: 0x60, A: 0xe0},
	components.LayerScratch: {R: 0xd0, G: 0x30, B: 0x30, A: 0x90},
}

// RenderSystem 把所有窗口实体绘制到铺满显示器的透明覆盖层上
//
// 每个窗口的图片缩放到窗口尺寸；带生命周期的实体按 Alpha() 淡出。
// 图片资源缺失时绘制占位矩形，保证没有素材也能运行。
type RenderSystem struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	missing         map[string]bool // 加载失败的图片ID，只记录一次
}

// NewRenderSystem 创建渲染系统，rm 可为 nil（全部使用占位图）
func NewRenderSystem(em *ecs.EntityManager, rm *game.ResourceManager) *RenderSystem {
	return &RenderSystem{
		entityManager:   em,
		resourceManager: rm,
		missing:         make(map[string]bool),
	}
}

// Draw 绘制所有窗口，origin 是覆盖层窗口左上角的桌面坐标
func (s *RenderSystem) Draw(screen *ebiten.Image, origin types.Point) {
	for _, id := range WindowsInDrawOrder(s.entityManager) {
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !ok {
			continue
		}
		rect, ok := WindowRect(s.entityManager, id)
		if !ok {
			continue
		}

		alpha := float32(1.0)
		if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id); ok {
			alpha = float32(lifetime.Alpha())
		}
		if alpha <= 0 {
			continue
		}

		x := float64(rect.Min.X - origin.X)
		y := float64(rect.Min.Y - origin.Y)
		w := float64(rect.Max.X - rect.Min.X)
		h := float64(rect.Max.Y - rect.Min.Y)

		img := s.image(sprite.ImageID)
		if img == nil {
			c := placeholderColors[sprite.Layer]
			c.A = uint8(float32(c.A) * alpha)
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
			continue
		}

		bounds := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleAlpha(alpha)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}
}

// image 按资源ID取图片，首次使用时加载
func (s *RenderSystem) image(imageID string) *ebiten.Image {
	if s.resourceManager == nil || imageID == "" || s.missing[imageID] {
		return nil
	}
	if img := s.resourceManager.GetImageByID(imageID); img != nil {
		return img
	}
	img, err := s.resourceManager.LoadImageByID(imageID)
	if err != nil {
		log.Printf("[RenderSystem] Warning: %v (drawing placeholder)", err)
		s.missing[imageID] = true
		return nil
	}
	return img
}
