package systems

import (
	"log"
	"math"

	"github.com/gonewx/bonnie/pkg/components"
	"github.com/gonewx/bonnie/pkg/config"
	"github.com/gonewx/bonnie/pkg/ecs"
	"github.com/gonewx/bonnie/pkg/game"
	"github.com/gonewx/bonnie/pkg/utils"
)

// BirdSystem 让小鸟在屏幕内飞行并在边缘反弹
// 小鸟生成后与 Bonnie 的状态无关，一直飞到被点击或生命周期结束
type BirdSystem struct {
	entityManager *ecs.EntityManager
	monitor       game.MonitorInfo
	cfg           *config.BonnieConfig
	skipLogged    bool
}

// NewBirdSystem 创建小鸟系统
func NewBirdSystem(em *ecs.EntityManager, monitor game.MonitorInfo, cfg *config.BonnieConfig) *BirdSystem {
	return &BirdSystem{
		entityManager: em,
		monitor:       monitor,
		cfg:           cfg,
	}
}

// Update 推进所有小鸟
// 显示器尺寸不可用时本帧跳过
func (s *BirdSystem) Update(deltaTime float64) {
	birds := ecs.GetEntitiesWith3[*components.BirdComponent, *components.PositionComponent, *components.WindowComponent](s.entityManager)
	if len(birds) == 0 {
		return
	}

	w, h, ok := s.monitor.Size()
	if !ok {
		if !s.skipLogged {
			log.Printf("[BirdSystem] Monitor unavailable, skipping frame")
			s.skipLogged = true
		}
		return
	}
	s.skipLogged = false

	buffer := float64(s.cfg.Bird.EdgeBuffer)
	for _, id := range birds {
		bird, _ := ecs.GetComponent[*components.BirdComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		win, _ := ecs.GetComponent[*components.WindowComponent](s.entityManager, id)

		bounce(bird, float64(w), float64(h), float64(win.Width), float64(win.Height), buffer)

		speed := utils.ResolutionSpeed(w, h, s.cfg.Movement.BaseSpeedRatio, bird.SpeedMultiplier)
		bird.PreciseX += bird.DirX * speed * deltaTime
		bird.PreciseY += bird.DirY * speed * deltaTime

		pos.X = int(math.Round(bird.PreciseX))
		pos.Y = int(math.Round(bird.PreciseY))
	}
}

// bounce 在缓冲区内且朝向该边缘时翻转对应方向分量
func bounce(bird *components.BirdComponent, screenW, screenH, width, height, buffer float64) {
	if bird.PreciseX <= buffer && bird.DirX < 0 {
		bird.DirX = -bird.DirX
	} else if bird.PreciseX+width >= screenW-buffer && bird.DirX > 0 {
		bird.DirX = -bird.DirX
	}

	if bird.PreciseY <= buffer && bird.DirY < 0 {
		bird.DirY = -bird.DirY
	} else if bird.PreciseY+height >= screenH-buffer && bird.DirY > 0 {
		bird.DirY = -bird.DirY
	}
}
