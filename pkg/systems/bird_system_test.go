package systems

import (
	"math"
	"testing"

	"github.com/gonewx/bonnie/pkg/components"
	"github.com/gonewx/bonnie/pkg/config"
	"github.com/gonewx/bonnie/pkg/ecs"
	"github.com/gonewx/bonnie/pkg/entities"
	"github.com/gonewx/bonnie/pkg/game"
	"github.com/gonewx/bonnie/pkg/types"
)

func TestBirdSystem_Moves(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultBonnieConfig()
	// 3000x4000 显示器对角线 5000，基础速度 5000*0.15=750，倍率 2 → 1500 px/s
	monitor := game.StaticMonitor{Width: 3000, Height: 4000}
	system := NewBirdSystem(em, monitor, cfg)

	id := entities.NewBirdEntity(em, cfg, types.Pt(1000, 1000), 1, 0, 2)
	system.Update(0.1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 1150 || pos.Y != 1000 {
		t.Errorf("position after 0.1s: got (%d, %d), want (1150, 1000)", pos.X, pos.Y)
	}
}

func TestBirdSystem_Bounce(t *testing.T) {
	cfg := config.DefaultBonnieConfig() // edgeBuffer 10, bird size 64

	tests := []struct {
		name       string
		pos        types.Point
		dirX, dirY float64
		wantDirX   float64
		wantDirY   float64
	}{
		{"left edge heading left", types.Pt(5, 500), -1, 0, 1, 0},
		{"left edge heading right keeps direction", types.Pt(5, 500), 1, 0, 1, 0},
		{"right edge heading right", types.Pt(1920-64-5, 500), 1, 0, -1, 0},
		{"top edge heading up", types.Pt(500, 0), 0, -1, 0, 1},
		{"bottom edge heading down", types.Pt(500, 1080-64), 0, 1, 0, -1},
		{"corner flips both", types.Pt(0, 0), -0.6, -0.8, 0.6, 0.8},
		{"middle of screen", types.Pt(900, 500), -0.6, 0.8, -0.6, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			system := NewBirdSystem(em, game.StaticMonitor{Width: 1920, Height: 1080}, cfg)
			id := entities.NewBirdEntity(em, cfg, tt.pos, tt.dirX, tt.dirY, 1.5)

			system.Update(0.001)

			bird, _ := ecs.GetComponent[*components.BirdComponent](em, id)
			if bird.DirX != tt.wantDirX || bird.DirY != tt.wantDirY {
				t.Errorf("direction: got (%v, %v), want (%v, %v)", bird.DirX, bird.DirY, tt.wantDirX, tt.wantDirY)
			}
		})
	}
}

func TestBirdSystem_StaysOnScreen(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultBonnieConfig()
	system := NewBirdSystem(em, game.StaticMonitor{Width: 800, Height: 600}, cfg)

	d := 1 / math.Sqrt2
	id := entities.NewBirdEntity(em, cfg, types.Pt(400, 300), d, d, 1.5)

	// 每帧步长 (1000*0.15*1.5/60 ≈ 3.75px) 小于缓冲区，小鸟不会飞出屏幕太远
	for i := 0; i < 60*30; i++ {
		system.Update(1.0 / 60)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pos.X < -5 || pos.Y < -5 || pos.X+cfg.Bird.Size > 805 || pos.Y+cfg.Bird.Size > 605 {
			t.Fatalf("frame %d: bird left the screen at (%d, %d)", i, pos.X, pos.Y)
		}
	}
}

func TestBirdSystem_NoMonitorSkipsFrame(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultBonnieConfig()
	system := NewBirdSystem(em, game.StaticMonitor{Unavailable: true}, cfg)

	id := entities.NewBirdEntity(em, cfg, types.Pt(100, 100), 1, 0, 1.5)
	system.Update(1.0)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 100 || pos.Y != 100 {
		t.Errorf("bird moved without a monitor: (%d, %d)", pos.X, pos.Y)
	}
}
