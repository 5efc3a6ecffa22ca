package entities

import (
	"testing"

	"github.com/gonewx/bonnie/pkg/components"
	"github.com/gonewx/bonnie/pkg/config"
	"github.com/gonewx/bonnie/pkg/ecs"
	"github.com/gonewx/bonnie/pkg/types"
)

func TestNewBonnieEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultBonnieConfig()

	id := NewBonnieEntity(em, cfg, types.Pt(200, 200), 2.5)

	bonnie, ok := ecs.GetComponent[*components.BonnieComponent](em, id)
	if !ok {
		t.Fatal("missing BonnieComponent")
	}
	if bonnie.State != types.Idle() {
		t.Errorf("initial state: got %v, want Idle", bonnie.State)
	}

	sm, ok := ecs.GetComponent[*components.StateMachineComponent](em, id)
	if !ok {
		t.Fatal("missing StateMachineComponent")
	}
	if sm.Remaining != 2.5 || !sm.CanChange {
		t.Errorf("gate: remaining=%v canChange=%v, want 2.5 true", sm.Remaining, sm.CanChange)
	}

	win, _ := ecs.GetComponent[*components.WindowComponent](em, id)
	if win.Role != components.WindowRolePrimary || win.Width != 180 || win.Height != 180 {
		t.Errorf("window: %+v", win)
	}

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.ImageID != cfg.Bonnie.Sprites.Sleep {
		t.Errorf("sprite: got %s, want %s", sprite.ImageID, cfg.Bonnie.Sprites.Sleep)
	}
}

func TestTransientWindowFactories(t *testing.T) {
	cfg := config.DefaultBonnieConfig()
	pos := types.Pt(10, 20)

	tests := []struct {
		name         string
		create       func(em *ecs.EntityManager) ecs.EntityID
		role         components.WindowRole
		layer        components.RenderLayer
		size         int
		clickThrough bool
		hasLifetime  bool
	}{
		{
			name:   "poop",
			create: func(em *ecs.EntityManager) ecs.EntityID { return NewPoopEntity(em, cfg, pos) },
			role:   components.WindowRolePoop, layer: components.LayerPoop, size: cfg.Poop.Size,
		},
		{
			name:   "teach popup",
			create: func(em *ecs.EntityManager) ecs.EntityID { return NewTeachPopupEntity(em, cfg, pos, "IMAGE_MEME2") },
			role:   components.WindowRoleTeach, layer: components.LayerTeach, size: cfg.Teach.PopupSize,
		},
		{
			name:   "observer",
			create: func(em *ecs.EntityManager) ecs.EntityID { return NewObserverEntity(em, cfg, pos) },
			role:   components.WindowRoleObserver, layer: components.LayerTeach, size: cfg.Teach.Observer.Size,
			clickThrough: true,
		},
		{
			name:   "bird",
			create: func(em *ecs.EntityManager) ecs.EntityID { return NewBirdEntity(em, cfg, pos, 1, 0, 1.5) },
			role:   components.WindowRoleBird, layer: components.LayerBird, size: cfg.Bird.Size,
			hasLifetime: true,
		},
		{
			name:   "scratch",
			create: func(em *ecs.EntityManager) ecs.EntityID { return NewScratchEntity(em, cfg, pos) },
			role:   components.WindowRoleScratch, layer: components.LayerScratch, size: cfg.Scratch.Size,
			clickThrough: true, hasLifetime: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := tt.create(em)

			win, ok := ecs.GetComponent[*components.WindowComponent](em, id)
			if !ok {
				t.Fatal("missing WindowComponent")
			}
			if win.Role != tt.role {
				t.Errorf("role: got %v, want %v", win.Role, tt.role)
			}
			if win.Width != tt.size || win.Height != tt.size {
				t.Errorf("size: got %dx%d, want %d", win.Width, win.Height, tt.size)
			}
			if win.ClickThrough != tt.clickThrough {
				t.Errorf("clickThrough: got %v, want %v", win.ClickThrough, tt.clickThrough)
			}

			p, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			if p.X != pos.X || p.Y != pos.Y {
				t.Errorf("position: got (%d, %d), want %v", p.X, p.Y, pos)
			}

			sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
			if sprite.Layer != tt.layer {
				t.Errorf("layer: got %v, want %v", sprite.Layer, tt.layer)
			}

			if got := ecs.HasComponent[*components.LifetimeComponent](em, id); got != tt.hasLifetime {
				t.Errorf("has lifetime: got %v, want %v", got, tt.hasLifetime)
			}
		})
	}
}

func TestNewBirdEntity_Motion(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultBonnieConfig()

	id := NewBirdEntity(em, cfg, types.Pt(30, 40), 0.6, -0.8, 1.5)
	bird, ok := ecs.GetComponent[*components.BirdComponent](em, id)
	if !ok {
		t.Fatal("missing BirdComponent")
	}
	if bird.PreciseX != 30 || bird.PreciseY != 40 {
		t.Errorf("precise position: (%v, %v)", bird.PreciseX, bird.PreciseY)
	}
	if bird.DirX != 0.6 || bird.DirY != -0.8 || bird.SpeedMultiplier != 1.5 {
		t.Errorf("motion: %+v", bird)
	}
}
