package behavior

import (
	"testing"

	"github.com/gonewx/bonnie/pkg/game"
	"github.com/gonewx/bonnie/pkg/types"
)

func seeded(seed uint64) game.Rand {
	return game.NewRand(&seed)
}

// TestRandomState_NeverSameKind 对每个当前状态多次抽样，新状态种类总与当前不同
func TestRandomState_NeverSameKind(t *testing.T) {
	s := NewSelector(types.AllStateKinds, 150)
	rng := seeded(1)

	for _, kind := range types.AllStateKinds {
		current := types.StateOf(kind)
		if kind == types.StateWalking {
			current = types.Walking(types.Pt(400, 300))
		}
		seen := make(map[types.StateKind]bool)
		for i := 0; i < 500; i++ {
			next := s.RandomState(current, 1920, 1080, rng)
			if next.SameKind(current) {
				t.Fatalf("RandomState(%v) returned the same kind: %v", current, next)
			}
			seen[next.Kind] = true
		}
		if len(seen) != len(types.AllStateKinds)-1 {
			t.Errorf("from %v only reached %d kinds: %v", kind, len(seen), seen)
		}
	}
}

// TestRandomState_WalkTargetWithinMargin 行走目标落在距边缘 margin 以内的区域
func TestRandomState_WalkTargetWithinMargin(t *testing.T) {
	s := NewSelector([]types.StateKind{types.StateIdle, types.StateWalking}, 150)
	rng := seeded(2)

	for i := 0; i < 1000; i++ {
		next := s.RandomState(types.Idle(), 1920, 1080, rng)
		target, ok := next.WalkTarget()
		if !ok {
			t.Fatalf("expected Walking, got %v", next)
		}
		if target.X < 150 || target.X >= 1770 || target.Y < 150 || target.Y >= 930 {
			t.Fatalf("walk target %v outside [150,1770)x[150,930)", target)
		}
	}
}

// TestRandomState_SmallMonitorFallback 显示器太小放不下边距时退回 [0, dim)
func TestRandomState_SmallMonitorFallback(t *testing.T) {
	s := NewSelector([]types.StateKind{types.StateIdle, types.StateWalking}, 150)
	rng := seeded(3)

	for i := 0; i < 1000; i++ {
		next := s.RandomState(types.Idle(), 300, 300, rng)
		target, _ := next.WalkTarget()
		if target.X < 0 || target.X >= 300 || target.Y < 0 || target.Y >= 300 {
			t.Fatalf("walk target %v outside [0,300)x[0,300)", target)
		}
	}
}

func TestWalkAxis(t *testing.T) {
	tests := []struct {
		name   string
		dim    int
		margin int
		draw   int
		want   int
	}{
		{"normal range", 1920, 150, 10, 160},
		{"margin zero", 100, 0, 99, 99},
		{"range collapses", 300, 150, 42, 42},
		{"range inverted", 200, 150, 7, 7},
		{"empty dimension", 0, 150, 5, 0},
		{"negative dimension", -10, 0, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &scriptedRand{ints: []int{tt.draw}}
			if got := walkAxis(tt.dim, tt.margin, rng); got != tt.want {
				t.Errorf("walkAxis(%d, %d) = %d, want %d", tt.dim, tt.margin, got, tt.want)
			}
		})
	}
}

func TestRandomState_RestrictedKinds(t *testing.T) {
	s := NewSelector([]types.StateKind{types.StateMeowing, types.StateBird}, 150)
	rng := seeded(4)

	for i := 0; i < 100; i++ {
		next := s.RandomState(types.StateOf(types.StateMeowing), 800, 600, rng)
		if next.Kind != types.StateBird {
			t.Fatalf("only Bird is possible from Meowing, got %v", next)
		}
	}
	// 当前状态不在启用列表里时，所有启用状态都是候选
	seen := make(map[types.StateKind]bool)
	for i := 0; i < 100; i++ {
		seen[s.RandomState(types.Idle(), 800, 600, rng).Kind] = true
	}
	if !seen[types.StateMeowing] || !seen[types.StateBird] || len(seen) != 2 {
		t.Errorf("expected exactly Meowing and Bird, got %v", seen)
	}
}

// TestRandomState_SingleKindFallback 唯一启用的种类就是当前种类时仍然切换
func TestRandomState_SingleKindFallback(t *testing.T) {
	rng := &scriptedRand{}

	s := NewSelector([]types.StateKind{types.StateBird}, 150)
	if next := s.RandomState(types.StateOf(types.StateBird), 800, 600, rng); next.Kind != types.StateIdle {
		t.Errorf("from Bird: got %v, want Idle", next)
	}

	s = NewSelector([]types.StateKind{types.StateIdle}, 150)
	if next := s.RandomState(types.Idle(), 800, 600, rng); next.Kind != types.StateWalking {
		t.Errorf("from Idle: got %v, want Walking", next)
	}
}
