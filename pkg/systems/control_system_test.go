package systems

import (
	"errors"
	"testing"

	"github.com/gonewx/bonnie/pkg/components"
	"github.com/gonewx/bonnie/pkg/config"
	"github.com/gonewx/bonnie/pkg/ecs"
	"github.com/gonewx/bonnie/pkg/entities"
	"github.com/gonewx/bonnie/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestControlSystem_ArrowKeys(t *testing.T) {
	tests := []struct {
		name    string
		pressed []ebiten.Key
		want    types.Point
	}{
		{"none", nil, types.Pt(100, 100)},
		{"left", []ebiten.Key{ebiten.KeyArrowLeft}, types.Pt(90, 100)},
		{"right", []ebiten.Key{ebiten.KeyArrowRight}, types.Pt(110, 100)},
		{"up", []ebiten.Key{ebiten.KeyArrowUp}, types.Pt(100, 90)},
		{"down", []ebiten.Key{ebiten.KeyArrowDown}, types.Pt(100, 110)},
		{"diagonal", []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyArrowRight}, types.Pt(110, 110)},
		{"opposite cancel", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowRight}, types.Pt(100, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := entities.NewBonnieEntity(em, config.DefaultBonnieConfig(), types.Pt(100, 100), 1)

			keys := fakeKeys{pressed: make(map[ebiten.Key]bool)}
			for _, k := range tt.pressed {
				keys.pressed[k] = true
			}

			s := NewControlSystem(em, keys, 10, nil)
			if err := s.Update(); err != nil {
				t.Fatalf("Update: unexpected error %v", err)
			}

			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			if got := types.Pt(pos.X, pos.Y); got != tt.want {
				t.Errorf("position: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestControlSystem_QuitKey(t *testing.T) {
	em := ecs.NewEntityManager()
	keys := fakeKeys{justPressed: map[ebiten.Key]bool{ebiten.KeyQ: true}}

	err := NewControlSystem(em, keys, 10, nil).Update()
	if !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update with Q: got %v, want ebiten.Termination", err)
	}
}

// recordingAudio 记录音频快捷键触发的调用
type recordingAudio struct {
	toggles int
	deltas  []float64
}

func (a *recordingAudio) ToggleMeowMuted() bool {
	a.toggles++
	return a.toggles%2 == 1
}

func (a *recordingAudio) AdjustSoundVolume(delta float64) float64 {
	a.deltas = append(a.deltas, delta)
	return 0.5
}

func TestControlSystem_AudioKeys(t *testing.T) {
	tests := []struct {
		name        string
		key         ebiten.Key
		wantToggles int
		wantDeltas  []float64
	}{
		{"mute meow", ebiten.KeyM, 1, nil},
		{"volume down", ebiten.KeyMinus, 0, []float64{-VolumeStep}},
		{"volume up", ebiten.KeyEqual, 0, []float64{VolumeStep}},
		{"unrelated key", ebiten.KeyA, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			audio := &recordingAudio{}
			keys := fakeKeys{justPressed: map[ebiten.Key]bool{tt.key: true}}

			if err := NewControlSystem(ecs.NewEntityManager(), keys, 10, audio).Update(); err != nil {
				t.Fatalf("Update: unexpected error %v", err)
			}
			if audio.toggles != tt.wantToggles {
				t.Errorf("toggles: got %d, want %d", audio.toggles, tt.wantToggles)
			}
			if len(audio.deltas) != len(tt.wantDeltas) || (len(tt.wantDeltas) > 0 && audio.deltas[0] != tt.wantDeltas[0]) {
				t.Errorf("volume deltas: got %v, want %v", audio.deltas, tt.wantDeltas)
			}
		})
	}
}

func TestControlSystem_AudioKeysWithoutAudio(t *testing.T) {
	keys := fakeKeys{justPressed: map[ebiten.Key]bool{ebiten.KeyM: true}}
	if err := NewControlSystem(ecs.NewEntityManager(), keys, 10, nil).Update(); err != nil {
		t.Errorf("Update: unexpected error %v", err)
	}
}
