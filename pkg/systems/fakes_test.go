package systems

import (
	"github.com/gonewx/bonnie/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeClicks 每次 JustClicked 消费一个预设点击
type fakeClicks struct {
	queue []types.Point
}

func (f *fakeClicks) JustClicked() (types.Point, bool) {
	if len(f.queue) == 0 {
		return types.Point{}, false
	}
	p := f.queue[0]
	f.queue = f.queue[1:]
	return p, true
}

// recordingSound 记录播放过的音效
type recordingSound struct {
	played []string
}

func (r *recordingSound) PlaySound(id string) bool {
	r.played = append(r.played, id)
	return true
}

// fakeKeys 固定的键盘状态
type fakeKeys struct {
	pressed     map[ebiten.Key]bool
	justPressed map[ebiten.Key]bool
}

func (f fakeKeys) IsKeyPressed(k ebiten.Key) bool     { return f.pressed[k] }
func (f fakeKeys) IsKeyJustPressed(k ebiten.Key) bool { return f.justPressed[k] }
