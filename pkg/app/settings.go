package app

import (
	"fmt"
	"log"

	"github.com/gonewx/bonnie/pkg/game"
)

// SettingsUpdate 命令行修改的设置项，nil 表示保持不变
type SettingsUpdate struct {
	SoundVolume  *float64
	SoundEnabled *bool
	MeowMuted    *bool
}

// Empty 没有任何要修改的设置
func (u SettingsUpdate) Empty() bool {
	return u.SoundVolume == nil && u.SoundEnabled == nil && u.MeowMuted == nil
}

// UpdateSettings 应用修改并保存
func UpdateSettings(sm *game.SettingsManager, u SettingsUpdate) error {
	if u.Empty() {
		return fmt.Errorf("no settings to change")
	}
	if u.SoundVolume != nil {
		if *u.SoundVolume < 0 || *u.SoundVolume > 1 {
			return fmt.Errorf("volume must be in [0, 1], got %v", *u.SoundVolume)
		}
		sm.SetSoundVolume(*u.SoundVolume)
	}
	if u.SoundEnabled != nil {
		sm.SetSoundEnabled(*u.SoundEnabled)
	}
	if u.MeowMuted != nil {
		sm.SetMeowMuted(*u.MeowMuted)
	}

	if err := sm.Save(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	log.Printf("[App] Settings updated: %+v", *sm.GetSettings())
	return nil
}
