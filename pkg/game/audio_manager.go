package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundPlayer 播放一次性音效
// 返回 false 表示未播放（音效关闭、资源缺失等），调用方无需处理
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// AudioManager 音频管理器
// 所有音效都通过资源ID播放，音量和开关从 SettingsManager 读取
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager // 可为 nil
	soundPlayers    map[string]*audio.Player
	meowSounds      map[string]bool // MeowMuted 打开时这些音效不播放
}

// NewAudioManager 创建新的音频管理器
// sm 可为 nil，此时使用默认音量
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		meowSounds:      make(map[string]bool),
	}
}

// SetMeowSounds 登记喵叫音效ID，供 MeowMuted 设置使用
func (am *AudioManager) SetMeowSounds(ids []string) {
	am.meowSounds = make(map[string]bool, len(ids))
	for _, id := range ids {
		am.meowSounds[id] = true
	}
}

// PlaySound 播放音效，单次播放后停止
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.SoundEnabled {
			return false
		}
		if settings.MeowMuted && am.meowSounds[soundID] {
			return false
		}
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// SetSoundVolume 设置音效音量，同步到设置
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.soundPlayers {
		if player == nil {
			continue
		}
		player.SetVolume(am.getSoundVolume())
	}
}

// ToggleMeowMuted 切换喵叫静音并保存设置，返回切换后的值
func (am *AudioManager) ToggleMeowMuted() bool {
	if am.settingsManager == nil {
		return false
	}
	muted := !am.settingsManager.GetSettings().MeowMuted
	am.settingsManager.SetMeowMuted(muted)
	am.save()
	log.Printf("[AudioManager] Meow muted: %v", muted)
	return muted
}

// AdjustSoundVolume 把音量调整 delta 并保存设置，返回调整后的音量
func (am *AudioManager) AdjustSoundVolume(delta float64) float64 {
	am.SetSoundVolume(am.getSoundVolume() + delta)
	am.save()
	volume := am.getSoundVolume()
	log.Printf("[AudioManager] Sound volume: %.1f", volume)
	return volume
}

func (am *AudioManager) save() {
	if am.settingsManager == nil {
		return
	}
	if err := am.settingsManager.Save(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to save settings: %v", err)
	}
}

// getSoundPlayer 获取或加载音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	if am.resourceManager == nil {
		return nil
	}
	player, err := am.resourceManager.LoadSoundByID(soundID)
	if err != nil {
		// 记录一次，之后不再重试
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		am.soundPlayers[soundID] = nil
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}

// PreloadSounds 预加载音效，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	for _, soundID := range soundIDs {
		am.getSoundPlayer(soundID)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(soundIDs))
}
