package game

import (
	"fmt"
	"log"

	"github.com/gonewx/bonnie/pkg/types"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings 用户设置
// 与 data/bonnie.yaml 不同，这里保存的是运行期间会被用户改变的值
type Settings struct {
	// 音频设置
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关
	MeowMuted    bool    `yaml:"meowMuted"`    // 只静音喵叫，点击音效仍然播放

	// 上次退出时 Bonnie 的位置
	HasLastPosition bool        `yaml:"hasLastPosition"`
	LastPosition    types.Point `yaml:"lastPosition"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *Settings {
	return &Settings{
		SoundVolume:  0.8,
		SoundEnabled: true,
	}
}

// SettingsManager 设置管理器
// 负责用户设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式）
	settings     *Settings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// OpenSettingsStorage 打开 Bonnie 的 gdata 存储
// 失败时返回 nil 和错误，调用方可以用 nil 进入降级模式
func OpenSettingsStorage(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open settings storage %q: %w", appName, err)
	}
	return m, nil
}

// NewSettingsManager 创建新的设置管理器实例
//
// gdataManager 可为 nil（降级模式，仅内存设置）。
// 加载失败不是致命错误：记录警告并使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
// gdataManager 为 nil 或文件不存在时使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 从默认值开始反序列化，旧版本文件里缺失的字段保持默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
// gdataManager 为 nil 时直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// Reset 恢复默认值并覆盖已保存的设置
func (sm *SettingsManager) Reset() error {
	sm.settings = DefaultSettings()
	if err := sm.Save(); err != nil {
		return err
	}
	log.Printf("[SettingsManager] Settings reset to defaults")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// SetSoundVolume 设置音效音量，限制在 0.0 ~ 1.0
// 仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetMeowMuted 设置喵叫静音
func (sm *SettingsManager) SetMeowMuted(muted bool) {
	sm.settings.MeowMuted = muted
}

// SetLastPosition 记录 Bonnie 的位置，退出时保存
func (sm *SettingsManager) SetLastPosition(p types.Point) {
	sm.settings.LastPosition = p
	sm.settings.HasLastPosition = true
}

// LastPosition 返回上次保存的位置
func (sm *SettingsManager) LastPosition() (types.Point, bool) {
	return sm.settings.LastPosition, sm.settings.HasLastPosition
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
