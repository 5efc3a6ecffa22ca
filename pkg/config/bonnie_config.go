package config

import (
	"fmt"
	"os"

	"github.com/gonewx/bonnie/pkg/types"
	"gopkg.in/yaml.v3"
)

// BonnieConfig Bonnie 状态机的全部可调参数
//
// 配置文件位置: data/bonnie.yaml（编译时嵌入，可通过 --config 覆盖）
type BonnieConfig struct {
	Timer    TimerConfig    `yaml:"timer"`
	Movement MovementConfig `yaml:"movement"`
	Walk     WalkConfig     `yaml:"walk"`
	Idle     IdleConfig     `yaml:"idle"`
	Chase    ChaseConfig    `yaml:"chase"`
	Bonnie   ActorConfig    `yaml:"bonnie"`
	Poop     PoopConfig     `yaml:"poop"`
	Teach    TeachConfig    `yaml:"teach"`
	Meow     MeowConfig     `yaml:"meow"`
	Bird     BirdConfig     `yaml:"bird"`
	Scratch  ScratchConfig  `yaml:"scratch"`
	States   StatesConfig   `yaml:"states"`
	Monitor  MonitorConfig  `yaml:"monitor"`
	Control  ControlConfig  `yaml:"control"`
}

// TimerConfig 每次切换后计时器时长的随机范围 [Min, Max)（秒）
type TimerConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// MovementConfig 移动速度参数
// 实际速度 = 显示器对角线 × BaseSpeedRatio × 状态倍率
type MovementConfig struct {
	BaseSpeedRatio float64             `yaml:"baseSpeedRatio"`
	Multipliers    SpeedMultiplierConf `yaml:"multipliers"`
}

// SpeedMultiplierConf 各状态的速度倍率
type SpeedMultiplierConf struct {
	Walking  float64 `yaml:"walking"`
	Chasing  float64 `yaml:"chasing"`
	Teaching float64 `yaml:"teaching"`
	Bird     float64 `yaml:"bird"`
}

// WalkConfig 行走目标点参数
type WalkConfig struct {
	// Margin 目标点距屏幕边缘的最小距离，保证 Bonnie 整个精灵留在屏幕内
	Margin int `yaml:"margin"`
}

// IdleConfig 睡觉状态参数
type IdleConfig struct {
	// WakeDistance 光标距 Bonnie 中心小于该值时醒来
	WakeDistance float64 `yaml:"wakeDistance"`
}

// ChaseConfig 追逐状态参数
type ChaseConfig struct {
	// CatchDistance Bonnie 中心距光标小于该值时视为抓到
	CatchDistance float64 `yaml:"catchDistance"`
	// GiveUpAfter 追逐超过该时长（秒）仍未抓到则放弃，0 表示永不放弃
	GiveUpAfter float64 `yaml:"giveUpAfter"`
}

// ActorConfig Bonnie 本体窗口参数
type ActorConfig struct {
	Width         int          `yaml:"width"`
	Height        int          `yaml:"height"`
	CenterOffset  types.Point  `yaml:"centerOffset"`
	StartPosition types.Point  `yaml:"startPosition"`
	Sprites       ActorSprites `yaml:"sprites"`
}

// ActorSprites Bonnie 各姿势对应的图片资源ID
type ActorSprites struct {
	Normal string `yaml:"normal"`
	Sleep  string `yaml:"sleep"`
	Angry  string `yaml:"angry"`
}

// PoopConfig 便便窗口参数
type PoopConfig struct {
	Size       int    `yaml:"size"`
	Image      string `yaml:"image"`
	ClickSound string `yaml:"clickSound"`
}

// TeachConfig 教学弹窗参数
type TeachConfig struct {
	PopupSize     int            `yaml:"popupSize"`
	SpawnPosition types.Point    `yaml:"spawnPosition"`
	FollowOffset  types.Point    `yaml:"followOffset"`
	Images        []string       `yaml:"images"`
	Observer      ObserverConfig `yaml:"observer"`
}

// ObserverConfig 教学时跟随 Bonnie 的小图标
type ObserverConfig struct {
	Size   int         `yaml:"size"`
	Offset types.Point `yaml:"offset"`
	Image  string      `yaml:"image"`
}

// MeowConfig 猫叫音效列表
type MeowConfig struct {
	Sounds []string `yaml:"sounds"`
}

// BirdConfig 小鸟参数
type BirdConfig struct {
	Size       int     `yaml:"size"`
	EdgeBuffer int     `yaml:"edgeBuffer"`
	Lifetime   float64 `yaml:"lifetime"`
	Image      string  `yaml:"image"`
}

// ScratchConfig 抓痕参数
type ScratchConfig struct {
	Size     int     `yaml:"size"`
	Lifetime float64 `yaml:"lifetime"`
	FadeOut  float64 `yaml:"fadeOut"`
	Image    string  `yaml:"image"`
}

// StatesConfig 可被随机选中的状态
type StatesConfig struct {
	Enabled []string `yaml:"enabled"`
}

// MonitorConfig 获取不到显示器尺寸时，行为计算速度使用的后备尺寸
type MonitorConfig struct {
	FallbackWidth  int `yaml:"fallbackWidth"`
	FallbackHeight int `yaml:"fallbackHeight"`
}

// ControlConfig 调试键盘控制
type ControlConfig struct {
	// Step 方向键每帧移动的像素数
	Step int `yaml:"step"`
}

// DefaultBonnieConfig 返回与 data/bonnie.yaml 一致的默认配置
func DefaultBonnieConfig() *BonnieConfig {
	enabled := make([]string, 0, len(types.AllStateKinds))
	for _, k := range types.AllStateKinds {
		enabled = append(enabled, k.String())
	}

	return &BonnieConfig{
		Timer: TimerConfig{Min: 1.0, Max: 4.0},
		Movement: MovementConfig{
			BaseSpeedRatio: 0.15,
			Multipliers: SpeedMultiplierConf{
				Walking:  1.0,
				Chasing:  2.0,
				Teaching: 0.8,
				Bird:     1.5,
			},
		},
		Walk:  WalkConfig{Margin: 150},
		Idle:  IdleConfig{WakeDistance: 70},
		Chase: ChaseConfig{CatchDistance: 35, GiveUpAfter: 8},
		Bonnie: ActorConfig{
			Width:         180,
			Height:        180,
			CenterOffset:  types.Pt(90, 147),
			StartPosition: types.Pt(200, 200),
			Sprites: ActorSprites{
				Normal: "IMAGE_BONNIE",
				Sleep:  "IMAGE_BONNIE_SLEEP",
				Angry:  "IMAGE_BONNIE_ANGRY",
			},
		},
		Poop: PoopConfig{Size: 40, Image: "IMAGE_POOP", ClickSound: "SOUND_POOP_SPLAT"},
		Teach: TeachConfig{
			PopupSize:     300,
			SpawnPosition: types.Pt(-100, 300),
			FollowOffset:  types.Pt(-150, 200),
			Images:        []string{"IMAGE_MEME1", "IMAGE_MEME2", "IMAGE_MEME3"},
			Observer: ObserverConfig{
				Size:   64,
				Offset: types.Pt(150, -40),
				Image:  "IMAGE_NERD",
			},
		},
		Meow:    MeowConfig{Sounds: []string{"SOUND_MEOW1", "SOUND_MEOW2", "SOUND_MEOW3"}},
		Bird:    BirdConfig{Size: 64, EdgeBuffer: 10, Lifetime: 20, Image: "IMAGE_BIRD"},
		Scratch: ScratchConfig{Size: 120, Lifetime: 3, FadeOut: 1, Image: "IMAGE_SCRATCH"},
		States:  StatesConfig{Enabled: enabled},
		Monitor: MonitorConfig{FallbackWidth: 1920, FallbackHeight: 1080},
		Control: ControlConfig{Step: 10},
	}
}

// ParseBonnieConfig 解析 YAML 数据
// 未出现在 YAML 中的字段保留默认值
func ParseBonnieConfig(data []byte) (*BonnieConfig, error) {
	cfg := DefaultBonnieConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse bonnie config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bonnie config: %w", err)
	}

	return cfg, nil
}

// LoadBonnieConfig 从指定路径加载配置
//
// 参数:
//   - path: 配置文件路径（如 "data/bonnie.yaml"）
//
// 返回:
//   - *BonnieConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadBonnieConfig(path string) (*BonnieConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bonnie config: %w", err)
	}
	return ParseBonnieConfig(data)
}

// Validate 验证配置有效性
func (c *BonnieConfig) Validate() error {
	if c.Timer.Min <= 0 || c.Timer.Max <= c.Timer.Min {
		return fmt.Errorf("timer range invalid: min(%.2f) max(%.2f)", c.Timer.Min, c.Timer.Max)
	}

	if c.Movement.BaseSpeedRatio <= 0 {
		return fmt.Errorf("baseSpeedRatio must be > 0, got %.3f", c.Movement.BaseSpeedRatio)
	}
	m := c.Movement.Multipliers
	if m.Walking <= 0 || m.Chasing <= 0 || m.Teaching <= 0 || m.Bird <= 0 {
		return fmt.Errorf("speed multipliers must be > 0: %+v", m)
	}

	if c.Walk.Margin < 0 {
		return fmt.Errorf("walk margin must be >= 0, got %d", c.Walk.Margin)
	}
	if c.Idle.WakeDistance < 0 || c.Chase.CatchDistance < 0 {
		return fmt.Errorf("proximity thresholds must be >= 0")
	}
	if c.Chase.GiveUpAfter < 0 {
		return fmt.Errorf("chase giveUpAfter must be >= 0, got %.2f", c.Chase.GiveUpAfter)
	}

	if c.Bonnie.Width <= 0 || c.Bonnie.Height <= 0 {
		return fmt.Errorf("bonnie window size invalid: %dx%d", c.Bonnie.Width, c.Bonnie.Height)
	}
	if c.Poop.Size <= 0 || c.Teach.PopupSize <= 0 || c.Teach.Observer.Size <= 0 ||
		c.Bird.Size <= 0 || c.Scratch.Size <= 0 {
		return fmt.Errorf("transient window sizes must be > 0")
	}

	if len(c.Teach.Images) == 0 {
		return fmt.Errorf("teach.images must not be empty")
	}
	if len(c.Meow.Sounds) == 0 {
		return fmt.Errorf("meow.sounds must not be empty")
	}

	if c.Bird.EdgeBuffer < 0 || c.Bird.Lifetime < 0 {
		return fmt.Errorf("bird edgeBuffer/lifetime must be >= 0")
	}
	if c.Scratch.Lifetime < 0 || c.Scratch.FadeOut < 0 {
		return fmt.Errorf("scratch lifetime/fadeOut must be >= 0")
	}

	kinds, err := c.EnabledKinds()
	if err != nil {
		return err
	}
	if len(kinds) < 2 {
		return fmt.Errorf("at least 2 states must be enabled, got %d", len(kinds))
	}

	if c.Monitor.FallbackWidth <= 0 || c.Monitor.FallbackHeight <= 0 {
		return fmt.Errorf("fallback monitor size invalid: %dx%d", c.Monitor.FallbackWidth, c.Monitor.FallbackHeight)
	}

	return nil
}

// EnabledKinds 将 States.Enabled 解析为去重后的状态种类列表（保持声明顺序）
func (c *BonnieConfig) EnabledKinds() ([]types.StateKind, error) {
	seen := make(map[types.StateKind]bool)
	kinds := make([]types.StateKind, 0, len(c.States.Enabled))
	for _, name := range c.States.Enabled {
		kind, err := types.ParseStateKind(name)
		if err != nil {
			return nil, fmt.Errorf("states.enabled: %w", err)
		}
		if seen[kind] {
			continue
		}
		seen[kind] = true
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// Marshal 将配置序列化为 YAML（用于 `bonnie config` 命令输出生效配置）
func (c *BonnieConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bonnie config: %w", err)
	}
	return data, nil
}
