// Package app 提供桌宠应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：加载配置和资源、打开设置存储、
// 创建桌面场景，并负责覆盖层窗口的设置和鼠标穿透切换。
package app

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gonewx/bonnie/pkg/config"
	"github.com/gonewx/bonnie/pkg/embedded"
	"github.com/gonewx/bonnie/pkg/game"
	"github.com/gonewx/bonnie/pkg/scenes"
	"github.com/gonewx/bonnie/pkg/systems"
	"github.com/gonewx/bonnie/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	// AppName 设置存储使用的应用名
	AppName = "bonnie"

	defaultConfigPath   = "data/bonnie.yaml"
	resourceConfigPath  = "data/resources.yaml"
	resourceGroupBonnie = "bonnie"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 覆盖内置 data/bonnie.yaml 的配置文件路径，为空使用内置配置
	ConfigPath string
	// Seed 固定随机种子，nil 时从系统熵源取种子
	Seed *uint64
}

// App 是桌宠应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	scene        *scenes.DesktopScene

	passthrough bool // 覆盖层当前是否鼠标穿透
}

// LoadConfig 加载 Bonnie 配置
// path 为空时读取内置配置，否则读取磁盘文件
// 调用前必须先调用 embedded.Init()
func LoadConfig(path string) (*config.BonnieConfig, error) {
	if path != "" {
		return config.LoadBonnieConfig(path)
	}
	data, err := embedded.ReadFile(defaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", defaultConfigPath, err)
	}
	return config.ParseBonnieConfig(data)
}

// OpenSettings 打开设置存储并加载设置
// 存储不可用时返回仅内存的设置管理器
func OpenSettings() *game.SettingsManager {
	storage, err := game.OpenSettingsStorage(AppName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not persist)", err)
	}
	return game.NewSettingsManager(storage)
}

// NewApp 创建并初始化桌宠应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	bonnieConfig, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器；素材缺失不是致命错误，渲染系统会画占位图
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(resourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	if failed, err := resourceManager.LoadResourceGroup(resourceGroupBonnie); err != nil {
		log.Printf("[App] Warning: %d resources failed to load, first error: %v", failed, err)
	}

	settingsManager := OpenSettings()
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	audioManager.SetMeowSounds(bonnieConfig.Meow.Sounds)
	audioManager.PreloadSounds(append([]string{bonnieConfig.Poop.ClickSound}, bonnieConfig.Meow.Sounds...))
	log.Printf("[App] AudioManager initialized")

	monitor := game.EbitenMonitor{}
	setupOverlayWindow(monitor, bonnieConfig)

	scene := scenes.NewDesktopScene(scenes.DesktopSceneOptions{
		Config:          bonnieConfig,
		ResourceManager: resourceManager,
		SettingsManager: settingsManager,
		Sound:           audioManager,
		AudioControls:   audioManager,
		Monitor:         monitor,
		Cursor:          &game.EbitenCursorTracker{},
		Clicks:          utils.PointerClicks{},
		Keys:            systems.EbitenKeys{},
		Rand:            game.NewRand(cfg.Seed),
	})

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager: sceneManager,
		scene:        scene,
		passthrough:  true,
	}, nil
}

// setupOverlayWindow 把窗口设置为铺满显示器、无边框、置顶、默认鼠标穿透的透明覆盖层
func setupOverlayWindow(monitor game.MonitorInfo, cfg *config.BonnieConfig) {
	w, h, ok := monitor.Size()
	if !ok {
		w, h = cfg.Monitor.FallbackWidth, cfg.Monitor.FallbackHeight
		log.Printf("[App] Monitor unavailable, using fallback size %dx%d", w, h)
	}

	ebiten.SetWindowTitle("Bonnie")
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)
	log.Printf("[App] Overlay window %dx%d", w, h)
}

// RunOptions 覆盖层窗口的运行选项
func RunOptions() *ebiten.RunGameOptions {
	return &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.SaveOnExit()
		return ebiten.Termination
	}

	a.updatePassthrough()

	deltaTime := 1.0 / float64(ebiten.TPS())
	if err := a.sceneManager.Update(deltaTime); err != nil {
		if errors.Is(err, ebiten.Termination) {
			a.sceneManager.SaveOnExit()
		}
		return err
	}
	return nil
}

// updatePassthrough 光标在可点击窗口上时关闭穿透，其余时间让点击落到桌面
func (a *App) updatePassthrough() {
	want := !a.scene.InteractiveAt(utils.PointerDesktopPosition())
	if want == a.passthrough {
		return
	}
	ebiten.SetWindowMousePassthrough(want)
	a.passthrough = want
	log.Printf("[App] Mouse passthrough: %v", want)
}

// Draw 绘制覆盖层
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 覆盖层与窗口一比一，窗口坐标即显示器坐标
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
