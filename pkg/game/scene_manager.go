package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 管理当前活动的场景
// 同一时间只有一个场景的 Update 和 Draw 被调用
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager 创建没有活动场景的管理器
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换到给定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update 更新当前场景，并把场景的退出请求原样返回
func (sm *SceneManager) Update(deltaTime float64) error {
	if sm.currentScene == nil {
		return nil
	}
	return sm.currentScene.Update(deltaTime)
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// SaveOnExit 在程序退出时让支持保存的场景保存状态
func (sm *SceneManager) SaveOnExit() {
	saveable, ok := sm.currentScene.(Saveable)
	if !ok {
		return
	}
	if !saveable.SaveOnExit() {
		log.Printf("[SceneManager] Warning: scene failed to save on exit")
	}
}
