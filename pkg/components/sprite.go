package components

// RenderLayer 渲染层，同时用于按层批量清理实体
type RenderLayer int

const (
	// LayerBonnie Bonnie 本体
	LayerBonnie RenderLayer = iota
	// LayerPoop 便便
	LayerPoop
	// LayerTeach 教学弹窗及其附属物，关闭弹窗时整层清空
	LayerTeach
	// LayerBird 小鸟
	LayerBird
	// LayerScratch 抓痕
	LayerScratch
)

// SpriteComponent 存储实体的视觉表现
// ImageID 对应 resources.yaml 中的资源ID，由渲染系统通过 ResourceManager 解析
type SpriteComponent struct {
	ImageID string
	Layer   RenderLayer
}
