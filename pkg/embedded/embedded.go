// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// data/ 下的配置编译进二进制；assets/ 下的图片和音频体积较大，从磁盘目录读取。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	assetsFS    fs.FS
	initialized bool
)

// Init 初始化资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
//
// 参数：
//   - data: 嵌入的 data/ 文件系统（路径以 "data/" 开头）
//   - assetRoot: assets/ 所在的磁盘目录，通常为可执行文件工作目录 "."
func Init(data fs.FS, assetRoot string) {
	dataFS = data
	assetsFS = os.DirFS(assetRoot)
	initialized = true
}

// InitFS 与 Init 相同，但 assets 也来自给定的文件系统（测试用）
func InitFS(data, assets fs.FS) {
	dataFS = data
	assetsFS = assets
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// pick 根据路径前缀选择文件系统，并返回规范化后的路径
func pick(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", fmt.Errorf("embedded package not initialized, call Init() first")
	}

	// 标准化路径分隔符为正斜杠（fs.FS 使用正斜杠）
	path = filepath.ToSlash(path)

	// 移除可能的 "./" 前缀
	path = strings.TrimPrefix(path, "./")

	if strings.HasPrefix(path, "assets/") {
		return assetsFS, path, nil
	} else if strings.HasPrefix(path, "data/") {
		return dataFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 根据路径前缀选择正确的文件系统并打开文件
// 路径必须以 "assets/" 或 "data/" 开头
func Open(path string) (fs.File, error) {
	fsys, name, err := pick(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// ReadFile 根据路径前缀选择正确的文件系统并读取文件内容
// 路径必须以 "assets/" 或 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := pick(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}
