// embed.go - 资源嵌入声明
// 必须放在项目根目录（与 data/ 同级）
// 因为 //go:embed 指令只能嵌入当前包目录及其子目录的文件
package main

import "embed"

// 图片和音频体积较大，从 assets/ 目录按需读取；这里只嵌入配置
//
//go:embed data/bonnie.yaml data/resources.yaml
var dataFS embed.FS
