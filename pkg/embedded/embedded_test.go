package embedded

import (
	"testing"
	"testing/fstest"
)

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	InitFS(fstest.MapFS{}, fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	initialized = false
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	initialized = false

	_, err := ReadFile("data/bonnie.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestReadFileByPrefix 测试按前缀分发到不同文件系统
func TestReadFileByPrefix(t *testing.T) {
	data := fstest.MapFS{
		"data/bonnie.yaml": {Data: []byte("timer: {min: 1, max: 4}")},
	}
	assets := fstest.MapFS{
		"assets/images/poop.png": {Data: []byte("png")},
	}
	InitFS(data, assets)
	defer func() { initialized = false }()

	got, err := ReadFile("./data/bonnie.yaml")
	if err != nil {
		t.Fatalf("ReadFile(data) error: %v", err)
	}
	if string(got) != "timer: {min: 1, max: 4}" {
		t.Errorf("ReadFile(data): got %q", got)
	}

	if !Exists("assets/images/poop.png") {
		t.Error("Expected asset to exist")
	}
	if Exists("data/images/poop.png") {
		t.Error("Asset must not be visible under data/")
	}

	if _, err := ReadFile("sounds/meow1.ogg"); err == nil {
		t.Error("Expected error for unknown prefix")
	}
}
