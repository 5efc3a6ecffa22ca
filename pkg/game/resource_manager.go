package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/gonewx/bonnie/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ResourceManager is responsible for centralized management of sprites and sounds.
// Resources are loaded once and cached by path.
//
// Paths go through the embedded package: "data/..." comes from the binary,
// "assets/..." from the asset directory on disk.
//
// This implementation is NOT thread-safe; everything runs on the game loop goroutine.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil { ... }
//	img, err := rm.LoadImageByID("IMAGE_BONNIE")
type ResourceManager struct {
	imageCache   map[string]*ebiten.Image // path -> Image
	audioCache   map[string]*audio.Player // path -> Player
	audioContext *audio.Context           // nil disables sound loading

	config      *ResourceConfig
	resourceMap map[string]string // Resource ID -> file path
}

// NewResourceManager creates a ResourceManager with empty caches.
// audioContext may be nil, in which case every sound load fails with an error.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
		resourceMap:  make(map[string]string),
	}
}

// LoadImage loads an image file and caches it for future use.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage returns a previously loaded image, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadSoundEffect loads a non-looping sound effect and caches its player.
// Supported formats: .ogg, .mp3, .wav.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context, cannot load %s", path)
	}

	audioData, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)

	var stream io.ReadSeeker
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		decodedStream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		stream = decodedStream
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		stream = decodedStream
	case ".wav":
		decodedStream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound effect %s: %w", path, err)
		}
		stream = decodedStream
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .ogg, .mp3, .wav)", ext)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadResourceConfig reads and parses the resource configuration.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	cfg, err := ParseResourceConfig(data)
	if err != nil {
		return fmt.Errorf("%s: %w", configPath, err)
	}

	rm.config = cfg
	rm.resourceMap = cfg.buildResourceMap()
	return nil
}

// ResolvePath returns the file path registered for a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	p, ok := rm.resourceMap[resourceID]
	return p, ok
}

// LoadImageByID loads an image resource using its resource ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return rm.LoadImage(filePath)
}

// GetImageByID returns a loaded image by resource ID, or nil.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.imageCache[filePath]
}

// LoadSoundByID loads a sound effect using its resource ID.
func (rm *ResourceManager) LoadSoundByID(resourceID string) (*audio.Player, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("sound resource ID not found: %s", resourceID)
	}
	return rm.LoadSoundEffect(filePath)
}

// LoadResourceGroup loads every image and sound of a group.
//
// Missing or broken files do not abort the group: the companion still runs with
// placeholder sprites and silent sounds. The number of failures is returned
// together with the first error.
func (rm *ResourceManager) LoadResourceGroup(groupName string) (int, error) {
	if rm.config == nil {
		return 0, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	group, exists := rm.config.Groups[groupName]
	if !exists {
		return 0, fmt.Errorf("resource group not found: %s", groupName)
	}

	failed := 0
	var firstErr error
	record := func(id string, err error) {
		failed++
		log.Printf("[ResourceManager] Warning: %s: %v", id, err)
		if firstErr == nil {
			firstErr = fmt.Errorf("failed to load %s in group %s: %w", id, groupName, err)
		}
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			record(img.ID, err)
		}
	}
	for _, sound := range group.Sounds {
		if _, err := rm.LoadSoundByID(sound.ID); err != nil {
			record(sound.ID, err)
		}
	}

	log.Printf("[ResourceManager] Group %s: %d images, %d sounds, %d failed",
		groupName, len(group.Images), len(group.Sounds), failed)
	return failed, firstErr
}
