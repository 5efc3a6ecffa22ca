package game

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of data/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  bonnie:
//	    images: [...]
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`
	BasePath string                   `yaml:"base_path"`
	Groups   map[string]ResourceGroup `yaml:"groups"`
}

// ResourceGroup is a collection of related resources that are loaded together.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
}

// ImageResource maps an image ID to a file relative to base_path.
//
//	- id: IMAGE_BONNIE
//	  path: images/bonnie.png
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// SoundResource maps a sound ID to a file relative to base_path.
// Supported formats are .ogg, .mp3 and .wav.
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// ParseResourceConfig parses and validates a resource configuration document.
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}

	seen := make(map[string]string)
	for groupName, group := range cfg.Groups {
		ids := make([]string, 0, len(group.Images)+len(group.Sounds))
		for _, img := range group.Images {
			ids = append(ids, img.ID)
		}
		for _, snd := range group.Sounds {
			ids = append(ids, snd.ID)
		}
		for _, id := range ids {
			if id == "" {
				return nil, fmt.Errorf("group %s: resource with empty id", groupName)
			}
			if other, dup := seen[id]; dup {
				return nil, fmt.Errorf("duplicate resource id %s (groups %s and %s)", id, other, groupName)
			}
			seen[id] = groupName
		}
	}

	return &cfg, nil
}

// buildResourceMap returns the resource ID -> full path mapping.
// Images without an extension default to .png, sounds to .ogg.
func (c *ResourceConfig) buildResourceMap() map[string]string {
	m := make(map[string]string)
	for _, group := range c.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(c.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png"
			}
			m[img.ID] = fullPath
		}
		for _, sound := range group.Sounds {
			fullPath := buildFullPath(c.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".ogg"
			}
			m[sound.ID] = fullPath
		}
	}
	return m
}

// buildFullPath joins the base path and a resource's relative path.
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
