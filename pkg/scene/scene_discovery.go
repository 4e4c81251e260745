package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultScenesDir is where JSON scene files are looked up by name
const DefaultScenesDir = "scenes"

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`                 // Name accepted by Resolve
	DisplayName string `json:"displayName"`        // UI display name
	Description string `json:"description"`        // Optional description
	Type        string `json:"type"`               // "builtin" or "json"
	FilePath    string `json:"filePath,omitempty"` // Path to the JSON file (json type only)
}

// ListJSONScenes scans dir for *.json scene files.
// A missing directory yields an empty list.
func ListJSONScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		id := strings.TrimSuffix(filepath.Base(filePath), ".json")
		scenes = append(scenes, SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Type:        "json",
			FilePath:    filePath,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// ListAllScenes returns the built-in scenes followed by the JSON scenes in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	var scenes []SceneInfo
	for _, name := range Names() {
		scenes = append(scenes, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: builtinScenes[name].description,
			Type:        "builtin",
		})
	}

	jsonScenes, err := ListJSONScenes(dir)
	if err != nil {
		return nil, err
	}
	return append(scenes, jsonScenes...), nil
}

// Resolve turns a scene reference into a scene. The reference is a path ending
// in .json, a built-in scene name, or the name of a JSON file in dir.
func Resolve(ref, dir string) (*Scene, error) {
	if strings.HasSuffix(ref, ".json") {
		return Load(ref)
	}
	if _, ok := builtinScenes[ref]; ok {
		return New(ref)
	}
	if ref != "" {
		path := filepath.Join(dir, ref+".json")
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, ref)
}

// titleCase converts a filename-style string to title case
// e.g., "backlit-sphere" -> "Backlit Sphere"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
