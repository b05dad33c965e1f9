package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"nether-portal", "Nether Portal"},
		{"stone_bricks", "Stone Bricks"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name: "complete_metadata.yaml",
			content: `# Scene: Portal
# Variant: Night Only
# Description: Portal without the surrounding pillars
# Group: Portal Variants

name: portal
cube_size: 0.4`,
			expected: SceneInfo{
				ID:          "yaml:complete_metadata",
				Name:        "Portal",
				DisplayName: "Portal - Night Only",
				Description: "Portal without the surrounding pillars",
				Group:       "Portal Variants",
				Type:        "yaml",
				Variant:     "Night Only",
			},
		},
		{
			name: "partial_metadata.yaml",
			content: `# Scene: Tower
# Description: A single stack of blocks

name: tower`,
			expected: SceneInfo{
				ID:          "yaml:partial_metadata",
				Name:        "Tower",
				DisplayName: "Tower",
				Description: "A single stack of blocks",
				Group:       "Scene Files",
				Type:        "yaml",
			},
		},
		{
			name:    "no_metadata.yaml",
			content: `name: plain`,
			expected: SceneInfo{
				ID:          "yaml:no_metadata",
				Name:        "No Metadata",
				DisplayName: "No Metadata",
				Group:       "Scene Files",
				Type:        "yaml",
			},
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatalf("Failed to write scene file: %v", err)
			}

			result, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneMetadata() error: %v", err)
			}

			tc.expected.FilePath = path
			if result != tc.expected {
				t.Errorf("ParseSceneMetadata() = %+v, want %+v", result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata_MissingFile(t *testing.T) {
	result, err := ParseSceneMetadata("nonexistent.yaml")
	if err != nil {
		t.Errorf("ParseSceneMetadata() should handle missing files gracefully, got %v", err)
	}
	if result.DisplayName != "Nonexistent" {
		t.Errorf("Expected fallback display name, got %q", result.DisplayName)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b-tower.yaml": "# Scene: Tower\nname: tower\n",
		"a-arch.yml":   "# Scene: Arch\n# Group: Extras\nname: arch\n",
		"notes.txt":    "not a scene",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	response, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	if len(response.Groups) != 3 {
		t.Fatalf("Expected 3 groups, got %d: %+v", len(response.Groups), response.Groups)
	}

	expectedGroups := []string{"Built-in Scenes", "Extras", "Scene Files"}
	for i, name := range expectedGroups {
		if response.Groups[i].Name != name {
			t.Errorf("Group %d = %q, want %q", i, response.Groups[i].Name, name)
		}
	}

	builtIn := response.Groups[0].Scenes
	if len(builtIn) != 1 || builtIn[0].ID != "diorama" {
		t.Errorf("Expected the diorama as the only built-in scene, got %+v", builtIn)
	}
	if got := response.Groups[2].Scenes[0].ID; got != "yaml:b-tower" {
		t.Errorf("Expected yaml:b-tower, got %s", got)
	}
}

func TestListSceneFiles_MissingDirectory(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Errorf("ListSceneFiles() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected empty, non-nil list, got %v", scenes)
	}
}
