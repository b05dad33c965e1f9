package loaders

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/df07/diorama-raytracer/pkg/scene"
)

// BuiltinScene is the name that selects the compiled-in diorama
const BuiltinScene = "diorama"

// ErrUnknownScene is returned for scene ids that name nothing in the scenes directory
var ErrUnknownScene = errors.New("unknown scene")

// ParseScene decodes a YAML scene description. Unknown keys are rejected.
func ParseScene(data []byte) (*scene.Description, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var desc scene.Description
	if err := decoder.Decode(&desc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scene file is empty")
		}
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return &desc, nil
}

// LoadSceneFile reads and decodes a YAML scene file. A missing name falls back to the file name.
func LoadSceneFile(path string) (*scene.Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	desc, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if desc.Name == "" {
		base := filepath.Base(path)
		desc.Name = base[:len(base)-len(filepath.Ext(base))]
	}
	return desc, nil
}

// WriteScene encodes a scene description as YAML
func WriteScene(w io.Writer, desc *scene.Description) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(desc); err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	return encoder.Close()
}

// ResolveScene finds a scene description by name: the built-in diorama, a
// path to a YAML file, or <name>.yaml inside scenesDir.
func ResolveScene(name, scenesDir string) (*scene.Description, error) {
	if name == "" || name == BuiltinScene {
		return scene.DefaultDiorama(), nil
	}

	candidates := []string{
		name,
		filepath.Join(scenesDir, name+".yaml"),
		filepath.Join(scenesDir, name+".yml"),
	}
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return LoadSceneFile(candidate)
		}
	}

	return nil, fmt.Errorf("unknown scene %q", name)
}

// SceneID validates a client-supplied scene id and returns its canonical form:
// "diorama" or "yaml:<name>". Names may not contain path separators or start with a dot.
func SceneID(id string) (string, error) {
	if id == BuiltinScene {
		return id, nil
	}

	name := strings.TrimPrefix(id, "yaml:")
	name = strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")
	if name == "" || strings.HasPrefix(name, ".") || strings.ContainsAny(name, "/\\:\x00") {
		return "", ErrUnknownScene
	}
	return "yaml:" + name, nil
}

// ResolveSceneID loads a scene by client-supplied id. Only the built-in diorama
// and <name>.yaml or <name>.yml files directly inside scenesDir resolve.
func ResolveSceneID(id, scenesDir string) (*scene.Description, error) {
	canonical, err := SceneID(id)
	if err != nil {
		return nil, err
	}
	if canonical == BuiltinScene {
		return scene.DefaultDiorama(), nil
	}

	name := strings.TrimPrefix(canonical, "yaml:")
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(scenesDir, name+ext)
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return LoadSceneFile(path)
		}
	}

	return nil, ErrUnknownScene
}
