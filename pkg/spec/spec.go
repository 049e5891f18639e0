package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the spec file looked up inside a project directory.
const FileName = "wheel.yaml"

// Load reads a wheel spec from a YAML file.
func Load(path string) (*WheelSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a wheel spec from YAML bytes.
func Parse(data []byte) (*WheelSpec, error) {
	var spec WheelSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}
	return &spec, nil
}

// LoadProject loads a wheel spec from a project directory.
// It looks for wheel.yaml in the given directory.
func LoadProject(projectDir string) (*WheelSpec, error) {
	specPath := filepath.Join(projectDir, FileName)
	return Load(specPath)
}
