package rubric

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a rubric override from a YAML file. Keys absent from the
// file keep their Default() values, so a file may override just the filler
// list or just the weights.
func LoadFile(path string) (Rubric, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Rubric{}, fmt.Errorf("read rubric: %w", err)
	}
	r := Default()
	if err := yaml.Unmarshal(b, &r); err != nil {
		return Rubric{}, fmt.Errorf("parse rubric %s: %w", path, err)
	}
	if err := r.Validate(); err != nil {
		return Rubric{}, fmt.Errorf("rubric %s: %w", path, err)
	}
	return r, nil
}
