package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"gopkg.in/yaml.v3"

	"github.com/targetscope/targetscope/pkg/types"
)

// Load reads a seed document from path, dispatching on the file extension.
// JSON is the native format; YAML is accepted for hand-maintained fixtures.
func Load(path string) (*types.SeedData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(data)
	default:
		return LoadJSON(data)
	}
}

// LoadJSON decodes a JSON seed document. Upstream records come out of an AI
// extraction pipeline and are occasionally truncated or mis-quoted, so the
// raw bytes go through jsonrepair before decoding.
func LoadJSON(data []byte) (*types.SeedData, error) {
	if len(data) == 0 {
		return nil, types.ErrInvalidSeed
	}

	repaired, err := jsonrepair.JSONRepair(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: unrepairable JSON: %v", types.ErrInvalidSeed, err)
	}

	var seed types.SeedData
	if err := json.Unmarshal([]byte(repaired), &seed); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidSeed, err)
	}
	if empty(&seed) {
		return nil, types.ErrInvalidSeed
	}
	return &seed, nil
}

// LoadYAML decodes a YAML seed document.
func LoadYAML(data []byte) (*types.SeedData, error) {
	if len(data) == 0 {
		return nil, types.ErrInvalidSeed
	}

	var seed types.SeedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidSeed, err)
	}
	if empty(&seed) {
		return nil, types.ErrInvalidSeed
	}
	return &seed, nil
}

// empty reports whether the document carries no entities at all, which is
// treated as structurally invalid input rather than a graph with nothing in
// it.
func empty(seed *types.SeedData) bool {
	return len(seed.Diseases) == 0 && len(seed.Proteins) == 0 &&
		len(seed.Associations) == 0 && len(seed.Therapies) == 0 && len(seed.Trials) == 0
}
