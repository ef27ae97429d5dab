// Package config's dispatch-threshold loader: an optional YAML file layered
// under the environment-variable configuration, letting a deployment tune
// per-platform SIMD/GPU cutover points without rebuilding.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/certen/poh-verifier/pkg/dispatch"
)

// DispatchThresholds overrides the backend-selection length floors pkg/dispatch
// applies. Zero fields are left at their pkg/dispatch defaults.
type DispatchThresholds struct {
	MinGPUSliceLen    int `yaml:"min_gpu_slice_len"`
	MinAVX512SliceLen int `yaml:"min_avx512_slice_len"`
	MinAVX2SliceLen   int `yaml:"min_avx2_slice_len"`
}

// LoadDispatchThresholds reads and parses a dispatch-thresholds YAML file.
// A missing file is not an error: it returns the zero value, meaning "use
// pkg/dispatch's built-in defaults".
func LoadDispatchThresholds(path string) (DispatchThresholds, error) {
	var out DispatchThresholds
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return out, fmt.Errorf("config: reading dispatch thresholds %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("config: parsing dispatch thresholds %q: %w", path, err)
	}
	return out, nil
}

// ToDispatchConfig converts the parsed overrides into a pkg/dispatch.Config.
func (t DispatchThresholds) ToDispatchConfig() dispatch.Config {
	return dispatch.Config{
		MinGPUSliceLen:    t.MinGPUSliceLen,
		MinAVX512SliceLen: t.MinAVX512SliceLen,
		MinAVX2SliceLen:   t.MinAVX2SliceLen,
	}
}
