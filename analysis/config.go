// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultFrameLengthMs         = 20
	defaultNoiseFloorPower       = 40000.0
	defaultNormalizationFraction = 0.75
)

// Config holds the analysis thresholds. The silence threshold and the
// saturation counting were tuned against the defaults, so change them only
// together with whatever consumes the report.
type Config struct {
	// FrameLengthMs is the analysis window.
	FrameLengthMs int `yaml:"frame_length_ms" json:"frame_length_ms"`
	// NoiseFloorPower is compared against the mean first-difference power of
	// a frame, in the linear domain.
	NoiseFloorPower float64 `yaml:"noise_floor_power" json:"noise_floor_power"`
	// NormalizationFraction is the leading share of the recording used for
	// saturation, sample extremes and DC offset.
	NormalizationFraction float64 `yaml:"normalization_fraction" json:"normalization_fraction"`
}

func DefaultConfig() Config {
	return Config{
		FrameLengthMs:         defaultFrameLengthMs,
		NoiseFloorPower:       defaultNoiseFloorPower,
		NormalizationFraction: defaultNormalizationFraction,
	}
}

func (c Config) Validate() error {
	if c.FrameLengthMs <= 0 {
		return fmt.Errorf("%w: frame_length_ms must be positive, got %d", ErrInvalidConfig, c.FrameLengthMs)
	}

	if c.NoiseFloorPower < 0 {
		return fmt.Errorf("%w: noise_floor_power must not be negative, got %v", ErrInvalidConfig, c.NoiseFloorPower)
	}

	if c.NormalizationFraction < 0 || c.NormalizationFraction > 1 {
		return fmt.Errorf("%w: normalization_fraction must be in [0,1], got %v", ErrInvalidConfig, c.NormalizationFraction)
	}

	return nil
}

type yamlConfig struct {
	Analysis struct {
		FrameLengthMs         *int     `yaml:"frame_length_ms"`
		NoiseFloorPower       *float64 `yaml:"noise_floor_power"`
		NormalizationFraction *float64 `yaml:"normalization_fraction"`
	} `yaml:"analysis"`
}

// LoadConfig reads a YAML file. Keys left out keep their default value.
//
//	analysis:
//	  frame_length_ms: 20
//	  noise_floor_power: 40000
//	  normalization_fraction: 0.75
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig is LoadConfig over an in-memory document.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yc.Analysis.FrameLengthMs != nil {
		cfg.FrameLengthMs = *yc.Analysis.FrameLengthMs
	}

	if yc.Analysis.NoiseFloorPower != nil {
		cfg.NoiseFloorPower = *yc.Analysis.NoiseFloorPower
	}

	if yc.Analysis.NormalizationFraction != nil {
		cfg.NormalizationFraction = *yc.Analysis.NormalizationFraction
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
