// Package config loads the augmentation settings used by the segaug CLI and
// the batch runner. A YAML file (optional) is merged with SEGAUG_* environment
// variables; nested keys use "__" in the environment:
//
//	SEGAUG_SEED=7
//	SEGAUG_AFFINE__ROTATION_MAX=0.3
//	SEGAUG_BATCH__WORKERS=8
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/segaug"
)

// SchemaVersion is the only schema_version this loader accepts.
const SchemaVersion = "v1"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SEGAUG_"

// Mode selects which augmentation the batch runner applies.
type Mode string

const (
	ModeAffine  Mode = "affine"  // random rotation/shear/zoom plus flips
	ModeElastic Mode = "elastic" // smoothed random displacement field
)

// AffineConfig is the "affine" section: sampling ranges for
// segaug.DrawAffineParams and the fill values for uncovered pixels.
type AffineConfig struct {
	RotationMin    float64 `koanf:"rotation_min"` // radians
	RotationMax    float64 `koanf:"rotation_max"`
	ShearMin       float64 `koanf:"shear_min"`
	ShearMax       float64 `koanf:"shear_max"`
	ZoomMin        float64 `koanf:"zoom_min"`
	ZoomMax        float64 `koanf:"zoom_max"`
	RateFlipLR     float64 `koanf:"rate_flip_lr"`
	RateFlipUD     float64 `koanf:"rate_flip_ud"`
	FillValue      float64 `koanf:"fill_value"`
	LabelFillValue float64 `koanf:"label_fill_value"`
}

// Ranges converts a into the library form.
func (a AffineConfig) Ranges() segaug.AffineRanges {
	return segaug.AffineRanges{
		RotationMin:    a.RotationMin, RotationMax: a.RotationMax,
		ShearMin:       a.ShearMin, ShearMax: a.ShearMax,
		ZoomMin:        a.ZoomMin, ZoomMax: a.ZoomMax,
		RateFlipLR:     a.RateFlipLR, RateFlipUD: a.RateFlipUD,
		FillValue:      a.FillValue,
		LabelFillValue: a.LabelFillValue,
	}
}

// ElasticConfig is the "elastic" section.
type ElasticConfig struct {
	Sigma      float64 `koanf:"sigma"`       // smoothing width (elasticity)
	Intensity  float64 `koanf:"intensity"`   // max displacement in pixels
	KernelSize int     `koanf:"kernel_size"` // 0 = 2*ceil(sigma)+1
}

// Params converts e into the library form.
func (e ElasticConfig) Params() segaug.ElasticParams {
	return segaug.ElasticParams{Sigma: e.Sigma, Intensity: e.Intensity, KernelSize: e.KernelSize}
}

// BatchConfig is the "batch" section. It only affects directory runs.
type BatchConfig struct {
	Workers    int `koanf:"workers"`     // concurrent samples
	Copies     int `koanf:"copies"`      // augmented copies per sample
	MaxRedraws int `koanf:"max_redraws"` // retries on a singular draw
}

// Config is the full settings tree as read from YAML and SEGAUG_*
// variables. Call Validate before use; Load does so already.
type Config struct {
	SchemaVersion string        `koanf:"schema_version"`
	Mode          Mode          `koanf:"mode"`
	Seed          uint64        `koanf:"seed"`
	Affine        AffineConfig  `koanf:"affine"`
	Elastic       ElasticConfig `koanf:"elastic"`
	Batch         BatchConfig   `koanf:"batch"`

	LogLevel    string `koanf:"log_level"`
	LogJSON     bool   `koanf:"log_json"`
	MetricsAddr string `koanf:"metrics_addr"` // empty disables /metrics
}

// Default returns the configuration used when nothing is set: identity
// affine ranges, a mild elastic field, one copy per sample.
func Default() Config {
	return Config{
		SchemaVersion: SchemaVersion,
		Mode:          ModeAffine,
		Seed:          1,
		Affine:        AffineConfig{ZoomMin: 1, ZoomMax: 1},
		Elastic:       ElasticConfig{Sigma: 4, Intensity: 8},
		Batch:         BatchConfig{Workers: 4, Copies: 1, MaxRedraws: 3},
		LogLevel:      "info",
	}
}

// ---------------------------------------------------------------------------
// Loader
// ---------------------------------------------------------------------------

// Load merges Default(), the YAML file at path (skipped when path is empty or
// the file does not exist) and SEGAUG_* environment variables, in that order,
// then validates the result.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	// schema version check (only when YAML is present)
	if sv := k.String("schema_version"); sv != "" && sv != SchemaVersion {
		return Config{}, fmt.Errorf("config: schema_version %q (want %s): %w", sv, SchemaVersion, ErrSchemaVersion)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("config: env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.SchemaVersion = SchemaVersion
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// envKey maps SEGAUG_AFFINE__ROTATION_MAX to affine.rotation_max.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// ---------------------------------------------------------------------------
// validation
// ---------------------------------------------------------------------------

// Validate checks the mode, the affine ranges, the elastic parameters and
// the batch sizing. Every failure wraps ErrInvalidConfig and, where one
// exists, the library sentinel as well.
func (c Config) Validate() error {
	if c.Mode != ModeAffine && c.Mode != ModeElastic {
		return fmt.Errorf("config: mode %q (want %s|%s): %w", c.Mode, ModeAffine, ModeElastic, ErrInvalidConfig)
	}
	if err := c.Affine.Ranges().Validate(); err != nil {
		return fmt.Errorf("config: affine: %w: %w", ErrInvalidConfig, err)
	}
	if err := c.Elastic.Params().Validate(); err != nil {
		return fmt.Errorf("config: elastic: %w: %w", ErrInvalidConfig, err)
	}
	if c.Batch.Workers < 1 || c.Batch.Copies < 1 || c.Batch.MaxRedraws < 0 {
		return fmt.Errorf("config: batch workers=%d copies=%d max_redraws=%d: %w",
			c.Batch.Workers, c.Batch.Copies, c.Batch.MaxRedraws, ErrInvalidConfig)
	}

	return nil
}
