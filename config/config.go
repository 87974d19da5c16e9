// Package config loads the recognized configuration options from §3 into a
// concrete Go struct, grounded in bbiangul-go-reason/config.go's
// Config/DefaultConfig() struct-plus-constructor shape, loaded via
// gopkg.in/yaml.v3 the way jackzampolin-shelf's own service configuration
// is loaded.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Region is a normalized [minY, maxY] vertical strip of the page, used for
// the header/footer filter regions.
type Region struct {
	MinY float64 `yaml:"minY"`
	MaxY float64 `yaml:"maxY"`
}

// OCR mirrors the "ocr.*" configuration options (§3): languages and
// vocabulary hints passed to the OCR collaborator.
type OCR struct {
	Languages   []string `yaml:"languages"`
	CustomWords []string `yaml:"customWords"`
}

// Processing mirrors the "processing.*" configuration options (§3): the
// page-filter strips and the merge-distance thresholds/units.
type Processing struct {
	EnableHeaderFooterDetection bool   `yaml:"enableHeaderFooterDetection"`
	PageHeaderRegion            Region `yaml:"pageHeaderRegion"`
	PageFooterRegion            Region `yaml:"pageFooterRegion"`

	MergeDistanceThreshold   float64 `yaml:"mergeDistanceThreshold"`
	HorizontalMergeThreshold float64 `yaml:"horizontalMergeThreshold"`

	IsMergeDistanceNormalized            bool `yaml:"isMergeDistanceNormalized"`
	IsHorizontalMergeThresholdNormalized bool `yaml:"isHorizontalMergeThresholdNormalized"`
}

// FileManagement mirrors the "fileManagement.*" configuration options (§3):
// output-shaping options that affect the Markdown emitter only.
type FileManagement struct {
	AddTableOfContents bool `yaml:"addTableOfContents"`
}

// Config is the root configuration struct recognized by the core.
type Config struct {
	OCR            OCR            `yaml:"ocr"`
	Processing     Processing     `yaml:"processing"`
	FileManagement FileManagement `yaml:"fileManagement"`

	// Reasoning is a currently-no-op field the CLI's --enable-llm flag
	// forwards to, naming the option for forward compatibility without
	// the core consuming it (§6 CLI surface).
	Reasoning bool `yaml:"reasoning"`
}

// Default returns the configuration the core uses when no file is
// supplied: header/footer detection off, and the §4.2 merge-policy
// defaults (0.15 same-line, 0.02 side-by-side, both normalized).
func Default() Config {
	return Config{
		OCR: OCR{
			Languages: []string{"eng"},
		},
		Processing: Processing{
			EnableHeaderFooterDetection:          false,
			PageHeaderRegion:                     Region{MinY: 0.92, MaxY: 1.0},
			PageFooterRegion:                     Region{MinY: 0.0, MaxY: 0.08},
			MergeDistanceThreshold:               0.02,
			HorizontalMergeThreshold:             0.15,
			IsMergeDistanceNormalized:            true,
			IsHorizontalMergeThresholdNormalized: true,
		},
	}
}

// Load reads and parses a YAML configuration file at path, starting from
// Default() so unset fields keep their defaults rather than zeroing out.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
