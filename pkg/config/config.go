package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultConfigPath = "config/icons.json"
	defaultOutputDir  = "Assets.xcassets/AppIcon.appiconset"
)

// Config controls where the icon set is written and which extras come
// along with it. All fields are optional; zero values mean defaults.
type Config struct {
	OutputDir    string `json:"output_dir"`
	SkipManifest bool   `json:"skip_manifest"`
	WriteSVG     bool   `json:"write_svg"`
}

func Default() Config {
	return Config{OutputDir: defaultOutputDir}
}

// ResolvePath picks the config file location, preferring the environment
// override so CI and local runs can point at different destinations.
func ResolvePath() string {
	if fromEnv := os.Getenv("SCREENTIME_ICONS_CONFIG"); fromEnv != "" {
		return fromEnv
	}
	return DefaultConfigPath
}

// Load reads the config file at path. A missing file is not an error:
// the tool runs on defaults alone.
func Load(path string) (Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return Default(), err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = defaultOutputDir
	}
}

func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	return nil
}

// MasterSVGPath is where the master SVG lands: next to the appiconset
// directory, not inside it, so Xcode does not pick it up as an icon.
func (c Config) MasterSVGPath() string {
	return filepath.Join(filepath.Dir(c.OutputDir), "app-icon.svg")
}
