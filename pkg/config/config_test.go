package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v; want defaults %+v", cfg, Default())
	}
	if cfg.OutputDir != "Assets.xcassets/AppIcon.appiconset" {
		t.Errorf("default OutputDir = %q", cfg.OutputDir)
	}
	if cfg.SkipManifest || cfg.WriteSVG {
		t.Errorf("defaults should write the manifest and skip the SVG: %+v", cfg)
	}
}

func TestLoadAppliesFieldDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.json")
	if err := os.WriteFile(path, []byte(`{"write_svg": true}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.WriteSVG {
		t.Error("write_svg not honored")
	}
	if cfg.OutputDir != Default().OutputDir {
		t.Errorf("OutputDir = %q; want default", cfg.OutputDir)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load on malformed JSON succeeded; want error")
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv("SCREENTIME_ICONS_CONFIG", "")
	if got := ResolvePath(); got != DefaultConfigPath {
		t.Errorf("ResolvePath() = %q; want %q", got, DefaultConfigPath)
	}

	t.Setenv("SCREENTIME_ICONS_CONFIG", "elsewhere/icons.json")
	if got := ResolvePath(); got != "elsewhere/icons.json" {
		t.Errorf("ResolvePath() with env = %q", got)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	cfg.OutputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty output_dir passed validation")
	}
}

func TestMasterSVGPath(t *testing.T) {
	tests := []struct {
		outDir string
		want   string
	}{
		{"Assets.xcassets/AppIcon.appiconset", filepath.Join("Assets.xcassets", "app-icon.svg")},
		{"out", "app-icon.svg"},
	}
	for _, test := range tests {
		cfg := Config{OutputDir: test.outDir}
		if got := cfg.MasterSVGPath(); got != test.want {
			t.Errorf("MasterSVGPath(%q) = %q; want %q", test.outDir, got, test.want)
		}
	}
}
