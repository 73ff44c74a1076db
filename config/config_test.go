package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Height <= 0 || cfg.Output.Width <= 0 || cfg.Output.Channels <= 0 {
		t.Errorf("defaults carry an invalid output shape: %+v", cfg.Output)
	}
	if cfg.Worms.Behavior == "" {
		t.Error("defaults should name a worm behavior")
	}
	if cfg.Basis.Octaves <= 0 {
		t.Error("defaults should set basis octaves")
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	userYAML := []byte("output:\n  height: 128\n  width: 128\nworms:\n  behavior: chaotic\n")
	if err := os.WriteFile(path, userYAML, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Height != 128 || cfg.Output.Width != 128 {
		t.Errorf("user shape not applied: %+v", cfg.Output)
	}
	if cfg.Worms.Behavior != "chaotic" {
		t.Errorf("user behavior not applied: %q", cfg.Worms.Behavior)
	}
	// Untouched sections keep their defaults.
	if cfg.Output.Channels <= 0 || cfg.Basis.Octaves <= 0 {
		t.Error("defaults should survive a partial user file")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad shape", "output:\n  height: -1\n"},
		{"bad octaves", "basis:\n  octaves: 0\n"},
		{"negative density", "worms:\n  density: -2\n"},
		{"garbage", "output: [not, a, mapping]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("invalid config should fail to load")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing config file should fail")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *cfg {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}
