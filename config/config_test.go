package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.LOD.Resolver != ResolverLinear {
		t.Errorf("expected linear resolver, got %q", cfg.LOD.Resolver)
	}
	if cfg.LOD.Bias != -4 {
		t.Errorf("expected default bias -4, got %d", cfg.LOD.Bias)
	}
	if cfg.LOD.Threshold != 1.0 {
		t.Errorf("expected threshold 1.0, got %f", cfg.LOD.Threshold)
	}
	if cfg.Scene.Levels != 7 {
		t.Errorf("expected 7 levels, got %d", cfg.Scene.Levels)
	}
	if cfg.Derived.ObjectCount != cfg.Scene.Columns*cfg.Scene.Rows {
		t.Errorf("derived object count %d does not match grid", cfg.Derived.ObjectCount)
	}
	if cfg.Derived.DriftEvery != 10 {
		t.Errorf("expected every 10th object to drift, got %d", cfg.Derived.DriftEvery)
	}
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "lod:\n  bias: 2\n  resolver: bands\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading override: %v", err)
	}
	if cfg.LOD.Bias != 2 {
		t.Errorf("expected bias 2, got %d", cfg.LOD.Bias)
	}
	if cfg.LOD.Resolver != ResolverBands {
		t.Errorf("expected bands resolver, got %q", cfg.LOD.Resolver)
	}
	// Untouched fields keep their defaults
	if cfg.LOD.Step != 4.0 {
		t.Errorf("expected default step 4.0, got %f", cfg.LOD.Step)
	}
	if len(cfg.LOD.Bands) == 0 {
		t.Error("expected default bands to survive the merge")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown resolver", "lod:\n  resolver: cubic\n", "unknown lod.resolver"},
		{"zero step", "lod:\n  step: 0\n", "lod.step"},
		{"negative threshold", "lod:\n  threshold: -1\n", "lod.threshold"},
		{"no levels", "scene:\n  levels: 0\n", "scene.levels"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.LOD.Bias = 3

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing yaml: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading: %v", err)
	}
	if reloaded.LOD.Bias != 3 {
		t.Errorf("expected bias 3 after reload, got %d", reloaded.LOD.Bias)
	}
}
