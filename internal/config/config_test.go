package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Output.Dir == "" {
		t.Error("output dir should default to the working directory")
	}
	if !cfg.Output.Color {
		t.Error("color should default on")
	}
}
