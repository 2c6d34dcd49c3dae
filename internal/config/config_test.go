package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if *cfg != *Default() {
		t.Errorf("expected defaults %+v, got %+v", *Default(), *cfg)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `
log:
  mode: release
render:
  quality: 80
  background: "#000"
watch:
  debounce: 1s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Log.Mode != "release" {
		t.Errorf("expected release mode, got %s", cfg.Log.Mode)
	}
	if cfg.Render.Quality != 80 {
		t.Errorf("expected quality 80, got %d", cfg.Render.Quality)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("expected 1s debounce, got %v", cfg.Watch.Debounce)
	}
	if cfg.BackgroundColor() != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("expected black background, got %v", cfg.BackgroundColor())
	}

	// Unset keys keep their defaults
	if cfg.Output.Suffix != "-medidas" {
		t.Errorf("expected default suffix, got %s", cfg.Output.Suffix)
	}
	if cfg.GUI.Width != 1200 || cfg.GUI.Height != 800 {
		t.Errorf("expected default window size, got %dx%d", cfg.GUI.Width, cfg.GUI.Height)
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := map[string]string{
		"quality":    "render:\n  quality: 150\n",
		"background": "render:\n  background: nope\n",
	}

	for name, content := range tests {
		path := filepath.Join(dir, name+".yaml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit file")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.RGBA
		ok       bool
	}{
		{"#FFFFFF", color.RGBA{255, 255, 255, 255}, true},
		{"#fff", color.RGBA{255, 255, 255, 255}, true},
		{"00ff80", color.RGBA{0, 255, 128, 255}, true},
		{"#12345", color.RGBA{}, false},
		{"#GGGGGG", color.RGBA{}, false},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.input)
		if (err == nil) != tt.ok {
			t.Errorf("ParseHexColor(%q): unexpected error state %v", tt.input, err)
			continue
		}
		if tt.ok && got != tt.expected {
			t.Errorf("ParseHexColor(%q): expected %v, got %v", tt.input, tt.expected, got)
		}
	}
}
