package angryclones

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}
}

func TestLoadEmbeddedConfig(t *testing.T) {
	cfg, err := LoadConfig(Assets, DefaultConfigPath)
	if err != nil {
		t.Fatalf("Failed to load embedded config: %v", err)
	}

	def := DefaultConfig()
	if cfg.Window != def.Window {
		t.Errorf("Expected window %+v, got %+v", def.Window, cfg.Window)
	}
	if cfg.Play.GroundY != def.Play.GroundY {
		t.Errorf("Expected groundY %v, got %v", def.Play.GroundY, cfg.Play.GroundY)
	}
	if len(cfg.Levels) != 3 {
		t.Errorf("Expected 3 levels, got %d", len(cfg.Levels))
	}
}

func TestParseConfigKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("window:\n  tps: 60\n"), "inline")
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if cfg.Window.TPS != 60 {
		t.Errorf("Expected tps 60, got %d", cfg.Window.TPS)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 600 {
		t.Errorf("Expected default window size, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Physics.Gravity != -300 {
		t.Errorf("Expected default gravity, got %v", cfg.Physics.Gravity)
	}
}

func TestParseConfigRestoresZeroedFields(t *testing.T) {
	cfg, err := ParseConfig([]byte("window:\n  tps: 0\nimageDir: \"\"\n"), "inline")
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Window.TPS != 30 {
		t.Errorf("Expected tps restored to 30, got %d", cfg.Window.TPS)
	}
	if cfg.ImageDir != "assets/images" {
		t.Errorf("Expected image dir restored, got %q", cfg.ImageDir)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad yaml", "window: [", "failed to parse"},
		{"negative width", "window:\n  width: -1\n", "window size"},
		{"no levels", "levels: []\n", "at least one level"},
		{"start level too far", "play:\n  startLevel: 9\n", "startLevel"},
		{"loud volume", "audio:\n  masterVolume: 2\n", "volumes"},
		{"ground outside window", "play:\n  groundY: 700\n", "groundY"},
		{"negative impulse", "ball:\n  fireImpulse: -1\n", "fireImpulse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml), "inline")
			if err == nil {
				t.Fatal("Expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(Assets, "data/missing.yaml"); err == nil {
		t.Error("Expected an error for a missing config file")
	}
	if _, err := LoadConfigFile("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected an error for a missing config file on disk")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "title: Test Clones\nplay:\n  startLevel: 2\n  titleTicks: 15\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}
	if cfg.Title != "Test Clones" || cfg.Play.StartLevel != 2 || cfg.Play.TitleTicks != 15 {
		t.Errorf("Expected overrides to apply, got %q start=%d title=%d", cfg.Title, cfg.Play.StartLevel, cfg.Play.TitleTicks)
	}
	if cfg.Play.ToxicHeight != 110 {
		t.Errorf("Expected default toxic height, got %v", cfg.Play.ToxicHeight)
	}
}

func TestOutroTicks(t *testing.T) {
	tests := []struct {
		message, complete int
		wantMessage       int
		wantHold          int
	}{
		{30, 70, 30, 40},
		{0, 70, 1, 69},
		{30, 10, 30, 1},
		{0, 0, 1, 1},
	}
	for _, tt := range tests {
		p := PlayConfig{MessageTicks: tt.message, CompleteTicks: tt.complete}
		message, hold := p.OutroTicks()
		if message != tt.wantMessage || hold != tt.wantHold {
			t.Errorf("OutroTicks(%d, %d): expected (%d, %d), got (%d, %d)",
				tt.message, tt.complete, tt.wantMessage, tt.wantHold, message, hold)
		}
	}
}
