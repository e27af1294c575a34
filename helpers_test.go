package angryclones

import (
	"testing"
)

// testConfig is the shipped config with sound off and a fixed seed.
func testConfig(t *testing.T) *Config {
	t.Helper()

	cfg, err := LoadConfig(Assets, DefaultConfigPath)
	if err != nil {
		t.Fatalf("Failed to load embedded config: %v", err)
	}
	cfg.Audio.Enabled = false
	cfg.Seed = 1
	return cfg
}

func newTestGame(t *testing.T, cfg *Config) *Game {
	t.Helper()

	if cfg == nil {
		cfg = testConfig(t)
	}
	g, err := NewGame(cfg, Assets)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g
}

func newTestImages(t *testing.T) *ImageCache {
	t.Helper()

	images := NewImageCache(Assets, DefaultConfig().ImageDir)
	if err := images.Preload(AllImages...); err != nil {
		t.Fatalf("Failed to preload images: %v", err)
	}
	return images
}

func newTestWorld() *World {
	return NewWorld(WorldPropsFromConfig(DefaultConfig()))
}

func mustProfile(t *testing.T, timeLimit int, snakes []SnakeSpec, crates []CrateSpec) *LevelProfile {
	t.Helper()

	p, err := NewLevelProfile("test", timeLimit, snakes, crates)
	if err != nil {
		t.Fatalf("NewLevelProfile failed: %v", err)
	}
	return p
}

// countEvents counts every emission of event on g.
func countEvents(g *Game, event EventType) *int {
	n := new(int)
	g.Events.On(event, func(interface{}) { *n++ })
	return n
}
