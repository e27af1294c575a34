package main

import (
	"flag"
	"log"
	"os"

	"github.com/rhpo/angryclones"
)

var (
	configPath = flag.String("config", "", "Path to a YAML config file (defaults to the embedded config)")
	mute       = flag.Bool("mute", false, "Disable sound effects")
	startLevel = flag.Int("level", -1, "Screen to start on: 0 title, 1..N levels")
	seed       = flag.Int64("seed", 0, "Random seed for ball colors and broken crates (0 picks one)")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	if *mute {
		cfg.Audio.Enabled = false
	}
	if *startLevel >= 0 {
		cfg.Play.StartLevel = *startLevel
	}
	cfg.Seed = *seed

	game, err := angryclones.NewGame(cfg, angryclones.Assets)
	if err != nil {
		log.Fatalf("[Main] Failed to start: %v", err)
	}

	if err := game.Run(); err != nil {
		log.Fatalf("[Main] %v", err)
	}

	os.Exit(game.ExitCode())
}

func loadConfig() (*angryclones.Config, error) {
	if *configPath != "" {
		return angryclones.LoadConfigFile(*configPath)
	}
	return angryclones.LoadConfig(angryclones.Assets, angryclones.DefaultConfigPath)
}
