package angryclones

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the config file inside the embedded data FS.
const DefaultConfigPath = "data/config.yaml"

// Config holds everything tunable about the game.
type Config struct {
	Title   string        `yaml:"title"`
	Window  WindowConfig  `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Ball    BallConfig    `yaml:"ball"`
	Play    PlayConfig    `yaml:"play"`
	Audio   AudioConfig   `yaml:"audio"`

	// ImageDir is the directory holding the images inside the asset FS.
	ImageDir string `yaml:"imageDir"`
	// SoundDir is the directory holding the sound effects inside the asset FS.
	SoundDir string `yaml:"soundDir"`
	// Levels lists the level profile files in play order.
	Levels []string `yaml:"levels"`

	// Seed fixes the random source when non-zero. Not read from YAML.
	Seed int64 `yaml:"-"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`
	PixelsPerMeter     float64 `yaml:"pixelsPerMeter"`
	VelocityIterations int     `yaml:"velocityIterations"`
	PositionIterations int     `yaml:"positionIterations"`
	// BreakImpulse is the contact impulse, in pixel units, that breaks a crate.
	BreakImpulse float64 `yaml:"breakImpulse"`
	// SettleTicks is how long impulses are ignored after a level starts.
	SettleTicks int `yaml:"settleTicks"`
}

type BallConfig struct {
	Spawn       Vector2 `yaml:"spawn"`
	FireImpulse float64 `yaml:"fireImpulse"`
}

type PlayConfig struct {
	// ToxicHeight is the puddle level; a snake below it plus its sprite width dies.
	ToxicHeight   float64 `yaml:"toxicHeight"`
	GroundY       float64 `yaml:"groundY"`
	RampStart     Vector2 `yaml:"rampStart"`
	RampEndX      float64 `yaml:"rampEndX"`
	RampY         float64 `yaml:"rampY"`
	MessageTicks  int     `yaml:"messageTicks"`
	CompleteTicks int     `yaml:"completeTicks"`
	// TitleTicks auto-advances the title screen; zero waits for the advance key.
	TitleTicks int `yaml:"titleTicks"`
	StartLevel int `yaml:"startLevel"`
}

type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"masterVolume"`
	SoundVolume  float64 `yaml:"soundVolume"`
}

// OutroTicks splits CompleteTicks into the first message and the hold on the
// second, each lasting at least one tick.
func (p PlayConfig) OutroTicks() (message, hold int) {
	message = max(p.MessageTicks, 1)
	hold = max(p.CompleteTicks-message, 1)
	return message, hold
}

// DefaultConfig returns the stock game settings.
func DefaultConfig() *Config {
	return &Config{
		Title: "Angry Clones",
		Window: WindowConfig{
			Width:  1024,
			Height: 600,
			TPS:    30,
		},
		Physics: PhysicsConfig{
			Gravity:            -300,
			PixelsPerMeter:     50,
			VelocityIterations: 6,
			PositionIterations: 3,
			BreakImpulse:       600,
			SettleTicks:        30,
		},
		Ball: BallConfig{
			Spawn:       Vector2{X: 30, Y: 131},
			FireImpulse: 2300.0 / 3,
		},
		Play: PlayConfig{
			ToxicHeight:   110,
			GroundY:       100,
			RampStart:     Vector2{X: 60, Y: 110},
			RampEndX:      250,
			RampY:         100,
			MessageTicks:  30,
			CompleteTicks: 70,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 1.0,
			SoundVolume:  0.8,
		},
		ImageDir: "assets/images",
		SoundDir: "assets/sounds",
		Levels: []string{
			"data/levels/level_1.yaml",
			"data/levels/level_2.yaml",
			"data/levels/level_3.yaml",
		},
	}
}

// LoadConfig reads a YAML config from fsys. Missing fields keep their defaults.
func LoadConfig(fsys fs.FS, path string) (*Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// LoadConfigFile reads a YAML config from the local filesystem.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte, source string) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML from %s: %w", source, err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", source, err)
	}
	return cfg, nil
}

// applyDefaults fills fields that YAML explicitly zeroed where zero makes no sense.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.Window.TPS == 0 {
		cfg.Window.TPS = def.Window.TPS
	}
	if cfg.Physics.PixelsPerMeter == 0 {
		cfg.Physics.PixelsPerMeter = def.Physics.PixelsPerMeter
	}
	if cfg.Physics.VelocityIterations == 0 {
		cfg.Physics.VelocityIterations = def.Physics.VelocityIterations
	}
	if cfg.Physics.PositionIterations == 0 {
		cfg.Physics.PositionIterations = def.Physics.PositionIterations
	}
	if cfg.ImageDir == "" {
		cfg.ImageDir = def.ImageDir
	}
	if cfg.SoundDir == "" {
		cfg.SoundDir = def.SoundDir
	}
}

// Validate reports the first problem found in cfg.
func (cfg *Config) Validate() error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", cfg.Window.TPS)
	}
	if cfg.Physics.PixelsPerMeter <= 0 {
		return fmt.Errorf("pixelsPerMeter must be positive, got %v", cfg.Physics.PixelsPerMeter)
	}
	if math.IsNaN(cfg.Physics.Gravity) || math.IsInf(cfg.Physics.Gravity, 0) {
		return errors.New("gravity must be finite")
	}
	if cfg.Ball.FireImpulse < 0 {
		return fmt.Errorf("fireImpulse must not be negative, got %v", cfg.Ball.FireImpulse)
	}
	if cfg.Play.GroundY < 0 || cfg.Play.GroundY >= float64(cfg.Window.Height) {
		return fmt.Errorf("groundY must be within the window, got %v", cfg.Play.GroundY)
	}
	if !cfg.Ball.Spawn.IsFinite() || !cfg.Play.RampStart.IsFinite() {
		return errors.New("spawn and ramp positions must be finite")
	}
	if cfg.Play.MessageTicks < 0 || cfg.Play.CompleteTicks < 0 || cfg.Play.TitleTicks < 0 {
		return errors.New("tick durations must not be negative")
	}
	if cfg.Audio.MasterVolume < 0 || cfg.Audio.MasterVolume > 1 ||
		cfg.Audio.SoundVolume < 0 || cfg.Audio.SoundVolume > 1 {
		return errors.New("volumes must be within 0.0 ~ 1.0")
	}
	if len(cfg.Levels) == 0 {
		return errors.New("at least one level is required")
	}
	// title, levels, game complete
	if cfg.Play.StartLevel < 0 || cfg.Play.StartLevel > len(cfg.Levels)+1 {
		return fmt.Errorf("startLevel %d out of range 0..%d", cfg.Play.StartLevel, len(cfg.Levels)+1)
	}
	return nil
}

// ScreenSize returns the window size as a vector.
func (cfg *Config) ScreenSize() Vector2 {
	return Vector2{X: float64(cfg.Window.Width), Y: float64(cfg.Window.Height)}
}
