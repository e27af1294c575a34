package angryclones

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// SnakeSpec places one snake, by body center in world pixels.
type SnakeSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (s SnakeSpec) Position() Vector2 { return Vector2{X: s.X, Y: s.Y} }

// CrateSpec places one crate, by body center in world pixels.
type CrateSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	TNT    bool    `yaml:"tnt"`
	Broken bool    `yaml:"broken"`
}

func (c CrateSpec) Position() Vector2 { return Vector2{X: c.X, Y: c.Y} }

// LevelProfile is the initial layout of a level. It is immutable once built.
type LevelProfile struct {
	name      string
	timeLimit int
	snakes    []SnakeSpec
	crates    []CrateSpec
}

type levelProfileFile struct {
	Name      string      `yaml:"name"`
	TimeLimit int         `yaml:"timeLimit"`
	Snakes    []SnakeSpec `yaml:"snakes"`
	Crates    []CrateSpec `yaml:"crates"`
}

func EmptyLevelProfile() *LevelProfile {
	return &LevelProfile{}
}

// NewLevelProfile copies snakes and crates into a new profile.
// timeLimit is in seconds; zero means untimed.
func NewLevelProfile(name string, timeLimit int, snakes []SnakeSpec, crates []CrateSpec) (*LevelProfile, error) {
	p := &LevelProfile{
		name:      name,
		timeLimit: timeLimit,
		snakes:    append([]SnakeSpec(nil), snakes...),
		crates:    append([]CrateSpec(nil), crates...),
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadLevelProfile reads a YAML level profile from fsys.
func LoadLevelProfile(fsys fs.FS, path string) (*LevelProfile, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level profile %s: %w", path, err)
	}

	var file levelProfileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse level profile YAML from %s: %w", path, err)
	}

	p, err := NewLevelProfile(file.Name, file.TimeLimit, file.Snakes, file.Crates)
	if err != nil {
		return nil, fmt.Errorf("invalid level profile in %s: %w", path, err)
	}
	return p, nil
}

func (p *LevelProfile) validate() error {
	if p.timeLimit < 0 {
		return fmt.Errorf("timeLimit must not be negative, got %d", p.timeLimit)
	}
	for i, s := range p.snakes {
		if !s.Position().IsFinite() {
			return fmt.Errorf("snake %d: position is not finite", i)
		}
	}
	for i, c := range p.crates {
		if !c.Position().IsFinite() {
			return fmt.Errorf("crate %d: position is not finite", i)
		}
		if c.TNT && c.Broken {
			return errors.New("TNT crates cannot start broken")
		}
	}
	return nil
}

func (p *LevelProfile) Name() string { return p.name }

// TimeLimit is the time attack limit in seconds, zero when untimed.
func (p *LevelProfile) TimeLimit() int { return p.timeLimit }

func (p *LevelProfile) Snakes() []SnakeSpec {
	return append([]SnakeSpec(nil), p.snakes...)
}

func (p *LevelProfile) Crates() []CrateSpec {
	return append([]CrateSpec(nil), p.crates...)
}
