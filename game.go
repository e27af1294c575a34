package angryclones

import (
	"fmt"
	"io/fs"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Screen is a controller for one phase of the game.
type Screen interface {
	HandleEvent(e Event)
	Calculate()
	Display(screen *ebiten.Image)
}

// ScreenFactory builds a fresh screen each time the game moves to it.
type ScreenFactory func(g *Game) (Screen, error)

// Game owns the window, the clock and the active screen, and moves between
// screens: title, each level in turn, then game complete.
type Game struct {
	Config *Config
	Assets fs.FS
	Images *ImageCache
	Font   *text.GoTextFaceSource
	Audio  *AudioManager
	Events *EventEmitter
	Clock  *Clock
	Rand   *rand.Rand

	profiles []*LevelProfile
	screens  []ScreenFactory

	currentNumber int
	current       Screen
	pending       *int

	input InputPoller

	over     bool
	exitCode int

	startFrame int64
	started    bool
}

// NewGame loads every asset and level the game needs, so that a missing file
// stops the game before a window opens.
func NewGame(cfg *Config, assets fs.FS) (*Game, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	images := NewImageCache(assets, cfg.ImageDir)
	if err := images.Preload(AllImages...); err != nil {
		return nil, err
	}

	font, err := DefaultFontSource()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		Config: cfg,
		Assets: assets,
		Images: images,
		Font:   font,
		Events: NewEventEmitter(),
		Clock:  NewClock(cfg.Window.TPS),
		Rand:   rand.New(rand.NewSource(seed)),
	}

	for _, path := range cfg.Levels {
		profile, err := LoadLevelProfile(assets, path)
		if err != nil {
			return nil, err
		}
		g.profiles = append(g.profiles, profile)
	}

	if cfg.Audio.Enabled {
		g.Audio = NewAudioManager(&AudioProps{
			MasterVolume: cfg.Audio.MasterVolume,
			SoundVolume:  cfg.Audio.SoundVolume,
		})
		if err := g.Audio.LoadSounds(assets, cfg.SoundDir, SoundFire, SoundCrash, SoundSnake, SoundWin, SoundFail); err != nil {
			return nil, err
		}
	}

	g.screens = g.loadScreens()
	g.wireEvents()

	if err := g.switchTo(cfg.Play.StartLevel); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) loadScreens() []ScreenFactory {
	screens := []ScreenFactory{NewTitleScreen}
	for i, profile := range g.profiles {
		screens = append(screens, LevelFactory(i+1, profile))
	}
	return append(screens, NewGameComplete)
}

func (g *Game) wireEvents() {
	g.Events.On(EventFire, func(interface{}) {
		g.playSound(SoundFire)
	})
	g.Events.On(EventCrateBroken, func(interface{}) {
		g.playSound(SoundCrash)
	})
	g.Events.On(EventSnakeKilled, func(data interface{}) {
		if d, ok := data.(EventSnakeKilledData); ok {
			log.Printf("[Level %d] Snake killed, %d remaining", d.Level, d.Remaining)
		}
		g.playSound(SoundSnake)
	})
	g.Events.On(EventLevelComplete, func(data interface{}) {
		if d, ok := data.(EventLevelData); ok {
			log.Printf("[Level %d] Complete", d.Level)
		}
		g.playSound(SoundWin)
	})
	g.Events.On(EventLevelFailed, func(data interface{}) {
		if d, ok := data.(EventLevelData); ok {
			log.Printf("[Level %d] Out of time", d.Level)
		}
		g.playSound(SoundFail)
	})
	g.Events.On(EventGameComplete, func(data interface{}) {
		if d, ok := data.(EventGameCompleteData); ok {
			log.Printf("[Game] Completed in %d seconds", d.Seconds)
		}
	})
}

func (g *Game) playSound(name string) {
	if g.Audio == nil {
		return
	}
	if err := g.Audio.PlaySound(name); err != nil {
		log.Printf("[Game] Warning: failed to play sound %s: %v", name, err)
	}
}

func (g *Game) switchTo(number int) error {
	if number < 0 || number >= len(g.screens) {
		return fmt.Errorf("screen %d out of range 0..%d", number, len(g.screens)-1)
	}

	screen, err := g.screens[number](g)
	if err != nil {
		return fmt.Errorf("failed to build screen %d: %w", number, err)
	}

	g.current = screen
	g.currentNumber = number
	g.input.Reset()
	log.Printf("[Game] Entered screen %d", number)
	return nil
}

func (g *Game) applyPending() {
	if g.pending == nil || g.over {
		return
	}
	number := *g.pending
	g.pending = nil

	if err := g.switchTo(number); err != nil {
		log.Printf("[Game] Error: %v", err)
		g.Exit(1)
	}
}

// Step runs one frame: events, then the current screen's calculate step.
// It returns ebiten.Termination once the game is over.
func (g *Game) Step(events []Event) error {
	g.applyPending()

	for _, e := range events {
		if g.over {
			break
		}
		g.current.HandleEvent(e)
	}

	g.applyPending()

	if !g.over {
		g.current.Calculate()
	}

	g.Clock.Tick()

	if g.over {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Update() error {
	if g.Audio != nil {
		g.Audio.Update()
	}
	return g.Step(g.input.Poll())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Display(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.Config.Window.Width, g.Config.Window.Height
}

func (g *Game) Run() error {
	ebiten.SetWindowSize(g.Config.Window.Width, g.Config.Window.Height)
	ebiten.SetWindowTitle(g.Config.Title)
	ebiten.SetTPS(g.Config.Window.TPS)
	ebiten.SetWindowClosingHandled(true)

	defer func() {
		if g.Audio != nil {
			g.Audio.Cleanup()
		}
	}()

	return ebiten.RunGame(g)
}

// HandleQuit exits on a window close request or the quit key.
func (g *Game) HandleQuit(e Event) {
	if e.Type == EventQuit || e.IsKeyDown(KeyQuit) {
		g.Exit(0)
	}
}

// GoToNextLevel schedules the next screen. Past the last screen the game is complete.
func (g *Game) GoToNextLevel() {
	next := g.currentNumber + 1
	if next < len(g.screens) {
		g.pending = &next
		return
	}
	g.CompleteGame()
}

// RestartLevel rebuilds the current screen from scratch.
func (g *Game) RestartLevel() {
	number := g.currentNumber
	g.pending = &number
}

func (g *Game) CompleteGame() {
	if g.over {
		return
	}
	log.Printf("[Game] Game Complete!")
	g.Exit(0)
}

func (g *Game) Exit(code int) {
	if g.over {
		return
	}
	g.over = true
	g.exitCode = code
}

func (g *Game) Over() bool {
	return g.over
}

func (g *Game) ExitCode() int {
	return g.exitCode
}

func (g *Game) CurrentLevelNumber() int {
	return g.currentNumber
}

func (g *Game) CurrentScreen() Screen {
	return g.current
}

// ScreenCount is the number of screens, title and game complete included.
func (g *Game) ScreenCount() int {
	return len(g.screens)
}

func (g *Game) ScreenSize() Vector2 {
	return g.Config.ScreenSize()
}

// IsFinalLevel reports whether number is the last playable level.
func (g *Game) IsFinalLevel(number int) bool {
	return number == len(g.profiles)
}

// markStart starts the completion timer on the first level played.
func (g *Game) markStart() {
	if !g.started {
		g.started = true
		g.startFrame = g.Clock.Frame
	}
}

// ElapsedSeconds is the play time since the first level started.
func (g *Game) ElapsedSeconds() int {
	if !g.started {
		return 0
	}
	return g.Clock.Seconds(g.Clock.Since(g.startFrame))
}

func (g *Game) newLabel(txt string, size float64) *Label {
	return NewLabel(txt, size, g.Font).WithShadow()
}

func (g *Game) emit(event EventType, data interface{}) {
	g.Events.Emit(event, data)
}
