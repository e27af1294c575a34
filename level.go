package angryclones

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

type LevelPhase string

const (
	PhasePlaying  LevelPhase = "playing"
	PhaseFailed   LevelPhase = "failed"
	PhaseComplete LevelPhase = "complete"
)

// Level is one playable stage: a trebuchet ramp on the left, crates and
// snakes on the right. It is won when every snake has fallen into the puddle.
type Level struct {
	game    *Game
	number  int
	profile *LevelProfile
	world   *World

	background    *Image
	backgroundDim *Image
	trebuchet     *Image

	ball   *Ball
	crates []*Crate
	snakes []*Snake

	snakesRemainingMessage *Label
	timeLeftMessage        *Label
	snakeDeadMessage       *Label

	phase     LevelPhase
	playTicks int64
	firing    bool
	rampY     float64

	outro *Sequence
}

// LevelFactory builds level number from profile each time it is entered.
func LevelFactory(number int, profile *LevelProfile) ScreenFactory {
	return func(g *Game) (Screen, error) {
		return NewLevel(g, number, profile)
	}
}

func NewLevel(g *Game, number int, profile *LevelProfile) (*Level, error) {
	if profile == nil {
		profile = EmptyLevelProfile()
	}

	l := &Level{
		game:    g,
		number:  number,
		profile: profile,
		phase:   PhasePlaying,
		rampY:   g.Config.Play.RampY,
	}

	var err error
	if l.background, err = g.Images.NewImage(ImageBackground); err != nil {
		return nil, err
	}
	if l.backgroundDim, err = g.Images.NewImage(ImageBackgroundDim); err != nil {
		return nil, err
	}
	if l.trebuchet, err = g.Images.NewImage(ImageTrebuchet); err != nil {
		return nil, err
	}
	_, trebuchetHeight := l.trebuchet.Size()
	l.trebuchet.Move(Vector2{X: 20, Y: g.ScreenSize().Y - g.Config.Play.GroundY - trebuchetHeight})

	l.world = NewWorld(WorldPropsFromConfig(g.Config))
	l.ball = NewBall(l.world, g.Config.Ball.Spawn)

	for _, spec := range profile.Crates() {
		crate, err := NewCrate(l.world, g.Images, spec)
		if err != nil {
			l.world.Destroy()
			return nil, err
		}
		if spec.Broken {
			if _, err := crate.Break(g.Images, g.Rand); err != nil {
				l.world.Destroy()
				return nil, err
			}
		}
		l.crates = append(l.crates, crate)
	}

	for _, spec := range profile.Snakes() {
		snake, err := NewSnake(l.world, g.Images, spec)
		if err != nil {
			l.world.Destroy()
			return nil, err
		}
		l.snakes = append(l.snakes, snake)
	}

	l.snakesRemainingMessage = g.newLabel("", 20)
	l.timeLeftMessage = g.newLabel("", 30)
	l.snakeDeadMessage = g.newLabel("The Snake is Dead!", 50).SetColor(ColorRed)
	l.updateLabels()

	g.markStart()
	log.Printf("[Level %d] Loaded %q: %d crates, %d snakes", number, profile.Name(), len(l.crates), len(l.snakes))
	return l, nil
}

func (l *Level) HandleEvent(e Event) {
	l.game.HandleQuit(e)

	switch l.phase {
	case PhasePlaying:
		l.handlePlaying(e)
	case PhaseFailed:
		if e.IsKeyDown(KeyAdvance) {
			l.game.RestartLevel()
		}
	case PhaseComplete:
		if e.IsKeyDown(KeyAdvance) {
			l.game.GoToNextLevel()
		}
	}
}

func (l *Level) handlePlaying(e Event) {
	switch e.Type {
	case EventKeyDown:
		if e.Key == KeyAdvance {
			l.ball.Reset(l.game.Config.Ball.Spawn)
			l.ball.RandomColor(l.game.Rand)
		}
	case EventMouseDown:
		l.firing = true
		l.game.emit(EventFire, EventLevelData{Level: l.number})
	case EventMouseUp:
		l.firing = false
	case EventMouseMove:
		l.rampY = clamp(l.world.Height-e.Y, 0, l.world.Height)
	}
}

func (l *Level) Calculate() {
	switch l.phase {
	case PhasePlaying:
		l.calculatePlaying()
	case PhaseFailed:
		l.outro.Tick()
	case PhaseComplete:
		l.outro.Tick()
		if l.outro.Finished() {
			l.game.GoToNextLevel()
		}
	}
}

func (l *Level) calculatePlaying() {
	cfg := l.game.Config

	l.world.SetRamp(l.rampY)
	if l.firing {
		l.ball.Fire(cfg.Ball.FireImpulse)
	}

	l.world.Step()
	l.playTicks++

	settled := l.playTicks > int64(cfg.Physics.SettleTicks)
	for _, crate := range l.crates {
		impulse := crate.TakeImpulse()
		if !settled || impulse < cfg.Physics.BreakImpulse {
			continue
		}

		broke, err := crate.Break(l.game.Images, l.game.Rand)
		if err != nil {
			log.Printf("[Level %d] Warning: %v", l.number, err)
			continue
		}
		if broke {
			l.game.emit(EventCrateBroken, EventCrateBrokenData{Level: l.number, Position: crate.Position()})
		}
	}

	for _, snake := range l.snakes {
		if snake.InPuddle(cfg.Play.ToxicHeight) && snake.Kill() {
			l.game.emit(EventSnakeKilled, EventSnakeKilledData{Level: l.number, Remaining: l.SnakesRemaining()})
		}
	}

	if l.ball.IsOutOfMap() {
		l.ball.Reset(cfg.Ball.Spawn)
	}

	l.updateLabels()

	if l.SnakesRemaining() == 0 {
		l.complete()
	} else if l.profile.TimeLimit() > 0 && l.TimeLeft() <= 0 {
		l.fail()
	}
}

func (l *Level) complete() {
	message, hold := l.game.Config.Play.OutroTicks()
	l.phase = PhaseComplete
	l.firing = false
	l.outro = NewSequence(
		Frame{Ticks: message, Labels: []PlacedLabel{
			{Label: l.game.newLabel("Well Done", 95), Position: Vector2{X: 320, Y: 250}},
		}},
		Frame{Ticks: hold, Labels: []PlacedLabel{
			{Label: l.game.newLabel(fmt.Sprintf("Level %d", l.number+1), 95), Position: Vector2{X: 350, Y: 250}},
		}},
	)
	l.game.emit(EventLevelComplete, EventLevelData{Level: l.number})

	if l.game.IsFinalLevel(l.number) {
		l.game.GoToNextLevel()
	}
}

func (l *Level) fail() {
	message, _ := l.game.Config.Play.OutroTicks()
	l.phase = PhaseFailed
	l.firing = false
	l.outro = NewSequence(
		Frame{Ticks: message, Labels: []PlacedLabel{
			{Label: l.game.newLabel("Good Try!", 95), Position: Vector2{X: 320, Y: 250}},
		}},
		Frame{Labels: []PlacedLabel{
			{Label: l.game.newLabel("Press SPACE to try again", 80), Position: Vector2{X: 80, Y: 250}},
			{Label: l.game.newLabel("Press ESC to quit", 60), Position: Vector2{X: 300, Y: 400}},
		}},
	)
	l.game.emit(EventLevelFailed, EventLevelData{Level: l.number})
}

func (l *Level) updateLabels() {
	l.snakesRemainingMessage.SetText(fmt.Sprintf("Snakes Remaining: %d", l.SnakesRemaining()))
	if l.profile.TimeLimit() > 0 {
		l.timeLeftMessage.SetText(fmt.Sprintf("Time Left: %d", max(l.TimeLeft(), 0)))
	} else {
		l.timeLeftMessage.SetText("")
	}
}

func (l *Level) Display(screen *ebiten.Image) {
	if l.phase != PhasePlaying {
		l.backgroundDim.Display(screen)
		l.outro.Display(screen)
		return
	}

	size := l.game.ScreenSize()

	l.background.Display(screen)
	l.trebuchet.Display(screen)
	l.ball.Draw(screen)
	for _, crate := range l.crates {
		crate.Draw(screen)
	}
	for _, snake := range l.snakes {
		snake.Draw(screen)
	}
	l.world.DrawScenery(screen, ColorRed)

	l.snakesRemainingMessage.Display(screen, BottomLeftLabel(size, l.snakesRemainingMessage))
	if l.profile.TimeLimit() > 0 {
		w, _ := l.timeLeftMessage.Size()
		l.timeLeftMessage.Display(screen, Vector2{X: size.X - w - labelPadding, Y: labelPadding})
	}
	if l.SnakesRemaining() < len(l.snakes) {
		_, h := l.snakeDeadMessage.Size()
		l.snakeDeadMessage.Display(screen, Vector2{X: 600, Y: size.Y - h - labelPadding})
	}
}

// SnakesRemaining is the number of snakes still alive.
func (l *Level) SnakesRemaining() int {
	n := 0
	for _, snake := range l.snakes {
		if !snake.IsDead() {
			n++
		}
	}
	return n
}

// TimeLeft is the whole seconds remaining before the level is failed.
func (l *Level) TimeLeft() int {
	return l.profile.TimeLimit() - l.game.Clock.Seconds(l.playTicks)
}

func (l *Level) Phase() LevelPhase {
	return l.phase
}

func (l *Level) Number() int {
	return l.number
}

func (l *Level) World() *World {
	return l.world
}

func (l *Level) Ball() *Ball {
	return l.ball
}

func (l *Level) Crates() []*Crate {
	return l.crates
}

func (l *Level) Snakes() []*Snake {
	return l.snakes
}

func (l *Level) RampY() float64 {
	return l.rampY
}

func (l *Level) Firing() bool {
	return l.firing
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
