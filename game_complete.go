package angryclones

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameComplete congratulates the player and reports the total play time.
// Advancing past it ends the game.
type GameComplete struct {
	game       *Game
	background *Image
	outro      *Sequence
	seconds    int
}

func NewGameComplete(g *Game) (Screen, error) {
	background, err := g.Images.NewImage(ImageBackgroundDim)
	if err != nil {
		return nil, err
	}

	seconds := g.ElapsedSeconds()
	g.emit(EventGameComplete, EventGameCompleteData{Seconds: seconds})

	message, hold := g.Config.Play.OutroTicks()
	return &GameComplete{
		game:       g,
		background: background,
		seconds:    seconds,
		outro: NewSequence(
			Frame{Ticks: message, Labels: []PlacedLabel{
				{Label: g.newLabel("Game Completed!", 95), Position: Vector2{X: 130, Y: 250}},
			}},
			Frame{Ticks: hold, Labels: []PlacedLabel{
				{Label: g.newLabel("You completed the game", 65), Position: Vector2{X: 190, Y: 250}},
				{Label: g.newLabel(fmt.Sprintf("In: %d seconds", seconds), 95), Position: Vector2{X: 230, Y: 350}},
			}},
		),
	}, nil
}

func (c *GameComplete) HandleEvent(e Event) {
	c.game.HandleQuit(e)

	if e.IsKeyDown(KeyAdvance) {
		c.game.GoToNextLevel()
	}
}

func (c *GameComplete) Calculate() {
	c.outro.Tick()
	if c.outro.Finished() {
		c.game.GoToNextLevel()
	}
}

func (c *GameComplete) Display(screen *ebiten.Image) {
	c.background.Display(screen)
	c.outro.Display(screen)
}

func (c *GameComplete) Seconds() int {
	return c.seconds
}
