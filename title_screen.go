package angryclones

import "github.com/hajimehoshi/ebiten/v2"

type TitleScreen struct {
	game              *Game
	background        *Image
	titleMessage      *Label
	pressSpaceMessage *Label
	ticks             int
}

func NewTitleScreen(g *Game) (Screen, error) {
	background, err := g.Images.NewImage(ImageBackgroundDim)
	if err != nil {
		return nil, err
	}

	return &TitleScreen{
		game:              g,
		background:        background,
		titleMessage:      g.newLabel(g.Config.Title, 55),
		pressSpaceMessage: g.newLabel("Press SPACE to start!", 30),
	}, nil
}

func (t *TitleScreen) HandleEvent(e Event) {
	t.game.HandleQuit(e)

	if e.IsKeyDown(KeyAdvance) {
		t.game.GoToNextLevel()
	}
}

func (t *TitleScreen) Calculate() {
	t.ticks++
	if limit := t.game.Config.Play.TitleTicks; limit > 0 && t.ticks >= limit {
		t.game.GoToNextLevel()
	}
}

func (t *TitleScreen) Display(screen *ebiten.Image) {
	t.background.Display(screen)
	t.titleMessage.Display(screen, t.titleMessageCoords())
	t.pressSpaceMessage.Display(screen, t.pressSpaceMessageCoords())
}

func (t *TitleScreen) titleMessageCoords() Vector2 {
	return CenteredLabel(t.game.ScreenSize(), t.titleMessage)
}

func (t *TitleScreen) pressSpaceMessageCoords() Vector2 {
	return CenteredLabel(t.game.ScreenSize(), t.pressSpaceMessage).Add(Vector2{Y: 30})
}
