package angryclones

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// KeyAdvance moves the game to the next screen or resets the ball.
	KeyAdvance = ebiten.KeySpace
	KeyQuit    = ebiten.KeyEscape
)

type AssetName = string

// Image assets, relative to the image directory of the asset FS.
const (
	ImageBackground    AssetName = "background.png"
	ImageBackgroundDim AssetName = "background-dim.png"
	ImageTrebuchet     AssetName = "trebuchet.png"
	ImageCrate         AssetName = "crate.png"
	ImageBrokenCrate1  AssetName = "broken_crate1.png"
	ImageBrokenCrate2  AssetName = "broken_crate2.png"
	ImageTNTCrate      AssetName = "tnt_crate.png"
	ImageSnake         AssetName = "snake.png"
	ImageDeadSnake     AssetName = "dead_snake.png"
)

// AllImages lists every image the game needs before it can start.
var AllImages = []AssetName{
	ImageBackground,
	ImageBackgroundDim,
	ImageTrebuchet,
	ImageCrate,
	ImageBrokenCrate1,
	ImageBrokenCrate2,
	ImageTNTCrate,
	ImageSnake,
	ImageDeadSnake,
}

// Sound effect names.
const (
	SoundFire  = "fire"
	SoundCrash = "crash"
	SoundSnake = "snake"
	SoundWin   = "win"
	SoundFail  = "fail"
)

type BodyTag string

const (
	TagBall  BodyTag = "ball"
	TagCrate BodyTag = "crate"
	TagSnake BodyTag = "snake"
)

var (
	ColorWhite  = color.RGBA{255, 255, 255, 255}
	ColorBlack  = color.RGBA{0, 0, 0, 255}
	ColorRed    = color.RGBA{255, 0, 0, 255}
	ColorBlue   = color.RGBA{0, 0, 255, 255}
	ColorGreen  = color.RGBA{0, 255, 0, 255}
	ColorOrange = color.RGBA{255, 165, 0, 255}
	ColorBrown  = color.RGBA{165, 42, 42, 255}
)

// BallColors are picked from when the ball is reset.
var BallColors = []color.RGBA{ColorBlue, ColorGreen, ColorOrange, ColorBrown}
