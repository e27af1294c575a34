package angryclones

import "github.com/hajimehoshi/ebiten/v2"

const (
	SnakeSize     = 80
	SnakeMass     = 1
	SnakeFriction = 1
)

// Snake is the enemy. It dies when it falls into the toxic puddle.
type Snake struct {
	*Body
	dead      bool
	image     *ebiten.Image
	deadImage *ebiten.Image
}

func NewSnake(world *World, images *ImageCache, spec SnakeSpec) (*Snake, error) {
	img, err := images.Load(ImageSnake)
	if err != nil {
		return nil, err
	}
	deadImg, err := images.Load(ImageDeadSnake)
	if err != nil {
		return nil, err
	}

	body := world.AddBox(BodyProps{
		Tag:      TagSnake,
		Position: spec.Position(),
		Width:    SnakeSize,
		Height:   SnakeSize,
		Mass:     SnakeMass,
		Friction: SnakeFriction,
	})

	return &Snake{Body: body, image: img, deadImage: deadImg}, nil
}

// InPuddle reports whether the snake has sunk below toxicHeight plus the
// width of its sprite.
func (s *Snake) InPuddle(toxicHeight float64) bool {
	return s.Position().Y < toxicHeight+float64(s.image.Bounds().Dx())
}

// Kill marks the snake dead and reports whether it was alive.
func (s *Snake) Kill() bool {
	if s.dead {
		return false
	}
	s.dead = true
	return true
}

func (s *Snake) IsDead() bool {
	return s.dead
}

func (s *Snake) Image() *ebiten.Image {
	if s.dead {
		return s.deadImage
	}
	return s.image
}

func (s *Snake) Draw(screen *ebiten.Image) {
	s.DrawSprite(screen, s.Image())
}
