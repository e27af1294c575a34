package angryclones

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	BallRadius      = 20
	BallMass        = 5
	BallFriction    = 15
	BallRestitution = 0.9
)

// Ball is the projectile fired from the trebuchet ramp.
type Ball struct {
	*Body
	Color color.RGBA
}

func NewBall(world *World, position Vector2) *Ball {
	body := world.AddCircle(BodyProps{
		Tag:         TagBall,
		Position:    position,
		Radius:      BallRadius,
		Mass:        BallMass,
		Friction:    BallFriction,
		Restitution: BallRestitution,
		Bullet:      true,
		NoSleep:     true,
	})
	return &Ball{Body: body, Color: ColorRed}
}

// Fire pushes the ball to the right along the ramp.
func (b *Ball) Fire(impulse float64) {
	b.ApplyImpulse(Vector2{X: impulse})
}

// Reset puts the ball back at position, at rest.
func (b *Ball) Reset(position Vector2) {
	b.SetPosition(position)
	b.Stop()
}

func (b *Ball) RandomColor(rng *rand.Rand) {
	b.Color = BallColors[rng.Intn(len(BallColors))]
}

func (b *Ball) Draw(screen *ebiten.Image) {
	p := b.world.ToScreen(b.Position())
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(b.Radius), b.Color, true)
}
