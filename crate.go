package angryclones

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	CrateSize     = 46
	TNTCrateSize  = 92
	CrateMass     = 6
	CrateFriction = 1
)

// Crate is a building block of a level. TNT crates are larger and never break.
type Crate struct {
	*Body
	TNT    bool
	broken bool
	image  *ebiten.Image
}

func NewCrate(world *World, images *ImageCache, spec CrateSpec) (*Crate, error) {
	size, name := float64(CrateSize), ImageCrate
	if spec.TNT {
		size, name = TNTCrateSize, ImageTNTCrate
	}

	img, err := images.Load(name)
	if err != nil {
		return nil, err
	}

	body := world.AddBox(BodyProps{
		Tag:      TagCrate,
		Position: spec.Position(),
		Width:    size,
		Height:   size,
		Mass:     CrateMass,
		Friction: CrateFriction,
	})

	return &Crate{Body: body, TNT: spec.TNT, image: img}, nil
}

// Break swaps a normal crate to one of the broken images. It reports whether
// the crate changed; TNT crates and already broken crates do not.
func (c *Crate) Break(images *ImageCache, rng *rand.Rand) (bool, error) {
	if c.TNT || c.broken {
		return false, nil
	}

	name := ImageBrokenCrate1
	if rng.Intn(2) == 1 {
		name = ImageBrokenCrate2
	}

	img, err := images.Load(name)
	if err != nil {
		return false, err
	}

	c.image = img
	c.broken = true
	return true, nil
}

func (c *Crate) IsBroken() bool {
	return c.broken
}

func (c *Crate) Image() *ebiten.Image {
	return c.image
}

func (c *Crate) Draw(screen *ebiten.Image) {
	c.DrawSprite(screen, c.image)
}
