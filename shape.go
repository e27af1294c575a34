package angryclones

import (
	"github.com/ByteArena/box2d"
	"github.com/hajimehoshi/ebiten/v2"
)

// Body is a dynamic physics body registered with a World.
type Body struct {
	Tag    BodyTag
	Width  float64
	Height float64
	Radius float64

	body  *box2d.B2Body
	world *World

	// peakImpulse is the hardest hit, in pixel units, since the last TakeImpulse.
	peakImpulse float64
}

func (b *Body) requireInit() {
	if b.body == nil {
		panic("Required: body is registered with a World.")
	}
}

// Position is the body center in world pixels.
func (b *Body) Position() Vector2 {
	b.requireInit()
	return b.world.scale.FromVec(b.body.GetPosition())
}

// Angle is the body rotation in radians, counter-clockwise.
func (b *Body) Angle() float64 {
	b.requireInit()
	return b.body.GetAngle()
}

// Velocity is in world pixels per second.
func (b *Body) Velocity() Vector2 {
	b.requireInit()
	return b.world.scale.FromVec(b.body.GetLinearVelocity())
}

func (b *Body) Mass() float64 {
	b.requireInit()
	return b.body.GetMass()
}

func (b *Body) SetPosition(p Vector2) {
	b.requireInit()
	b.body.SetTransform(b.world.scale.Vec(p), b.body.GetAngle())
	b.body.SetAwake(true)
}

// Stop clears linear and angular velocity.
func (b *Body) Stop() {
	b.requireInit()
	b.body.SetLinearVelocity(box2d.MakeB2Vec2(0, 0))
	b.body.SetAngularVelocity(0)
}

// ApplyImpulse pushes the body through its center. impulse is mass times pixels per second.
func (b *Body) ApplyImpulse(impulse Vector2) {
	b.requireInit()
	b.body.ApplyLinearImpulse(b.world.scale.Vec(impulse), b.body.GetWorldCenter(), true)
}

func (b *Body) recordImpulse(meters float64) {
	imp := b.world.scale.ToPixels(meters)
	if imp > b.peakImpulse {
		b.peakImpulse = imp
	}
}

// TakeImpulse returns the hardest hit since the previous call and resets it.
func (b *Body) TakeImpulse() float64 {
	imp := b.peakImpulse
	b.peakImpulse = 0
	return imp
}

func (b *Body) IsOutOfMap() bool {
	p := b.Position()
	return p.X < 0 || p.X > b.world.Width || p.Y < 0
}

// DrawSprite draws img centered on the body and rotated with it.
func (b *Body) DrawSprite(screen *ebiten.Image, img *ebiten.Image) {
	if img == nil {
		return
	}

	bounds := img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	// screen y points down, so the rotation flips
	op.GeoM.Rotate(-b.Angle())

	center := b.world.ToScreen(b.Position())
	op.GeoM.Translate(center.X, center.Y)
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(img, op)
}
