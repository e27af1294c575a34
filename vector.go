package angryclones

import (
	"math"

	"github.com/ByteArena/box2d"
)

// Vector2 is a position or offset in pixels. Gameplay code uses world
// coordinates (origin bottom-left, y up); drawing uses screen coordinates.
type Vector2 struct {
	X, Y float64
}

func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// ToScreen flips a world position into screen space for a screen of the given height.
func (v Vector2) ToScreen(screenHeight float64) Vector2 {
	return Vector2{X: v.X, Y: screenHeight - v.Y}
}

// Scale converts between pixels and meters.
type Scale float64

func (s Scale) ToMeters(p float64) float64 {
	return p / float64(s)
}

func (s Scale) ToPixels(m float64) float64 {
	return m * float64(s)
}

func (s Scale) Vec(v Vector2) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(s.ToMeters(v.X), s.ToMeters(v.Y))
}

func (s Scale) FromVec(v box2d.B2Vec2) Vector2 {
	return Vector2{X: s.ToPixels(v.X), Y: s.ToPixels(v.Y)}
}
