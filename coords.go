package angryclones

// Sizer reports a rendered width and height.
type Sizer interface {
	Size() (float64, float64)
}

const labelPadding = 10

// CenteredLabel places a label against the right edge, its bottom on the
// vertical middle of the screen.
func CenteredLabel(screen Vector2, label Sizer) Vector2 {
	w, h := label.Size()
	return Vector2{X: screen.X - w, Y: screen.Y/2 - h}
}

// BottomLeftLabel places a label in the bottom-left corner with padding.
func BottomLeftLabel(screen Vector2, label Sizer) Vector2 {
	_, h := label.Size()
	return Vector2{X: labelPadding, Y: screen.Y - h - labelPadding}
}
