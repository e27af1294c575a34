package angryclones

import "github.com/hajimehoshi/ebiten/v2"

// PlacedLabel is a label with its screen position.
type PlacedLabel struct {
	Label    *Label
	Position Vector2
}

// Frame is one phase of a Sequence. Ticks is how long it shows; a
// non-positive value holds it forever.
type Frame struct {
	Ticks  int
	Labels []PlacedLabel
}

// Sequence steps through frames of messages, one game tick at a time.
// The last frame is held once reached.
type Sequence struct {
	frames       []Frame
	currentFrame int
	elapsed      int
}

func NewSequence(frames ...Frame) *Sequence {
	return &Sequence{frames: frames}
}

func (s *Sequence) Tick() {
	if len(s.frames) == 0 {
		return
	}

	frame := s.frames[s.currentFrame]
	if frame.Ticks <= 0 {
		return
	}

	s.elapsed++
	if s.elapsed < frame.Ticks {
		return
	}

	if s.currentFrame+1 < len(s.frames) {
		s.currentFrame++
		s.elapsed = 0
	} else {
		s.elapsed = frame.Ticks
	}
}

// CurrentFrame is the index of the frame being shown.
func (s *Sequence) CurrentFrame() int {
	return s.currentFrame
}

// Finished reports whether the sequence has run past its last timed frame.
func (s *Sequence) Finished() bool {
	if len(s.frames) == 0 {
		return true
	}
	if s.currentFrame < len(s.frames)-1 {
		return false
	}
	last := s.frames[s.currentFrame]
	return last.Ticks > 0 && s.elapsed >= last.Ticks
}

func (s *Sequence) Display(screen *ebiten.Image) {
	if len(s.frames) == 0 {
		return
	}
	for _, pl := range s.frames[s.currentFrame].Labels {
		pl.Label.Display(screen, pl.Position)
	}
}
