package angryclones

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type EventType string

// Input events, produced once per frame by an InputPoller.
const (
	EventQuit      EventType = "quit"
	EventKeyDown   EventType = "keydown"
	EventKeyUp     EventType = "keyup"
	EventMouseDown EventType = "mousedown"
	EventMouseUp   EventType = "mouseup"
	EventMouseMove EventType = "mousemove"
)

// Gameplay events, emitted by screens through the game's EventEmitter.
const (
	EventFire          EventType = "fire"
	EventCrateBroken   EventType = "crate-broken"
	EventSnakeKilled   EventType = "snake-killed"
	EventLevelComplete EventType = "level-complete"
	EventLevelFailed   EventType = "level-failed"
	EventGameComplete  EventType = "game-complete"
)

// Event is a single input event handed to a screen controller.
type Event struct {
	Type   EventType
	Key    ebiten.Key
	Button ebiten.MouseButton
	X, Y   float64
}

func KeyDown(key ebiten.Key) Event {
	return Event{Type: EventKeyDown, Key: key}
}

func MouseDown(x, y float64) Event {
	return Event{Type: EventMouseDown, Button: ebiten.MouseButtonLeft, X: x, Y: y}
}

func MouseUp(x, y float64) Event {
	return Event{Type: EventMouseUp, Button: ebiten.MouseButtonLeft, X: x, Y: y}
}

func MouseMove(x, y float64) Event {
	return Event{Type: EventMouseMove, X: x, Y: y}
}

// IsKeyDown reports whether e is a press of key.
func (e Event) IsKeyDown(key ebiten.Key) bool {
	return e.Type == EventKeyDown && e.Key == key
}

type EventLevelData struct {
	Level int
}

type EventSnakeKilledData struct {
	Level     int
	Remaining int
}

type EventCrateBrokenData struct {
	Level    int
	Position Vector2
}

type EventGameCompleteData struct {
	Seconds int
}

// InputPoller turns ebiten's input state into Events.
type InputPoller struct {
	keys    []ebiten.Key
	events  []Event
	hasLast bool
	lastX   int
	lastY   int
}

// Reset makes the next Poll report the cursor even if it has not moved.
func (p *InputPoller) Reset() {
	p.hasLast = false
}

// Poll returns the events since the previous frame. The slice is reused.
func (p *InputPoller) Poll() []Event {
	p.events = p.events[:0]

	if ebiten.IsWindowBeingClosed() {
		p.events = append(p.events, Event{Type: EventQuit})
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		p.events = append(p.events, KeyDown(k))
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		p.events = append(p.events, Event{Type: EventKeyUp, Key: k})
	}

	x, y := ebiten.CursorPosition()
	if !p.hasLast || x != p.lastX || y != p.lastY {
		p.events = append(p.events, MouseMove(float64(x), float64(y)))
		p.hasLast, p.lastX, p.lastY = true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.events = append(p.events, MouseDown(float64(x), float64(y)))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.events = append(p.events, MouseUp(float64(x), float64(y)))
	}

	return p.events
}
