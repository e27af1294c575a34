package angryclones

type EventHandler func(data interface{})

type listener struct {
	handler EventHandler
	once    bool
}

// EventEmitter dispatches gameplay events synchronously on the game loop.
type EventEmitter struct {
	events map[EventType][]listener
}

func NewEventEmitter() *EventEmitter {
	return &EventEmitter{
		events: make(map[EventType][]listener),
	}
}

func (e *EventEmitter) On(event EventType, handler EventHandler) {
	e.events[event] = append(e.events[event], listener{handler: handler})
}

// Once registers a handler that is dropped after its first call.
func (e *EventEmitter) Once(event EventType, handler EventHandler) {
	e.events[event] = append(e.events[event], listener{handler: handler, once: true})
}

// Off removes every handler for event.
func (e *EventEmitter) Off(event EventType) {
	delete(e.events, event)
}

func (e *EventEmitter) Emit(event EventType, data interface{}) {
	listeners := e.events[event]
	if len(listeners) == 0 {
		return
	}

	kept := listeners[:0:0]
	for _, l := range listeners {
		if !l.once {
			kept = append(kept, l)
		}
	}
	if len(kept) != len(listeners) {
		e.events[event] = kept
	}

	for _, l := range listeners {
		l.handler(data)
	}
}

func (e *EventEmitter) ListenerCount(event EventType) int {
	return len(e.events[event])
}
