package angryclones

import "testing"

func TestEventEmitter(t *testing.T) {
	e := NewEventEmitter()

	var every, once []interface{}
	e.On(EventFire, func(data interface{}) { every = append(every, data) })
	e.Once(EventFire, func(data interface{}) { once = append(once, data) })

	if e.ListenerCount(EventFire) != 2 {
		t.Errorf("Expected 2 listeners, got %d", e.ListenerCount(EventFire))
	}

	e.Emit(EventFire, 1)
	e.Emit(EventFire, 2)

	if len(every) != 2 || every[1] != 2 {
		t.Errorf("Expected the On handler to see both events, got %v", every)
	}
	if len(once) != 1 || once[0] != 1 {
		t.Errorf("Expected the Once handler to see only the first event, got %v", once)
	}
	if e.ListenerCount(EventFire) != 1 {
		t.Errorf("Expected the Once handler to be dropped, got %d listeners", e.ListenerCount(EventFire))
	}

	e.Off(EventFire)
	e.Emit(EventFire, 3)
	if len(every) != 2 {
		t.Error("Expected no calls after Off")
	}
}

func TestEmitWithoutListeners(t *testing.T) {
	e := NewEventEmitter()
	e.Emit(EventLevelComplete, nil)
	if e.ListenerCount(EventLevelComplete) != 0 {
		t.Error("Expected no listeners")
	}
}

func TestEventIsKeyDown(t *testing.T) {
	if !KeyDown(KeyAdvance).IsKeyDown(KeyAdvance) {
		t.Error("Expected key down to match")
	}
	if KeyDown(KeyAdvance).IsKeyDown(KeyQuit) {
		t.Error("Expected a different key not to match")
	}
	if (Event{Type: EventKeyUp, Key: KeyAdvance}).IsKeyDown(KeyAdvance) {
		t.Error("Expected key up not to match")
	}
}
