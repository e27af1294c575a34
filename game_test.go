package angryclones

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNewGameStartsOnTitle(t *testing.T) {
	g := newTestGame(t, nil)

	if g.CurrentLevelNumber() != 0 {
		t.Errorf("Expected screen 0, got %d", g.CurrentLevelNumber())
	}
	if _, ok := g.CurrentScreen().(*TitleScreen); !ok {
		t.Errorf("Expected the title screen, got %T", g.CurrentScreen())
	}
	if g.ScreenCount() != 5 {
		t.Errorf("Expected title, 3 levels and game complete, got %d screens", g.ScreenCount())
	}
	if g.Audio != nil {
		t.Error("Expected no audio manager when sound is disabled")
	}
	if w, h := g.Layout(0, 0); w != 1024 || h != 600 {
		t.Errorf("Expected a 1024x600 layout, got %dx%d", w, h)
	}
}

func TestSpaceOnTitleStartsFirstLevel(t *testing.T) {
	g := newTestGame(t, nil)

	if err := g.Step([]Event{KeyDown(KeyAdvance)}); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	l, ok := g.CurrentScreen().(*Level)
	if !ok {
		t.Fatalf("Expected a level, got %T", g.CurrentScreen())
	}
	if l.Number() != 1 || g.CurrentLevelNumber() != 1 {
		t.Errorf("Expected level 1, got %d", l.Number())
	}
}

func TestTitleAutoAdvance(t *testing.T) {
	cfg := testConfig(t)
	cfg.Play.TitleTicks = 2
	g := newTestGame(t, cfg)

	g.Step(nil)
	g.Step(nil)
	if g.CurrentLevelNumber() != 0 {
		t.Fatalf("Expected the title until the next step, got %d", g.CurrentLevelNumber())
	}
	g.Step(nil)
	if g.CurrentLevelNumber() != 1 {
		t.Errorf("Expected level 1 after the title timed out, got %d", g.CurrentLevelNumber())
	}
}

func TestQuitEndsGame(t *testing.T) {
	tests := []struct {
		name  string
		start int
		event Event
	}{
		{"escape on title", 0, KeyDown(KeyQuit)},
		{"window close on title", 0, Event{Type: EventQuit}},
		{"escape in level", 1, KeyDown(KeyQuit)},
		{"escape on game complete", 4, KeyDown(KeyQuit)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Play.StartLevel = tt.start
			g := newTestGame(t, cfg)

			err := g.Step([]Event{tt.event})
			if !errors.Is(err, ebiten.Termination) {
				t.Errorf("Expected ebiten.Termination, got %v", err)
			}
			if !g.Over() || g.ExitCode() != 0 {
				t.Errorf("Expected a clean exit, got over=%v code=%d", g.Over(), g.ExitCode())
			}
		})
	}
}

func TestStartLevelFromConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Play.StartLevel = 2
	g := newTestGame(t, cfg)

	l, ok := g.CurrentScreen().(*Level)
	if !ok || l.Number() != 2 {
		t.Errorf("Expected level 2, got %T", g.CurrentScreen())
	}
	if !g.IsFinalLevel(3) || g.IsFinalLevel(2) {
		t.Error("Expected level 3 to be the final level")
	}
}

func TestGameCompleteEndsGame(t *testing.T) {
	cfg := testConfig(t)
	cfg.Play.StartLevel = 4
	g := newTestGame(t, cfg)

	if _, ok := g.CurrentScreen().(*GameComplete); !ok {
		t.Fatalf("Expected the game complete screen, got %T", g.CurrentScreen())
	}

	err := g.Step([]Event{KeyDown(KeyAdvance)})
	if !errors.Is(err, ebiten.Termination) {
		t.Errorf("Expected ebiten.Termination, got %v", err)
	}
	if !g.Over() {
		t.Error("Expected the game over")
	}
}

func TestGameCompleteTimesOut(t *testing.T) {
	cfg := testConfig(t)
	cfg.Play.StartLevel = 4
	g := newTestGame(t, cfg)

	var err error
	for i := 0; i < cfg.Play.CompleteTicks && err == nil; i++ {
		err = g.Step(nil)
	}
	if !errors.Is(err, ebiten.Termination) {
		t.Errorf("Expected the game to end after the outro, got %v", err)
	}
}

func TestElapsedSecondsCountsFromFirstLevel(t *testing.T) {
	g := newTestGame(t, nil)
	safe := mustProfile(t, 0, safeSnakes, safeCrates)

	for i := 0; i < 10; i++ {
		g.Step(nil)
	}
	if g.ElapsedSeconds() != 0 {
		t.Errorf("Expected no elapsed time on the title, got %d", g.ElapsedSeconds())
	}

	useLevels(t, g, safe)
	for i := 0; i < g.Config.Window.TPS*2; i++ {
		g.Step(nil)
	}
	if g.ElapsedSeconds() != 2 {
		t.Errorf("Expected 2 seconds, got %d", g.ElapsedSeconds())
	}
}

func TestGameCompleteReportsSeconds(t *testing.T) {
	g := newTestGame(t, nil)
	var reported *EventGameCompleteData
	g.Events.On(EventGameComplete, func(data interface{}) {
		d := data.(EventGameCompleteData)
		reported = &d
	})

	falling := mustProfile(t, 0, []SnakeSpec{{X: 700, Y: 140}}, nil)
	useLevels(t, g, falling)
	for i := 0; i < 3; i++ {
		g.Step(nil)
	}

	if reported == nil {
		t.Fatal("Expected a game complete event")
	}
	screen, ok := g.CurrentScreen().(*GameComplete)
	if !ok || screen.Seconds() != reported.Seconds {
		t.Errorf("Expected the screen to show %d seconds", reported.Seconds)
	}
}

func TestNewGameMissingAssets(t *testing.T) {
	cfg := testConfig(t)
	if _, err := NewGame(cfg, fstest.MapFS{}); err == nil {
		t.Error("Expected an error when assets are missing")
	}
}

func TestBrokenScreenExitsWithError(t *testing.T) {
	g := newTestGame(t, nil)
	g.screens[1] = func(*Game) (Screen, error) {
		return nil, errors.New("boom")
	}

	err := g.Step([]Event{KeyDown(KeyAdvance)})
	if !errors.Is(err, ebiten.Termination) || g.ExitCode() != 1 {
		t.Errorf("Expected termination with exit code 1, got %v and %d", err, g.ExitCode())
	}
}

func TestGameCompleteIsLogged(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	cfg := testConfig(t)
	cfg.Play.StartLevel = 4
	newTestGame(t, cfg)

	if !strings.Contains(buf.String(), "[Game] Completed in 0 seconds") {
		t.Errorf("Expected the completion time in the log, got %q", buf.String())
	}
}

func TestEnteringScreenRereadsCursor(t *testing.T) {
	g := newTestGame(t, nil)
	g.input.hasLast = true

	g.Step([]Event{KeyDown(KeyAdvance)})

	if g.CurrentLevelNumber() != 1 {
		t.Fatalf("Expected level 1, got %d", g.CurrentLevelNumber())
	}
	if g.input.hasLast {
		t.Error("Expected the next poll to report the cursor on the new screen")
	}
}
