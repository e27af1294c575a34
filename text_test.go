package angryclones

import "testing"

func TestLabelDraws(t *testing.T) {
	pos := Vector2{X: 10, Y: 20}

	plain := NewLabel("hi", 50, nil)
	draws := plain.Draws(pos)
	if len(draws) != 1 || draws[0].Position != pos || draws[0].Color != ColorWhite {
		t.Errorf("Expected one white draw at %+v, got %+v", pos, draws)
	}

	shadow := NewLabel("hi", 50, nil).SetColor(ColorRed).WithShadow()
	draws = shadow.Draws(pos)
	if len(draws) != 2 {
		t.Fatalf("Expected 2 draws for a shadowed label, got %d", len(draws))
	}
	if draws[0].Position != (Vector2{X: 15, Y: 25}) || draws[0].Color != ColorBlack {
		t.Errorf("Expected black shadow at (15, 25), got %+v", draws[0])
	}
	if draws[1].Position != pos || draws[1].Color != ColorRed {
		t.Errorf("Expected red text at %+v, got %+v", pos, draws[1])
	}
}

func TestLabelSizeWithoutFont(t *testing.T) {
	l := NewLabel("abc", 10, nil)
	if w, h := l.Size(); w != 30 || h != 10 {
		t.Errorf("Expected 30x10, got %vx%v", w, h)
	}

	l.SetText("abcd").SetFontSize(20)
	if w, h := l.Size(); w != 80 || h != 20 {
		t.Errorf("Expected 80x20, got %vx%v", w, h)
	}
}

func TestLabelSizeWithFont(t *testing.T) {
	src, err := DefaultFontSource()
	if err != nil {
		t.Fatalf("DefaultFontSource failed: %v", err)
	}
	again, _ := DefaultFontSource()
	if src != again {
		t.Error("Expected the font source to be parsed once")
	}

	short := NewLabel("Go", 30, src)
	long := NewLabel("Angry Clones", 30, src)

	sw, sh := short.Size()
	lw, _ := long.Size()
	if sw <= 0 || sh <= 0 {
		t.Errorf("Expected a positive size, got %vx%v", sw, sh)
	}
	if lw <= sw {
		t.Errorf("Expected longer text to measure wider, got %v <= %v", lw, sw)
	}
}
