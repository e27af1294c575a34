package angryclones

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
	fontErr    error
)

// DefaultFontSource parses the embedded Go Bold face once per process.
func DefaultFontSource() (*text.GoTextFaceSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if fontErr != nil {
			fontErr = fmt.Errorf("failed to parse label font: %w", fontErr)
		}
	})
	return fontSource, fontErr
}

type LabelStyle string

const (
	StylePlain  LabelStyle = ""
	StyleShadow LabelStyle = "shadow"
)

// shadowOffset is the shadow displacement as a share of the font size.
const shadowOffset = 0.1

// Label is a line of text drawn at a screen position.
type Label struct {
	text     string
	fontSize float64
	color    color.Color
	style    LabelStyle
	source   *text.GoTextFaceSource
}

// NewLabel creates a white label. source may be nil, in which case Size is
// approximated and Display draws nothing.
func NewLabel(txt string, fontSize float64, source *text.GoTextFaceSource) *Label {
	return &Label{
		text:     txt,
		fontSize: fontSize,
		color:    ColorWhite,
		source:   source,
	}
}

func (l *Label) SetText(txt string) *Label {
	l.text = txt
	return l
}

func (l *Label) SetColor(c color.Color) *Label {
	l.color = c
	return l
}

func (l *Label) WithShadow() *Label {
	l.style = StyleShadow
	return l
}

func (l *Label) SetFontSize(size float64) *Label {
	l.fontSize = size
	return l
}

func (l *Label) Text() string       { return l.text }
func (l *Label) FontSize() float64  { return l.fontSize }
func (l *Label) Style() LabelStyle  { return l.style }
func (l *Label) Color() color.Color { return l.color }

func (l *Label) face() *text.GoTextFace {
	return &text.GoTextFace{Source: l.source, Size: l.fontSize}
}

// Size returns the rendered width and height of the text.
func (l *Label) Size() (float64, float64) {
	if l.source == nil {
		return float64(len(l.text)) * l.fontSize, l.fontSize
	}
	return text.Measure(l.text, l.face(), l.fontSize)
}

// LabelDraw is one pass of a label render.
type LabelDraw struct {
	Position Vector2
	Color    color.Color
}

// Draws returns the passes Display makes, in order. A shadowed label draws a
// black copy offset by a tenth of the font size beneath the primary text.
func (l *Label) Draws(position Vector2) []LabelDraw {
	if l.style == StyleShadow {
		offset := l.fontSize * shadowOffset
		return []LabelDraw{
			{Position: position.Add(Vector2{X: offset, Y: offset}), Color: ColorBlack},
			{Position: position, Color: l.color},
		}
	}
	return []LabelDraw{{Position: position, Color: l.color}}
}

func (l *Label) Display(screen *ebiten.Image, position Vector2) {
	if l.source == nil || l.text == "" {
		return
	}

	face := l.face()
	for _, d := range l.Draws(position) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(d.Position.X, d.Position.Y)
		op.ColorScale.ScaleWithColor(d.Color)
		text.Draw(screen, l.text, face, op)
	}
}
