package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DrawTextFunc renders a string with (x,y) as the top-left corner. The host
// app injects its own text helper so this package stays font-agnostic.
type DrawTextFunc func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

// Button is a rectangular click target. When LabelFn is set it is evaluated
// at draw time, which is how toggle buttons show their current state.
type Button struct {
	Label   string
	LabelFn func() string
	X, Y    float32
	W, H    float32
	OnClick func()

	Background color.RGBA
	Hover      color.RGBA
	Text       color.RGBA
}

func (b *Button) Contains(mx, my int) bool {
	return float32(mx) >= b.X && float32(mx) <= b.X+b.W &&
		float32(my) >= b.Y && float32(my) <= b.Y+b.H
}

func (b *Button) label() string {
	if b.LabelFn != nil {
		return b.LabelFn()
	}
	return b.Label
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face, drawText DrawTextFunc) {
	mx, my := ebiten.CursorPosition()
	bg := b.Background
	if b.Contains(mx, my) {
		bg = b.Hover
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, false)
	if drawText != nil {
		drawText(screen, face, b.label(), int(b.X)+8, int(b.Y)+6, b.Text)
	}
}
