package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Checkbox is a labeled toggle. Checked state lives with the host: Get reads
// it, OnToggle flips it, so the widget never holds stale state.
type Checkbox struct {
	Label    string
	X, Y     float32
	Size     float32
	Get      func() bool
	OnToggle func()

	Box   color.RGBA
	Mark  color.RGBA
	Text  color.RGBA
	Width float32 // full click target width including the label
}

func (c *Checkbox) Contains(mx, my int) bool {
	return float32(mx) >= c.X && float32(mx) <= c.X+c.Width &&
		float32(my) >= c.Y && float32(my) <= c.Y+c.Size
}

func (c *Checkbox) Draw(screen *ebiten.Image, face font.Face, drawText DrawTextFunc) {
	vector.DrawFilledRect(screen, c.X, c.Y, c.Size, c.Size, c.Box, false)
	if c.Get != nil && c.Get() {
		inset := c.Size * 0.25
		vector.DrawFilledRect(screen, c.X+inset, c.Y+inset, c.Size-2*inset, c.Size-2*inset, c.Mark, false)
	}
	if drawText != nil {
		drawText(screen, face, c.Label, int(c.X+c.Size)+8, int(c.Y), c.Text)
	}
}
