package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Panel is a vertical stack of buttons with a status text block underneath,
// anchored to the left edge of the window. The host supplies the font, the
// text drawing helper and a status callback evaluated every frame.
type Panel struct {
	Width   float32
	Margin  float32
	ButtonW float32
	ButtonH float32

	Background color.RGBA
	TextColor  color.RGBA

	buttons       []*Button
	checks        []*Checkbox
	getFace       func() font.Face
	getScreenSize func() (int, int)
	drawText      DrawTextFunc
	status        func() string
}

func NewPanel(width float32, getFace func() font.Face, getScreenSize func() (int, int), drawText DrawTextFunc, status func() string) *Panel {
	return &Panel{
		Width:         width,
		Margin:        12,
		getFace:       getFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
		status:        status,
	}
}

// AddButton appends a button to the stack. Position is assigned by layout.
func (p *Panel) AddButton(b *Button) {
	b.W = p.ButtonW
	b.H = p.ButtonH
	p.buttons = append(p.buttons, b)
}

// AddCheckbox appends a checkbox below the buttons.
func (p *Panel) AddCheckbox(c *Checkbox) {
	if c.Size == 0 {
		c.Size = 16
	}
	c.Width = p.ButtonW
	p.checks = append(p.checks, c)
}

func (p *Panel) layout() {
	y := p.Margin
	for _, c := range p.checks {
		c.X = p.Margin
		c.Y = y
		y += c.Size + 8
	}
	if len(p.checks) > 0 {
		y += p.Margin / 2
	}
	for _, b := range p.buttons {
		b.X = p.Margin
		b.Y = y
		y += b.H + 6
	}
}

// IsMouseOver reports whether the cursor is anywhere over the panel area, so
// clicks on it do not fall through to the canvas.
func (p *Panel) IsMouseOver(mx, my int) bool {
	_, h := p.getScreenSize()
	return mx >= 0 && float32(mx) <= p.Width && my >= 0 && my <= h
}

func (p *Panel) Update() {
	p.layout()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	for _, c := range p.checks {
		if c.Contains(mx, my) {
			if c.OnToggle != nil {
				c.OnToggle()
			}
			return
		}
	}
	for _, b := range p.buttons {
		if b.Contains(mx, my) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return
		}
	}
}

func (p *Panel) Draw(screen *ebiten.Image) {
	p.layout()
	_, h := p.getScreenSize()
	vector.DrawFilledRect(screen, 0, 0, p.Width, float32(h), p.Background, false)

	face := p.getFace()
	for _, c := range p.checks {
		c.Draw(screen, face, p.drawText)
	}
	for _, b := range p.buttons {
		b.Draw(screen, face, p.drawText)
	}

	if p.status != nil && p.drawText != nil {
		y := p.Margin
		if n := len(p.buttons); n > 0 {
			last := p.buttons[n-1]
			y = last.Y + last.H + 2*p.Margin
		}
		p.drawText(screen, face, p.status(), int(p.Margin), int(y), p.TextColor)
	}
}
