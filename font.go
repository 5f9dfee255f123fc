package main

import (
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadUIFont loads fonts/Roboto-Regular.ttf for panel text and axis labels,
// falling back to the built-in bitmap face when the file is missing.
func LoadUIFont() font.Face {
	data, err := os.ReadFile("fonts/Roboto-Regular.ttf")
	if err != nil {
		log.Println("font: fonts/Roboto-Regular.ttf not found, using basic font:", err)
		return basicfont.Face7x13
	}
	f, err := opentype.Parse(data)
	if err != nil {
		log.Println("font: parse error, using basic font:", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 14, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Println("font: face error, using basic font:", err)
		return basicfont.Face7x13
	}
	return face
}

// DrawTextLines draws multiline text with (x,y) as the top-left corner of the
// first line. text.Draw wants a baseline, so shift down by the face ascent.
func DrawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	ascent := int(metrics.Ascent >> 6)
	lineHeight := ascent + int(metrics.Descent>>6)
	if lineHeight <= 0 {
		lineHeight = PanelTextLine
		ascent = 12
	}
	for i, line := range strings.Split(s, "\n") {
		text.Draw(screen, line, face, x, y+ascent+i*lineHeight, clr)
	}
}
