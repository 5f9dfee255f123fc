package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawGizmos strokes the frame's primitive buffer.
func (g *Game) drawGizmos(screen *ebiten.Image) {
	for _, l := range g.gizmos.Lines {
		vector.StrokeLine(screen,
			float32(l.X1), float32(l.Y1), float32(l.X2), float32(l.Y2),
			l.Width, l.Color, true)
	}
	for _, c := range g.gizmos.Circles {
		vector.StrokeCircle(screen,
			float32(c.X), float32(c.Y), float32(c.Radius),
			DefaultStrokeWidth, c.Color, true)
	}
	for _, lb := range g.gizmos.Labels {
		DrawTextLines(screen, g.face, lb.Text, int(lb.X), int(lb.Y), lb.Color)
	}
}

// drawObjects projects and strokes every visible math object. Objects mid
// fade-in get their opacity scaled by animation progress.
func (g *Game) drawObjects(screen *ebiten.Image) {
	cw := float64(g.screenWidth) / 2
	ch := float64(g.screenHeight) / 2

	for _, obj := range g.scene.Objects() {
		if !obj.Visible {
			continue
		}
		opacity := obj.Style.Opacity
		if obj.Fade != nil {
			opacity *= obj.Fade.Progress()
		}
		stroke := withOpacity(obj.Style.Stroke, opacity)
		width := float32(obj.Style.StrokeWidth)

		if circle, ok := obj.Shape.(*Circle); ok && obj.Style.Fill != nil {
			sx, sy := g.camera.WorldToScreen(circle.X, circle.Y, cw, ch)
			fill := withOpacity(*obj.Style.Fill, opacity*float64(obj.Style.Fill.A)/255)
			vector.DrawFilledCircle(screen,
				float32(sx), float32(sy), float32(circle.Radius*WorldScale), fill, true)
		}

		for _, polyline := range obj.Shape.Outline() {
			g.strokePolyline(screen, polyline, cw, ch, width, stroke)
		}
	}
}

func (g *Game) strokePolyline(screen *ebiten.Image, pts []Point, cw, ch float64, width float32, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	px, py := g.camera.WorldToScreen(pts[0].X, pts[0].Y, cw, ch)
	for _, p := range pts[1:] {
		sx, sy := g.camera.WorldToScreen(p.X, p.Y, cw, ch)
		vector.StrokeLine(screen, float32(px), float32(py), float32(sx), float32(sy), width, clr, true)
		px, py = sx, sy
	}
}
