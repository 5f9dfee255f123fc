package main

import (
	"image/color"
	"math"
	"strconv"
)

// LineSeg is one screen-space stroke.
type LineSeg struct {
	X1, Y1 float64
	X2, Y2 float64
	Width  float32
	Color  color.Color
}

// TextLabel is a screen-space text primitive. X/Y is the top-left anchor.
type TextLabel struct {
	Text  string
	X, Y  float64
	Color color.Color
}

// CircleMark is a small stroked circle (origin marker).
type CircleMark struct {
	X, Y   float64
	Radius float64
	Color  color.Color
}

// Gizmos collects the primitives for one frame. The buffer is rebuilt from
// scratch every frame; nothing in it survives a camera or window change.
type Gizmos struct {
	Lines   []LineSeg
	Labels  []TextLabel
	Circles []CircleMark
}

func (gz *Gizmos) Reset() {
	gz.Lines = gz.Lines[:0]
	gz.Labels = gz.Labels[:0]
	gz.Circles = gz.Circles[:0]
}

func (gz *Gizmos) line(x1, y1, x2, y2 float64, width float32, clr color.Color) {
	gz.Lines = append(gz.Lines, LineSeg{x1, y1, x2, y2, width, clr})
}

func (gz *Gizmos) label(text string, x, y float64, clr color.Color) {
	gz.Labels = append(gz.Labels, TextLabel{text, x, y, clr})
}

// AppendAxes emits the axis lines, arrowheads, tick marks, numeric labels and
// axis name labels for one frame. w/h are the window pixel dimensions.
func (gz *Gizmos) AppendAxes(a *Axes, cam *Camera, w, h int) {
	cw := float64(w) / 2
	ch := float64(h) / 2
	ox, oy := cam.WorldToScreen(0, 0, cw, ch)

	// The line extent follows the window, not the axis ranges: how far the
	// line is drawn and how far apart the ticks sit are independent.
	halfW := float64(w) * AxisExtentFraction
	halfH := float64(h) * AxisExtentFraction

	gz.line(ox-halfW, oy, ox+halfW, oy, DefaultStrokeWidth, ColorAxes)
	gz.line(ox, oy-halfH, ox, oy+halfH, DefaultStrokeWidth, ColorAxes)

	if a.ShowArrows {
		// Arrowheads anchor to the screen edges, deliberately ignoring pan:
		// they mark the direction of the axis, not a world position.
		xTipX, xTipY := cw+halfW-ArrowMargin, ch
		gz.line(xTipX, xTipY, xTipX-ArrowSize, xTipY-ArrowSize*0.5, DefaultStrokeWidth, ColorAxes)
		gz.line(xTipX, xTipY, xTipX-ArrowSize, xTipY+ArrowSize*0.5, DefaultStrokeWidth, ColorAxes)

		yTipX, yTipY := cw, ch-(halfH-ArrowMargin)
		gz.line(yTipX, yTipY, yTipX-ArrowSize*0.5, yTipY+ArrowSize, DefaultStrokeWidth, ColorAxes)
		gz.line(yTipX, yTipY, yTipX+ArrowSize*0.5, yTipY+ArrowSize, DefaultStrokeWidth, ColorAxes)
	}

	if a.ShowNumbers {
		for _, x := range tickValues(a.XRange, a.TickSpacing) {
			sx := ox + x*WorldScale
			gz.line(sx, oy-TickHalfLength, sx, oy+TickHalfLength, DefaultStrokeWidth, ColorAxes)
			gz.label(formatTick(x, a.TickSpacing), sx, oy+TickLabelOffset, ColorTickLabel)
		}
		for _, y := range tickValues(a.YRange, a.TickSpacing) {
			sy := oy - y*WorldScale
			gz.line(ox-TickHalfLength, sy, ox+TickHalfLength, sy, DefaultStrokeWidth, ColorAxes)
			gz.label(formatTick(y, a.TickSpacing), ox-YTickLabelOffset, sy, ColorTickLabel)
		}
	}

	// Origin marker and axis names.
	gz.Circles = append(gz.Circles, CircleMark{ox, oy, OriginMarkRadius, ColorAxes})
	gz.label(a.XLabel, ox+a.XRange.Max*WorldScale+AxisLabelOffset, oy+15, ColorAxisLabel)
	gz.label(a.YLabel, ox-15, oy-a.YRange.Max*WorldScale-AxisLabelOffset, ColorAxisLabel)
	gz.label("O", ox-15, oy+15, ColorAxisLabel)
}

// AppendGrid emits major and minor grid lines. Minor lines that land on a
// major line are skipped so they are not double drawn.
func (gz *Gizmos) AppendGrid(g *Grid, cam *Camera, w, h int) {
	cw := float64(w) / 2
	ch := float64(h) / 2
	ox, oy := cam.WorldToScreen(0, 0, cw, ch)

	// Slightly wider extent than the axes so the grid never ends visibly
	// inside the window.
	halfW := float64(w) * GridExtentFraction
	halfH := float64(h) * GridExtentFraction
	xRange := Range{-halfW / WorldScale, halfW / WorldScale}
	yRange := Range{-halfH / WorldScale, halfH / WorldScale}

	major := withOpacity(ColorGridLine, g.Opacity)
	for _, x := range gridValues(xRange, g.Spacing) {
		sx := ox + x*WorldScale
		gz.line(sx, oy-halfH, sx, oy+halfH, 1, major)
	}
	for _, y := range gridValues(yRange, g.Spacing) {
		sy := oy - y*WorldScale
		gz.line(ox-halfW, sy, ox+halfW, sy, 1, major)
	}

	if !g.ShowMinor || g.MinorSpacing <= 0 {
		return
	}
	minor := withOpacity(ColorGridLine, g.Opacity*MinorGridDim)
	for _, x := range gridValues(xRange, g.MinorSpacing) {
		if onMajorLine(x, g.Spacing) {
			continue
		}
		sx := ox + x*WorldScale
		gz.line(sx, oy-halfH, sx, oy+halfH, 1, minor)
	}
	for _, y := range gridValues(yRange, g.MinorSpacing) {
		if onMajorLine(y, g.Spacing) {
			continue
		}
		sy := oy - y*WorldScale
		gz.line(ox-halfW, sy, ox+halfW, sy, 1, minor)
	}
}

// tickValues lists every multiple of spacing inside r, excluding the value
// at the origin (it would clutter the crossing point).
func tickValues(r Range, spacing float64) []float64 {
	var out []float64
	for v := math.Ceil(r.Min/spacing) * spacing; v <= r.Max; v += spacing {
		if math.Abs(v) > OriginEpsilon {
			out = append(out, v)
		}
	}
	return out
}

// gridValues lists every multiple of spacing inside r, origin included.
func gridValues(r Range, spacing float64) []float64 {
	var out []float64
	for v := math.Ceil(r.Min/spacing) * spacing; v <= r.Max; v += spacing {
		out = append(out, v)
	}
	return out
}

func onMajorLine(v, spacing float64) bool {
	m := math.Abs(math.Mod(v, spacing))
	return m < OriginEpsilon || spacing-m < OriginEpsilon
}

// formatTick picks the label precision from the tick spacing: whole-unit
// spacing gets integer labels, sub-unit spacing one or two decimals.
func formatTick(v, spacing float64) string {
	switch {
	case spacing >= 1.0:
		return strconv.FormatFloat(v, 'f', 0, 64)
	case spacing >= 0.1:
		return strconv.FormatFloat(v, 'f', 1, 64)
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}

func withOpacity(c color.RGBA, opacity float64) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, uint8(clamp(opacity, 0, 1) * 255)}
}
