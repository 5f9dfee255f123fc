package main

import (
	"image/color"
	"math"

	"math-canvas/mathexpr"
)

// Style describes how a math object is stroked and filled.
type Style struct {
	Stroke      color.RGBA
	Fill        *color.RGBA
	StrokeWidth float64
	Opacity     float64
}

func DefaultStyle() Style {
	return Style{
		Stroke:      ColorAxes,
		StrokeWidth: DefaultStrokeWidth,
		Opacity:     1.0,
	}
}

// Shape is one drawable variant. The kind of a math object is fixed at
// construction; only its parameters change afterwards.
type Shape interface {
	// Outline returns the world-space polylines making up the shape. A shape
	// may span several polylines when it has gaps (undefined samples).
	Outline() [][]Point
}

// Point is a world-space coordinate pair.
type Point struct {
	X float64
	Y float64
}

// MathObject wraps a shape with identity, ordering and visibility.
type MathObject struct {
	ID      string
	Visible bool
	Layer   int
	Style   Style
	Shape   Shape
	Fade    *Animation
}

// Circle is a stroked circle approximated by a fixed-segment polyline.
type Circle struct {
	X, Y   float64
	Radius float64
}

func (c *Circle) Outline() [][]Point {
	pts := make([]Point, 0, CircleSegments+1)
	for i := 0; i <= CircleSegments; i++ {
		t := 2 * math.Pi * float64(i) / CircleSegments
		pts = append(pts, Point{c.X + c.Radius*math.Cos(t), c.Y + c.Radius*math.Sin(t)})
	}
	return [][]Point{pts}
}

// Segment is a straight line between two world points.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

func (s *Segment) Outline() [][]Point {
	return [][]Point{{{s.X1, s.Y1}, {s.X2, s.Y2}}}
}

// Rect is an axis-aligned rectangle given by center and size.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r *Rect) Outline() [][]Point {
	hw, hh := r.W/2, r.H/2
	return [][]Point{{
		{r.X - hw, r.Y - hh},
		{r.X + hw, r.Y - hh},
		{r.X + hw, r.Y + hh},
		{r.X - hw, r.Y + hh},
		{r.X - hw, r.Y - hh},
	}}
}

// FunctionGraph plots y = f(x) over a domain. Points are sampled once at
// construction (and again on Resample), not per frame.
type FunctionGraph struct {
	Expr      string
	DomainMin float64
	DomainMax float64
	Samples   int

	fn     *mathexpr.Func
	points []Point
}

func NewFunctionGraph(expr string, domainMin, domainMax float64) (*FunctionGraph, error) {
	g := &FunctionGraph{
		Expr:      expr,
		DomainMin: domainMin,
		DomainMax: domainMax,
		Samples:   DefaultGraphSamples,
	}
	if err := g.Resample(); err != nil {
		return nil, err
	}
	return g, nil
}

// Resample recompiles the expression and rebuilds the sample points.
// Non-finite samples are kept as markers and split the outline into gaps.
func (g *FunctionGraph) Resample() error {
	fn, err := mathexpr.Compile(g.Expr)
	if err != nil {
		return err
	}
	g.fn = fn
	g.points = g.points[:0]
	for i := 0; i < g.Samples; i++ {
		t := float64(i) / float64(g.Samples-1)
		x := g.DomainMin + t*(g.DomainMax-g.DomainMin)
		g.points = append(g.points, Point{x, fn.Eval(x)})
	}
	return nil
}

func (g *FunctionGraph) Outline() [][]Point {
	return splitFinite(g.points)
}

// ParametricCurve plots (x(t), y(t)) over a parameter interval.
type ParametricCurve struct {
	XExpr   string
	YExpr   string
	TMin    float64
	TMax    float64
	Samples int

	points []Point
}

func NewParametricCurve(xExpr, yExpr string, tMin, tMax float64) (*ParametricCurve, error) {
	c := &ParametricCurve{
		XExpr:   xExpr,
		YExpr:   yExpr,
		TMin:    tMin,
		TMax:    tMax,
		Samples: DefaultGraphSamples,
	}
	if err := c.Resample(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *ParametricCurve) Resample() error {
	xf, err := mathexpr.CompileParam(c.XExpr)
	if err != nil {
		return err
	}
	yf, err := mathexpr.CompileParam(c.YExpr)
	if err != nil {
		return err
	}
	c.points = c.points[:0]
	for i := 0; i < c.Samples; i++ {
		u := float64(i) / float64(c.Samples-1)
		t := c.TMin + u*(c.TMax-c.TMin)
		c.points = append(c.points, Point{xf.Eval(t), yf.Eval(t)})
	}
	return nil
}

func (c *ParametricCurve) Outline() [][]Point {
	return splitFinite(c.points)
}

// splitFinite breaks a sampled polyline at non-finite points so gaps in the
// domain (log of negatives, poles) render as gaps, not spikes.
func splitFinite(pts []Point) [][]Point {
	var out [][]Point
	var run []Point
	for _, p := range pts {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) || math.IsNaN(p.X) || math.IsInf(p.X, 0) {
			if len(run) > 1 {
				out = append(out, run)
			}
			run = nil
			continue
		}
		run = append(run, p)
	}
	if len(run) > 1 {
		out = append(out, run)
	}
	return out
}
