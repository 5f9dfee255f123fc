package main

import (
	"math"
	"testing"
)

func TestCircleOutlineClosed(t *testing.T) {
	c := &Circle{X: 1, Y: 2, Radius: 3}
	outline := c.Outline()
	if len(outline) != 1 {
		t.Fatalf("expected a single polyline, got %d", len(outline))
	}
	pts := outline[0]
	if len(pts) != CircleSegments+1 {
		t.Fatalf("expected %d points, got %d", CircleSegments+1, len(pts))
	}
	first, last := pts[0], pts[len(pts)-1]
	if math.Abs(first.X-last.X) > 1e-9 || math.Abs(first.Y-last.Y) > 1e-9 {
		t.Error("circle outline is not closed")
	}
	for _, p := range pts {
		r := math.Hypot(p.X-1, p.Y-2)
		if math.Abs(r-3) > 1e-9 {
			t.Fatalf("point %v at radius %v, expected 3", p, r)
		}
	}
}

func TestSegmentOutline(t *testing.T) {
	s := &Segment{X1: -1, Y1: 0, X2: 2, Y2: 3}
	outline := s.Outline()
	if len(outline) != 1 || len(outline[0]) != 2 {
		t.Fatalf("expected one 2-point polyline, got %v", outline)
	}
	if outline[0][0] != (Point{-1, 0}) || outline[0][1] != (Point{2, 3}) {
		t.Errorf("wrong endpoints: %v", outline[0])
	}
}

func TestRectOutlineClosed(t *testing.T) {
	r := &Rect{X: 0, Y: 0, W: 4, H: 2}
	pts := r.Outline()[0]
	if len(pts) != 5 {
		t.Fatalf("expected 5 points, got %d", len(pts))
	}
	if pts[0] != pts[4] {
		t.Error("rect outline is not closed")
	}
	if pts[0] != (Point{-2, -1}) || pts[2] != (Point{2, 1}) {
		t.Errorf("wrong corners: %v", pts)
	}
}

func TestFunctionGraphSampling(t *testing.T) {
	g, err := NewFunctionGraph("x*x", -2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if g.Samples != DefaultGraphSamples {
		t.Errorf("expected %d samples, got %d", DefaultGraphSamples, g.Samples)
	}
	outline := g.Outline()
	if len(outline) != 1 {
		t.Fatalf("x*x has no gaps, expected one polyline, got %d", len(outline))
	}
	pts := outline[0]
	if len(pts) != DefaultGraphSamples {
		t.Fatalf("expected %d points, got %d", DefaultGraphSamples, len(pts))
	}
	if math.Abs(pts[0].X+2) > 1e-9 || math.Abs(pts[len(pts)-1].X-2) > 1e-9 {
		t.Error("samples do not span the domain endpoints")
	}
	for _, p := range pts {
		if math.Abs(p.Y-p.X*p.X) > 1e-9 {
			t.Fatalf("sample (%v, %v) not on the curve", p.X, p.Y)
		}
	}
}

func TestFunctionGraphUndefinedRegionBecomesGap(t *testing.T) {
	g, err := NewFunctionGraph("log(x)", -1, 1)
	if err != nil {
		t.Fatal(err)
	}
	outline := g.Outline()
	if len(outline) != 1 {
		t.Fatalf("expected the defined half as one run, got %d runs", len(outline))
	}
	for _, p := range outline[0] {
		if p.X <= 0 {
			t.Fatalf("point at x=%v leaked through the gap filter", p.X)
		}
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			t.Fatalf("non-finite sample survived: %v", p)
		}
	}
}

func TestFunctionGraphPoleSplitsOutline(t *testing.T) {
	// 101 samples put one exactly on x=0 where 1/x blows up.
	g := &FunctionGraph{Expr: "1/x", DomainMin: -1, DomainMax: 1, Samples: 101}
	if err := g.Resample(); err != nil {
		t.Fatal(err)
	}
	outline := g.Outline()
	if len(outline) != 2 {
		t.Fatalf("expected 2 runs around the pole, got %d", len(outline))
	}
	for _, p := range outline[0] {
		if p.X >= 0 {
			t.Fatalf("left run contains x=%v", p.X)
		}
	}
	for _, p := range outline[1] {
		if p.X <= 0 {
			t.Fatalf("right run contains x=%v", p.X)
		}
	}
}

func TestFunctionGraphBadExpression(t *testing.T) {
	if _, err := NewFunctionGraph("sin(", -1, 1); err == nil {
		t.Error("expected error for unbalanced expression")
	}
	if _, err := NewFunctionGraph("", -1, 1); err == nil {
		t.Error("expected error for empty expression")
	}
	if _, err := NewFunctionGraph("nosuchfn(x)", -1, 1); err == nil {
		t.Error("expected error for unknown function name")
	}
}

func TestParametricCurveCircle(t *testing.T) {
	c, err := NewParametricCurve("cos(t)", "sin(t)", 0, 2*math.Pi)
	if err != nil {
		t.Fatal(err)
	}
	outline := c.Outline()
	if len(outline) != 1 {
		t.Fatalf("expected one run, got %d", len(outline))
	}
	pts := outline[0]
	first, last := pts[0], pts[len(pts)-1]
	if math.Abs(first.X-1) > 1e-9 || math.Abs(first.Y) > 1e-9 {
		t.Errorf("curve should start at (1, 0), got %v", first)
	}
	if math.Abs(last.X-1) > 1e-6 || math.Abs(last.Y) > 1e-6 {
		t.Errorf("curve should close at (1, 0), got %v", last)
	}
	for _, p := range pts {
		if math.Abs(math.Hypot(p.X, p.Y)-1) > 1e-9 {
			t.Fatalf("point %v off the unit circle", p)
		}
	}
}

func TestSplitFinite(t *testing.T) {
	nan := math.NaN()
	pts := []Point{
		{0, 1}, {1, 2},
		{2, nan},
		{3, 4}, {4, 5}, {5, 6},
	}
	runs := splitFinite(pts)
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if len(runs[0]) != 2 || len(runs[1]) != 3 {
		t.Errorf("wrong run lengths: %d and %d", len(runs[0]), len(runs[1]))
	}
}

func TestSplitFiniteDropsSinglePointRuns(t *testing.T) {
	nan := math.NaN()
	pts := []Point{
		{0, 1},
		{1, nan},
		{2, 3}, {3, 4},
	}
	runs := splitFinite(pts)
	if len(runs) != 1 {
		t.Fatalf("a 1-point run cannot be stroked, expected it dropped: got %d runs", len(runs))
	}
}

func TestSplitFiniteInfinityAndNaNX(t *testing.T) {
	pts := []Point{
		{0, 1}, {1, math.Inf(1)}, {2, 3}, {math.NaN(), 4}, {4, 5},
	}
	runs := splitFinite(pts)
	for _, run := range runs {
		for _, p := range run {
			if math.IsInf(p.Y, 0) || math.IsNaN(p.X) {
				t.Fatalf("non-finite point survived: %v", p)
			}
		}
	}
}
