package main

import (
	"math"
	"testing"
)

func TestTickSpacingLadder(t *testing.T) {
	a := NewAxes()
	a.BaseRangeX = 20

	cases := []struct {
		zoom float64
		want float64
	}{
		{0.1, 10.0}, // effective range 200
		{0.2, 5.0},  // 100, not >100, falls to the >50 tier
		{0.3, 5.0},  // ~66.7
		{0.5, 2.0},  // 40
		{1.0, 1.0},  // 20, not >20, falls to the >10 tier
		{2.0, 0.5},  // 10, not >10, falls to the >5 tier
		{3.0, 0.5},  // ~6.7
		{4.0, 0.2},  // 5, not >5, falls to the >2 tier
		{10.0, 0.1}, // 2, not >2, bottom tier
		{100.0, 0.1},
	}
	for _, tc := range cases {
		got := a.TickSpacingForZoom(tc.zoom)
		if got != tc.want {
			t.Errorf("zoom=%v (range %v): expected spacing %v, got %v",
				tc.zoom, a.BaseRangeX/tc.zoom, tc.want, got)
		}
	}
}

func TestTickSpacingBoundaries(t *testing.T) {
	a := NewAxes()
	a.BaseRangeX = 20

	// Effective range exactly 20 is not >20, so it lands in the >10 tier.
	if got := a.TickSpacingForZoom(1.0); got != 1.0 {
		t.Errorf("effective range 20: expected 1.0, got %v", got)
	}
	// Effective range 10 is not >10, so >5 tier applies.
	if got := a.TickSpacingForZoom(2.0); got != 0.5 {
		t.Errorf("effective range 10: expected 0.5, got %v", got)
	}
}

func TestUpdateForZoomSymmetric(t *testing.T) {
	a := NewAxes()
	for _, zoom := range []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0} {
		a.UpdateForZoom(zoom)
		if a.XRange.Min != -a.XRange.Max {
			t.Errorf("zoom=%v: x range not symmetric: %+v", zoom, a.XRange)
		}
		if a.YRange.Min != -a.YRange.Max {
			t.Errorf("zoom=%v: y range not symmetric: %+v", zoom, a.YRange)
		}
		wantHalf := a.BaseRangeX / (2 * zoom)
		if math.Abs(a.XRange.Max-wantHalf) > 1e-12 {
			t.Errorf("zoom=%v: expected half width %v, got %v", zoom, wantHalf, a.XRange.Max)
		}
	}
}

func TestRangeShrinksAsZoomGrows(t *testing.T) {
	a := NewAxes()
	prevWidth := math.Inf(1)
	for zoom := 0.1; zoom <= 10.0; zoom += 0.1 {
		a.UpdateForZoom(zoom)
		w := a.XRange.Width()
		if w >= prevWidth {
			t.Fatalf("zoom=%v: range width %v did not shrink (was %v)", zoom, w, prevWidth)
		}
		prevWidth = w
	}
}

func TestGridSpacingLadder(t *testing.T) {
	g := NewGrid()
	cases := []struct {
		zoom float64
		want float64
	}{
		{10.0, 0.2},
		{6.0, 0.2},
		{3.0, 0.5},
		{1.0, 1.0},
		{0.6, 1.0},
		{0.3, 2.0},
		{0.1, 5.0},
	}
	for _, tc := range cases {
		g.UpdateForZoom(tc.zoom)
		if g.Spacing != tc.want {
			t.Errorf("zoom=%v: expected spacing %v, got %v", tc.zoom, tc.want, g.Spacing)
		}
		wantMinor := tc.want * 0.2
		if math.Abs(g.MinorSpacing-wantMinor) > 1e-12 {
			t.Errorf("zoom=%v: expected minor spacing %v, got %v", tc.zoom, wantMinor, g.MinorSpacing)
		}
	}
}

func TestGridLadderConcreteCase(t *testing.T) {
	g := NewGrid()
	g.BaseSpacing = 1.0
	g.UpdateForZoom(3.0)
	if g.Spacing != 0.5 {
		t.Errorf("expected spacing 0.5 at zoom 3, got %v", g.Spacing)
	}
	if math.Abs(g.MinorSpacing-0.1) > 1e-12 {
		t.Errorf("expected minor spacing 0.1 at zoom 3, got %v", g.MinorSpacing)
	}
}

// The gate must suppress the second recompute entirely when zoom is stable.
func TestRecomputeGateIdempotent(t *testing.T) {
	cam := NewCamera()
	axes := NewAxes()
	grid := NewGrid()

	cam.Zoom = 2.5
	if !cam.ZoomChanged() {
		t.Fatal("expected gate open after zoom change")
	}
	axes.UpdateForZoom(cam.Zoom)
	grid.UpdateForZoom(cam.Zoom)
	cam.MarkZoomSeen()

	xr, yr, ts, gs := axes.XRange, axes.YRange, axes.TickSpacing, grid.Spacing

	// Second pass with unchanged zoom: gate closed, nothing recomputes.
	if cam.ZoomChanged() {
		t.Error("gate re-opened with no new input")
	}
	if axes.XRange != xr || axes.YRange != yr || axes.TickSpacing != ts || grid.Spacing != gs {
		t.Error("models changed despite closed gate")
	}
}
