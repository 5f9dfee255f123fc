package main

import "fmt"

// Camera controls how much of the world is visible. Zoom does not scale the
// projection: it narrows the axis ranges instead (see axes.go), so screen
// pixels per world unit stay constant at WorldScale.
type Camera struct {
	Zoom       float64
	TargetZoom float64
	ZoomSpeed  float64
	MinZoom    float64
	MaxZoom    float64

	TranslationX       float64
	TranslationY       float64
	TargetTranslationX float64
	TargetTranslationY float64

	// PreviousZoom is the zoom level the coordinate models were last rebuilt
	// for. Compared against Zoom to gate recomputation.
	PreviousZoom float64
}

func NewCamera() *Camera {
	return &Camera{
		Zoom:         DefaultCameraZoom,
		TargetZoom:   DefaultCameraZoom,
		ZoomSpeed:    ZoomSpeed,
		MinZoom:      ZoomLimitMin,
		MaxZoom:      ZoomLimitMax,
		PreviousZoom: DefaultCameraZoom,
	}
}

// Validate rejects configurations the smoothing and ladder math cannot
// tolerate. Called when camera state comes from outside (scene files).
func (c *Camera) Validate() error {
	if c.MinZoom <= 0 {
		return fmt.Errorf("camera: min zoom must be positive, got %g", c.MinZoom)
	}
	if c.MinZoom > c.MaxZoom {
		return fmt.Errorf("camera: min zoom %g exceeds max zoom %g", c.MinZoom, c.MaxZoom)
	}
	if c.ZoomSpeed <= 0 {
		return fmt.Errorf("camera: zoom speed must be positive, got %g", c.ZoomSpeed)
	}
	return nil
}

// ApplyScroll maps one wheel delta onto the zoom target. Each delta is
// clamped individually so a burst of events can never escape the limits.
func (c *Camera) ApplyScroll(delta float64) {
	c.TargetZoom = clamp(c.TargetZoom+delta*c.ZoomSpeed, c.MinZoom, c.MaxZoom)
}

// Pan shifts the translation target by a world-space offset.
func (c *Camera) Pan(dx, dy float64) {
	c.TargetTranslationX += dx
	c.TargetTranslationY += dy
}

// Step advances zoom and translation toward their targets with a single-pole
// exponential lerp. When the remaining distance drops under SnapEpsilon the
// value snaps exactly onto the target, ending the asymptotic tail.
func (c *Camera) Step(dt float64) {
	c.Zoom = stepToward(c.Zoom, c.TargetZoom, dt)
	c.TranslationX = stepToward(c.TranslationX, c.TargetTranslationX, dt)
	c.TranslationY = stepToward(c.TranslationY, c.TargetTranslationY, dt)
}

func stepToward(v, target, dt float64) float64 {
	v += (target - v) * CameraLerpSpeed * dt
	if abs(target-v) < SnapEpsilon {
		v = target
	}
	return v
}

// ZoomChanged reports whether zoom moved far enough since the last rebuild
// of the coordinate models to warrant another one.
func (c *Camera) ZoomChanged() bool {
	return abs(c.Zoom-c.PreviousZoom) > SnapEpsilon
}

// MarkZoomSeen consumes the pending change so the gate stays closed until
// new input arrives.
func (c *Camera) MarkZoomSeen() {
	c.PreviousZoom = c.Zoom
}

// WorldToScreen projects world coordinates to screen pixels. cw/ch is the
// screen center. Screen y grows downward, world y upward.
func (c *Camera) WorldToScreen(wx, wy, cw, ch float64) (float64, float64) {
	sx := cw + (wx-c.TranslationX)*WorldScale
	sy := ch - (wy-c.TranslationY)*WorldScale
	return sx, sy
}

func (c *Camera) ScreenToWorld(sx, sy, cw, ch float64) (float64, float64) {
	wx := (sx-cw)/WorldScale + c.TranslationX
	wy := -(sy-ch)/WorldScale + c.TranslationY
	return wx, wy
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
