package main

import "image/color"

const (
	// --- Camera & View ---
	DefaultCameraZoom = 1.0
	ZoomLimitMin      = 0.1
	ZoomLimitMax      = 10.0
	ZoomSpeed         = 0.1
	CameraLerpSpeed   = 8.0
	SnapEpsilon       = 0.001

	// --- Projection ---
	// Pixels per world unit. Fixed: zoom changes the visible range, never
	// this factor.
	WorldScale = 50.0
	// Axis lines run to these fractions of the window size; the grid runs a
	// little further so it always covers the area behind the axes.
	AxisExtentFraction = 0.6
	GridExtentFraction = 0.7

	// --- Axes & Grid ---
	DefaultBaseRangeX = 20.0
	DefaultBaseRangeY = 20.0
	BaseTickUnit      = 1.0
	DefaultGridStep   = 1.0
	MinorGridFactor   = 0.2
	TickHalfLength    = 8.0
	OriginEpsilon     = 0.01
	ArrowSize         = 15.0
	ArrowMargin       = 30.0
	OriginMarkRadius  = 4.0
	AxisLabelOffset   = 25.0
	TickLabelOffset   = 25.0
	YTickLabelOffset  = 30.0

	// --- Math objects ---
	CircleSegments       = 64
	DefaultCircleRadius  = 1.0
	DefaultGraphSamples  = 100
	DefaultGraphDomain   = 5.0
	FadeInDuration       = 0.4
	DefaultStrokeWidth   = 2.0
	GraphPlacementStepX  = 2.0
	GraphPlacementWrapX  = 8.0

	// --- UI ---
	PanelWidth    = 230.0
	ButtonWidth   = 200.0
	ButtonHeight  = 26.0
	ButtonPadding = 8.0
	ButtonMargin  = 12.0
	PanelTextLine = 16

	// --- Export ---
	ScreenshotDir = "screenshots"

	// --- Window ---
	DefaultWindowWidth  = 1200
	DefaultWindowHeight = 800
	DefaultSceneFile    = "scene.yaml"
)

var (
	// --- Colors ---
	ColorBackground  = color.RGBA{15, 15, 20, 255}
	ColorAxes        = color.RGBA{255, 255, 255, 255}
	ColorGridLine    = color.RGBA{77, 77, 77, 255}
	ColorTickLabel   = color.RGBA{204, 204, 204, 255}
	ColorAxisLabel   = color.RGBA{255, 255, 255, 255}
	ColorPanelBg     = color.RGBA{40, 40, 48, 230}
	ColorPanelText   = color.RGBA{220, 220, 220, 255}
	ColorButtonBg    = color.RGBA{60, 60, 70, 200}
	ColorButtonHover = color.RGBA{80, 80, 95, 220}
	ColorButtonText  = color.RGBA{255, 255, 255, 255}
	ColorCircleNew   = color.RGBA{51, 204, 51, 255}
	ColorGraphNew    = color.RGBA{80, 160, 240, 255}
	ColorHint        = color.RGBA{255, 200, 50, 255}
)

// GridOpacity scales the alpha of grid strokes; minor lines get an extra
// MinorGridDim on top.
const (
	GridOpacity  = 0.3
	MinorGridDim = 0.3
)
