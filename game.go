package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"math-canvas/ui"
)

// Game wires the camera, coordinate models, scene and sub-systems into the
// ebiten loop. Update order matters: input first, then camera smoothing, then
// the zoom-gated model rebuild (which reads the smoothed zoom), then the
// deferred scene flush so new objects are committed before the next draw.
type Game struct {
	camera   *Camera
	axes     *Axes
	grid     *Grid
	scene    *Scene
	gizmos   Gizmos
	input    *InputSystem
	panel    *ui.Panel
	exporter *Exporter
	face     font.Face

	showAxes  bool
	showGrid  bool
	showPanel bool

	screenWidth  int
	screenHeight int

	// Placement cursor for objects added through the panel, walking a small
	// raster so consecutive shapes do not pile on top of each other.
	nextX, nextY float64
	graphPreset  int
}

var graphPresets = []string{"sin(x)", "cos(x)", "x*x/4", "1/x", "sqrt(abs(x))"}

func NewGame() *Game {
	g := &Game{
		camera:    NewCamera(),
		axes:      NewAxes(),
		grid:      NewGrid(),
		scene:     NewScene(),
		exporter:  NewExporter(),
		showAxes:  true,
		showGrid:  true,
		showPanel: true,
	}
	g.face = LoadUIFont()
	g.input = NewInputSystem(g)
	g.buildPanel()
	return g
}

func (g *Game) buildPanel() {
	p := ui.NewPanel(PanelWidth,
		func() font.Face { return g.face },
		func() (int, int) { return g.screenWidth, g.screenHeight },
		DrawTextLines,
		g.statusText,
	)
	p.ButtonW = ButtonWidth
	p.ButtonH = ButtonHeight
	p.Background = ColorPanelBg
	p.TextColor = ColorPanelText

	add := func(b *ui.Button) {
		b.Background = ColorButtonBg
		b.Hover = ColorButtonHover
		b.Text = ColorButtonText
		p.AddButton(b)
	}
	check := func(c *ui.Checkbox) {
		c.Box = ColorButtonBg
		c.Mark = ColorButtonText
		c.Text = ColorPanelText
		p.AddCheckbox(c)
	}

	check(&ui.Checkbox{
		Label:    "Axes (A)",
		Get:      func() bool { return g.showAxes },
		OnToggle: func() { g.showAxes = !g.showAxes },
	})
	check(&ui.Checkbox{
		Label:    "Grid (G)",
		Get:      func() bool { return g.showGrid },
		OnToggle: func() { g.showGrid = !g.showGrid },
	})
	check(&ui.Checkbox{
		Label:    "Minor grid",
		Get:      func() bool { return g.grid.ShowMinor },
		OnToggle: func() { g.grid.ShowMinor = !g.grid.ShowMinor },
	})

	add(&ui.Button{Label: "Zoom in", OnClick: func() { g.camera.ApplyScroll(1) }})
	add(&ui.Button{Label: "Zoom out", OnClick: func() { g.camera.ApplyScroll(-1) }})
	add(&ui.Button{Label: "Add circle", OnClick: g.AddCircle})
	add(&ui.Button{Label: "Add function graph", OnClick: g.AddFunctionGraph})
	add(&ui.Button{Label: "Clear objects", OnClick: g.scene.Clear})
	add(&ui.Button{Label: "Screenshot (S)", OnClick: func() {
		g.exporter.RequestScreenshot(g.screenWidth, g.screenHeight)
	}})
	add(&ui.Button{Label: "Save scene", OnClick: func() {
		if err := SaveScene(g, DefaultSceneFile); err != nil {
			log.Println("save:", err)
		}
	}})
	add(&ui.Button{Label: "Load scene", OnClick: func() {
		if err := LoadScene(g, DefaultSceneFile); err != nil {
			log.Println("load:", err)
		}
	}})

	g.panel = p
}

func (g *Game) statusText() string {
	return fmt.Sprintf(
		"Zoom: %.2fx (target %.2fx)\n"+
			"X: %.1f to %.1f\n"+
			"Y: %.1f to %.1f\n"+
			"Ticks every %g, grid every %g\n"+
			"Objects: %d\n"+
			"\n"+
			"F1 panel  A axes  G grid\n"+
			"S screenshot  Ctrl+S save\n"+
			"Ctrl+O load  wheel zoom\n"+
			"drag pan",
		g.camera.Zoom, g.camera.TargetZoom,
		g.axes.XRange.Min, g.axes.XRange.Max,
		g.axes.YRange.Min, g.axes.YRange.Max,
		g.axes.TickSpacing, g.grid.Spacing,
		g.scene.Count(),
	)
}

// AddCircle creates a circle at the placement cursor and advances it.
func (g *Game) AddCircle() {
	g.scene.Add(&MathObject{
		ID:      NewID(),
		Visible: true,
		Style: Style{
			Stroke:      ColorCircleNew,
			StrokeWidth: DefaultStrokeWidth,
			Opacity:     1.0,
		},
		Shape: &Circle{X: g.nextX, Y: g.nextY, Radius: DefaultCircleRadius},
		Fade:  NewFadeIn(),
	})
	g.advanceCursor()
}

// AddFunctionGraph creates a graph of the next preset expression.
func (g *Game) AddFunctionGraph() {
	expr := graphPresets[g.graphPreset%len(graphPresets)]
	g.graphPreset++
	graph, err := NewFunctionGraph(expr, -DefaultGraphDomain, DefaultGraphDomain)
	if err != nil {
		log.Println("graph:", err)
		return
	}
	g.scene.Add(&MathObject{
		ID:      NewID(),
		Visible: true,
		Style: Style{
			Stroke:      ColorGraphNew,
			StrokeWidth: DefaultStrokeWidth,
			Opacity:     1.0,
		},
		Shape: graph,
		Fade:  NewFadeIn(),
	})
}

func (g *Game) advanceCursor() {
	g.nextX += GraphPlacementStepX
	if g.nextX > GraphPlacementWrapX {
		g.nextX = -GraphPlacementWrapX
		g.nextY += GraphPlacementStepX
	}
	if g.nextY > GraphPlacementWrapX-2 {
		g.nextY = -(GraphPlacementWrapX - 2)
	}
}

func (g *Game) Update() error {
	g.input.Update()
	if g.showPanel {
		g.panel.Update()
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.camera.Step(dt)

	// Rebuild the coordinate models only when zoom actually moved; the gate
	// consumes the change so a stable zoom costs nothing per frame.
	if g.camera.ZoomChanged() {
		g.axes.UpdateForZoom(g.camera.Zoom)
		g.grid.UpdateForZoom(g.camera.Zoom)
		g.camera.MarkZoomSeen()
	}

	for _, obj := range g.scene.Objects() {
		if obj.Fade != nil {
			obj.Fade.Step(dt)
		}
	}

	g.scene.Flush()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	g.gizmos.Reset()
	if g.showGrid {
		g.gizmos.AppendGrid(g.grid, g.camera, g.screenWidth, g.screenHeight)
	}
	if g.showAxes {
		g.gizmos.AppendAxes(g.axes, g.camera, g.screenWidth, g.screenHeight)
	}
	g.drawGizmos(screen)
	g.drawObjects(screen)

	if g.showPanel {
		g.panel.Draw(screen)
	} else {
		DrawTextLines(screen, g.face,
			fmt.Sprintf("F1 panel   zoom %.1fx", g.camera.Zoom),
			10, 10, ColorHint)
	}

	if g.exporter.HasPending() {
		g.exporter.Resolve(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	return outsideWidth, outsideHeight
}
