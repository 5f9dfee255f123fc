package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem turns raw ebiten input into camera targets, visibility toggles
// and export/save requests. It never mutates smoothed state directly; the
// camera's Step owns that.
type InputSystem struct {
	game *Game

	isPanning  bool
	lastMouseX int
	lastMouseY int
}

func NewInputSystem(g *Game) *InputSystem {
	return &InputSystem{game: g}
}

func (is *InputSystem) Update() {
	is.handleControlKeys()
	is.handleZoom()
	is.handlePanning()
}

func (is *InputSystem) handleControlKeys() {
	g := is.game

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showPanel = !g.showPanel
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.showAxes = !g.showAxes
		log.Println("axes visible:", g.showAxes)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
		log.Println("grid visible:", g.showGrid)
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if ctrl {
			if err := SaveScene(g, DefaultSceneFile); err != nil {
				log.Println("save:", err)
			} else {
				log.Println("saved", DefaultSceneFile)
			}
		} else {
			g.exporter.RequestScreenshot(g.screenWidth, g.screenHeight)
		}
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := LoadScene(g, DefaultSceneFile); err != nil {
			log.Println("load:", err)
		} else {
			log.Println("loaded", DefaultSceneFile)
		}
	}
}

func (is *InputSystem) handleZoom() {
	g := is.game

	_, dy := ebiten.Wheel()
	if dy != 0 {
		g.camera.ApplyScroll(dy)
	}

	// Keyboard zoom behaves like one wheel notch per tick held.
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		g.camera.ApplyScroll(1.0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		g.camera.ApplyScroll(-1.0)
	}
}

func (is *InputSystem) handlePanning() {
	g := is.game
	mx, my := ebiten.CursorPosition()
	overUI := g.showPanel && g.panel.IsMouseOver(mx, my)

	// Space turns a left drag into a pan even over the panel.
	space := ebiten.IsKeyPressed(ebiten.KeySpace)
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) ||
		(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && (space || !overUI))

	if !is.isPanning {
		if held {
			is.isPanning = true
			is.lastMouseX, is.lastMouseY = mx, my
		}
		return
	}
	if !held {
		is.isPanning = false
		return
	}

	dx := float64(mx - is.lastMouseX)
	dy := float64(my - is.lastMouseY)
	// Dragging right moves the content right, so the camera moves left.
	// Screen y is inverted relative to world y.
	g.camera.Pan(-dx/WorldScale, dy/WorldScale)
	is.lastMouseX, is.lastMouseY = mx, my
}
